package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// The payload types mirror the wire shapes the backend actually sends,
// duck-typed aliases included. Normalization into canonical entities
// happens once, in internal/catalog, never at call sites.

// SellerPayload is the seller map nested under a product.
type SellerPayload struct {
	UserID   *int64 `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// ProductPayload is a product as returned by the catalog and cart
// endpoints. Older rows use id/name, newer ones productId/productName.
type ProductPayload struct {
	ProductID         *int64           `json:"productId"`
	ID                *int64           `json:"id"`
	ProductName       string           `json:"productName"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Category          string           `json:"category"`
	Price             *decimal.Decimal `json:"price"`
	ImageURL          string           `json:"imageUrl"`
	QuantityAvailable int              `json:"quantityAvailable"`
	Seller            *SellerPayload   `json:"seller"`
	SellerName        string           `json:"sellerName"`
	FullName          string           `json:"fullName"`
	FullNameSnake     string           `json:"full_name"`
	LikeCount         int              `json:"likeCount"`
	CreatedAt         *time.Time       `json:"createdAt"`
}

// CartItemPayload is one line of the cart envelope.
type CartItemPayload struct {
	ID              int64            `json:"id"`
	Quantity        int              `json:"quantity"`
	PriceAtAddition *decimal.Decimal `json:"priceAtAddition"`
	AddedAt         *time.Time       `json:"addedAt"`
	Product         *ProductPayload  `json:"product"`
}

// CartPayload is the GET /api/cart envelope.
type CartPayload struct {
	CartID int64             `json:"cartId"`
	Items  []CartItemPayload `json:"items"`
	Status string            `json:"status"`
}

// VoucherPayload is a voucher row from GET /api/vouchers.
type VoucherPayload struct {
	ID                 int64            `json:"id"`
	DiscountCode       string           `json:"discountCode"`
	DiscountType       string           `json:"discountType"`
	DiscountValue      decimal.Decimal  `json:"discountValue"`
	MinimumOrderAmount *decimal.Decimal `json:"minimumOrderAmount"`
	ValidFrom          *time.Time       `json:"validFrom"`
	ValidUntil         *time.Time       `json:"validUntil"`
	IsActive           bool             `json:"isActive"`
	UsageLimit         *int             `json:"usageLimit"`
	UsageCount         int              `json:"usageCount"`
}

// OrderItemPayload is one line of an order.
type OrderItemPayload struct {
	ID              int64            `json:"id"`
	Quantity        int              `json:"quantity"`
	PriceAtPurchase *decimal.Decimal `json:"priceAtPurchase"`
	Product         *ProductPayload  `json:"product"`
}

// OrderPayload is an order as returned by the order endpoints.
type OrderPayload struct {
	OrderID         int64              `json:"orderId"`
	Status          string             `json:"status"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	DiscountAmount  decimal.Decimal    `json:"discountAmount"`
	ShippingFee     decimal.Decimal    `json:"shippingFee"`
	ShippingAddress string             `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	VoucherCode     string             `json:"voucherCode"`
	Items           []OrderItemPayload `json:"items"`
	Buyer           *SellerPayload     `json:"buyer"`
	CreatedAt       *time.Time         `json:"createdAt"`
}

// ConversationPayload is a conversation summary row.
type ConversationPayload struct {
	UserID      int64      `json:"userId"`
	Username    string     `json:"username"`
	FullName    string     `json:"fullName"`
	LastMessage string     `json:"lastMessage"`
	LastSentAt  *time.Time `json:"lastSentAt"`
	UnreadCount int        `json:"unreadCount"`
}

// MessagePayload is a single message in a thread.
type MessagePayload struct {
	ID         int64      `json:"id"`
	SenderID   int64      `json:"senderId"`
	ReceiverID int64      `json:"receiverId"`
	Content    string     `json:"content"`
	SentAt     *time.Time `json:"sentAt"`
	IsRead     bool       `json:"isRead"`
}

// AccountPayload is the profile returned by GET /api/user/account.
type AccountPayload struct {
	UserID          int64  `json:"userId"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	FullName        string `json:"fullName"`
	ShippingAddress string `json:"shippingAddress"`
	ImageURL        string `json:"imageUrl"`
	IsSeller        bool   `json:"isSeller"`
}
