package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/wildmart/wildmart-go/pkg/config"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/session"
)

func testStore(t *testing.T, token string) *session.Store {
	t.Helper()
	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if token != "" {
		if err := store.SetToken(token); err != nil {
			t.Fatalf("SetToken: %v", err)
		}
	}
	return store
}

func testClient(t *testing.T, server *httptest.Server, store *session.Store) *Client {
	t.Helper()
	client, err := NewClient(config.APIConfig{BaseURL: server.URL}, store, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresSessionStore(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(config.APIConfig{}, nil); err == nil {
		t.Fatal("expected error for nil session store")
	}
}

func TestDoAttachesBearerAndRequestID(t *testing.T) {
	t.Parallel()

	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(CartPayload{CartID: 1})
	}))
	defer server.Close()

	client := testClient(t, server, testStore(t, "token-abc"))
	cart, err := client.GetCart(context.Background())
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if cart.CartID != 1 {
		t.Fatalf("CartID = %d, want 1", cart.CartID)
	}
	if gotAuth != "Bearer token-abc" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("X-Request-ID missing")
	}
}

func TestDoWithoutSessionIsUnauthorized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a session")
	}))
	defer server.Close()

	client := testClient(t, server, testStore(t, ""))
	_, err := client.GetCart(context.Background())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestUnauthorizedResponseClearsSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := testStore(t, "stale-token")
	client := testClient(t, server, store)

	_, err := client.GetCart(context.Background())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, err := store.Token(); err == nil {
		t.Fatal("session should have been cleared")
	}
}

func TestForbiddenResponseClearsSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	store := testStore(t, "stale-token")
	client := testClient(t, server, store)

	_, err := client.GetCart(context.Background())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := store.Token(); err == nil {
		t.Fatal("session should have been cleared")
	}
}

func TestBusinessErrorCarriesServerMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Minimum order amount not met for this voucher"})
	}))
	defer server.Close()

	client := testClient(t, server, testStore(t, "token-abc"))
	_, err := client.Checkout(context.Background(), CheckoutRequest{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeBusiness {
		t.Fatalf("expected business error, got %v", err)
	}
	if got := typed.UserMessage(); got != "Minimum order amount not met for this voucher" {
		t.Fatalf("message = %q", got)
	}
}

func TestNotFoundMapsToCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := testClient(t, server, testStore(t, "token-abc"))
	_, err := client.GetProduct(context.Background(), 99)
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServerErrorMapsToInternal(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server, testStore(t, "token-abc"))
	_, err := client.GetCart(context.Background())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestTransportFailureMapsToTransport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	store := testStore(t, "token-abc")
	client, err := NewClient(config.APIConfig{BaseURL: server.URL}, store)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.GetCart(context.Background())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestUpdateCartItemSendsQuantity(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody map[string]int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := testClient(t, server, testStore(t, "token-abc"))
	if err := client.UpdateCartItem(context.Background(), 7, 3); err != nil {
		t.Fatalf("UpdateCartItem: %v", err)
	}
	if gotPath != "/api/cart/items/7" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody["quantity"] != 3 {
		t.Fatalf("body = %v", gotBody)
	}
}

func TestCheckoutPostsRequestBody(t *testing.T) {
	t.Parallel()

	// The backend reads this body as a flat string map; anything beyond
	// these fields would fail its deserialization.
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders/checkout" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("body is not a string map: %v", err)
		}
		_ = json.NewEncoder(w).Encode(OrderPayload{OrderID: 42})
	}))
	defer server.Close()

	client := testClient(t, server, testStore(t, "token-abc"))
	receipt, err := client.Checkout(context.Background(), CheckoutRequest{
		ShippingAddress: "Dorm B, Room 12",
		PaymentMethod:   "GCash",
		VoucherCode:     "SAVE10",
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if receipt.OrderID != 42 {
		t.Fatalf("OrderID = %d", receipt.OrderID)
	}
	if len(got) != 3 || got["shippingAddress"] != "Dorm B, Room 12" || got["paymentMethod"] != "GCash" || got["voucherCode"] != "SAVE10" {
		t.Fatalf("request body = %v", got)
	}
}

func TestEmptySuccessBodyDecodesToNil(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := testClient(t, server, testStore(t, "token-abc"))
	if _, err := client.GetCart(context.Background()); err != nil {
		t.Fatalf("empty body should not error: %v", err)
	}
}
