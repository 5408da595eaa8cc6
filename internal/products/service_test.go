package products

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildmart/wildmart-go/internal/api"
	"github.com/wildmart/wildmart-go/internal/orders"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/logger"
)

type fakeSellerAPI struct {
	mine    []api.ProductPayload
	created *api.ProductInput
	updated *api.ProductInput
	deleted []int64
	sales   []api.OrderPayload
	status  map[int64]string
}

func (f *fakeSellerAPI) ListMyProducts(_ context.Context) ([]api.ProductPayload, error) {
	return f.mine, nil
}

func (f *fakeSellerAPI) CreateProduct(_ context.Context, input api.ProductInput) (*api.ProductPayload, error) {
	f.created = &input
	id := int64(1)
	return &api.ProductPayload{ProductID: &id, ProductName: input.ProductName, Price: &input.Price}, nil
}

func (f *fakeSellerAPI) UpdateProduct(_ context.Context, productID int64, input api.ProductInput) (*api.ProductPayload, error) {
	f.updated = &input
	return &api.ProductPayload{ProductID: &productID, ProductName: input.ProductName, Price: &input.Price}, nil
}

func (f *fakeSellerAPI) DeleteProduct(_ context.Context, productID int64) error {
	f.deleted = append(f.deleted, productID)
	return nil
}

func (f *fakeSellerAPI) ListSales(_ context.Context) ([]api.OrderPayload, error) {
	return f.sales, nil
}

func (f *fakeSellerAPI) UpdateOrderStatus(_ context.Context, orderID int64, status string) error {
	if f.status == nil {
		f.status = make(map[int64]string)
	}
	f.status[orderID] = status
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeSellerAPI) {
	t.Helper()
	fake := &fakeSellerAPI{}
	service, err := NewService(fake, logger.New(logger.Options{ServiceName: "test", Output: io.Discard}))
	require.NoError(t, err)
	return service, fake
}

func validForm() ProductForm {
	return ProductForm{
		Name:              "Scientific Calculator",
		Description:       "Lightly used",
		Category:          "Electronics",
		Price:             decimal.RequireFromString("300.00"),
		QuantityAvailable: 3,
	}
}

func TestCreateTrimsAndSubmits(t *testing.T) {
	t.Parallel()

	service, fake := newTestService(t)
	form := validForm()
	form.Name = "  Scientific Calculator  "

	product, err := service.Create(context.Background(), form)
	require.NoError(t, err)
	require.NotNil(t, fake.created)
	assert.Equal(t, "Scientific Calculator", fake.created.ProductName)
	assert.Equal(t, "Scientific Calculator", product.Name)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	t.Parallel()

	service, fake := newTestService(t)
	form := validForm()
	form.Name = "   "

	_, err := service.Create(context.Background(), form)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
	assert.Nil(t, fake.created)
}

func TestCreateRejectsNonPositivePrice(t *testing.T) {
	t.Parallel()

	service, fake := newTestService(t)

	zero := validForm()
	zero.Price = decimal.Zero
	_, err := service.Create(context.Background(), zero)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))

	negative := validForm()
	negative.Price = decimal.RequireFromString("-5.00")
	_, err = service.Create(context.Background(), negative)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
	assert.Nil(t, fake.created)
}

func TestUpdateValidatesBeforeSubmit(t *testing.T) {
	t.Parallel()

	service, fake := newTestService(t)

	_, err := service.Update(context.Background(), 7, ProductForm{})
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
	assert.Nil(t, fake.updated)

	product, err := service.Update(context.Background(), 7, validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ID)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	service, fake := newTestService(t)
	require.NoError(t, service.Delete(context.Background(), 7))
	assert.Equal(t, []int64{7}, fake.deleted)
}

func TestAdvanceSaleGuardsTransitions(t *testing.T) {
	t.Parallel()

	service, fake := newTestService(t)
	order := orders.Order{ID: 5, Status: orders.StatusPending}

	// Pending cannot jump straight to shipped.
	err := service.AdvanceSale(context.Background(), order, orders.StatusShipped)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
	assert.Empty(t, fake.status)

	require.NoError(t, service.AdvanceSale(context.Background(), order, orders.StatusProcessing))
	assert.Equal(t, string(orders.StatusProcessing), fake.status[5])
}
