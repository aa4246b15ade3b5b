package usecase_test

import (
	"context"
	"testing"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"
	"agrimart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fixedIDGen struct{}

func (g *fixedIDGen) NewID() string { return "ORD-TEST-0001" }

func newOrderFixture() (*OrderRepoMock, *OrderDetailRepoMock, *OrderItemRepoMock, *OrderLogRepoMock, *CatalogRepoMock, *usecase.OrderUsecase) {
	tx := new(TxManagerMock)
	orders := new(OrderRepoMock)
	details := new(OrderDetailRepoMock)
	items := new(OrderItemRepoMock)
	logs := new(OrderLogRepoMock)
	catalog := new(CatalogRepoMock)

	tx.Repos = &TxReposMock{
		orders:       orders,
		orderDetails: details,
		orderItems:   items,
		orderLogs:    logs,
		catalog:      catalog,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	return orders, details, items, logs, catalog, usecase.NewOrderUsecase(tx, &fixedIDGen{})
}

func TestPlaceOrder_Success(t *testing.T) {
	ctx := context.Background()
	orders, details, items, logs, catalog, uc := newOrderFixture()

	catalog.On("FindItem", mock.Anything, int64(501)).
		Return(model.Item{ID: 501, ShopID: 20, Price: 1500, IsActive: true}, nil)
	catalog.On("FindShop", mock.Anything, int64(20)).
		Return(model.Shop{ID: 20, IsActive: true}, nil)

	// subtotal=3000, fee=500, total=3500
	details.On("Create", mock.Anything, mock.MatchedBy(func(d model.OrderDetail) bool {
		return d.Subtotal == 3000 && d.ShippingFee == 500 && d.TotalAmount == 3500 &&
			d.Subtotal+d.ShippingFee == d.TotalAmount &&
			d.OrderCode == "ORD-TEST-0001" &&
			d.PaymentStatus == model.PaymentStateUnpaid
	})).Return(int64(10), nil)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == 7 && o.OrderDetailID == 10 && o.OrderStatusID == model.OrderStatusPending
	})).Return(int64(1), nil)

	items.On("CreateBulk", mock.Anything, int64(1), mock.MatchedBy(func(is []model.OrderItem) bool {
		return len(is) == 1 && is[0].PriceAtPurchase == 1500 && is[0].ItemStatusID == model.ItemStatusPending
	})).Return(nil)

	logs.On("Create", mock.Anything, mock.Anything).Return(nil)

	orders.On("FindByID", mock.Anything, int64(1)).
		Return(model.Order{ID: 1, UserID: 7, OrderDetailID: 10, OrderStatusID: model.OrderStatusPending}, nil)
	details.On("FindByID", mock.Anything, int64(10)).
		Return(model.OrderDetail{ID: 10, OrderCode: "ORD-TEST-0001", Subtotal: 3000, ShippingFee: 500, TotalAmount: 3500}, nil)
	items.On("ListByOrderID", mock.Anything, int64(1)).
		Return([]model.OrderItem{{ID: 100, OrderID: 1, ItemID: 501, ShopID: 20, Quantity: 2, PriceAtPurchase: 1500, ItemStatusID: model.ItemStatusPending}}, nil)

	out, err := uc.PlaceOrder(ctx, 7, usecase.PlaceOrderInput{
		ShippingAddress: "Purok 3, Barangay San Isidro",
		PaymentMethod:   model.PaymentMethodCOD,
		ShippingFee:     500,
		TotalAmount:     3500,
		Items:           []usecase.PlaceOrderItemInput{{ItemID: 501, Quantity: 2}},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3500), out.TotalAmount)
	assert.Equal(t, out.Subtotal+out.ShippingFee, out.TotalAmount)

	// order_placedログが1行
	if assert.Equal(t, 1, len(logs.Created)) {
		assert.Equal(t, model.LogEventOrderPlaced, logs.Created[0].Event)
		assert.Equal(t, int64(3500), *logs.Created[0].Amount)
	}

	details.AssertExpectations(t)
	orders.AssertExpectations(t)
	items.AssertExpectations(t)
}

// 金額が合わなければvalidation_errorで何も作られない
func TestPlaceOrder_TotalMismatch(t *testing.T) {
	ctx := context.Background()
	orders, details, _, logs, catalog, uc := newOrderFixture()

	catalog.On("FindItem", mock.Anything, int64(501)).
		Return(model.Item{ID: 501, ShopID: 20, Price: 1500, IsActive: true}, nil)
	catalog.On("FindShop", mock.Anything, int64(20)).
		Return(model.Shop{ID: 20, IsActive: true}, nil)

	_, err := uc.PlaceOrder(ctx, 7, usecase.PlaceOrderInput{
		ShippingAddress: "somewhere",
		PaymentMethod:   model.PaymentMethodGcash,
		ShippingFee:     500,
		TotalAmount:     9999,
		Items:           []usecase.PlaceOrderItemInput{{ItemID: 501, Quantity: 2}},
	})
	assertErrContains(t, err, "total amount mismatch")

	he, _ := usecase.AsHTTPError(err)
	assert.Equal(t, usecase.KindValidation, he.Kind)

	details.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, 0, len(logs.Created))
}

func TestPlaceOrder_InactiveShopRejected(t *testing.T) {
	ctx := context.Background()
	_, details, _, _, catalog, uc := newOrderFixture()

	catalog.On("FindItem", mock.Anything, int64(501)).
		Return(model.Item{ID: 501, ShopID: 20, Price: 1500, IsActive: true}, nil)
	catalog.On("FindShop", mock.Anything, int64(20)).
		Return(model.Shop{ID: 20, IsActive: false}, nil)

	_, err := uc.PlaceOrder(ctx, 7, usecase.PlaceOrderInput{
		ShippingAddress: "somewhere",
		PaymentMethod:   model.PaymentMethodCOD,
		ShippingFee:     0,
		TotalAmount:     1500,
		Items:           []usecase.PlaceOrderItemInput{{ItemID: 501, Quantity: 1}},
	})
	assertErrContains(t, err, "shop is inactive")
	details.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_EmptyItems(t *testing.T) {
	_, _, _, _, _, uc := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), 7, usecase.PlaceOrderInput{
		ShippingAddress: "somewhere",
		PaymentMethod:   model.PaymentMethodCOD,
	})
	assertErrContains(t, err, "no items")
}

func TestGetOrder_OtherUsersOrderHidden(t *testing.T) {
	ctx := context.Background()
	orders, _, _, _, _, uc := newOrderFixture()

	orders.On("FindByID", mock.Anything, int64(1)).
		Return(model.Order{ID: 1, UserID: 99, OrderDetailID: 10}, nil)

	_, err := uc.GetOrder(ctx, 7, 1)
	assertErrContains(t, err, "not found")
}

func TestGetOrder_NotFound(t *testing.T) {
	ctx := context.Background()
	orders, _, _, _, _, uc := newOrderFixture()

	orders.On("FindByID", mock.Anything, int64(1)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.GetOrder(ctx, 7, 1)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, usecase.KindNotFound, he.Kind)
}
