package usecase_test

import (
	"context"
	"strings"
	"testing"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMockはWithinTxの中で渡すreposを固定してunitテストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders       repo.OrderRepository
	orderDetails repo.OrderDetailRepository
	orderItems   repo.OrderItemRepository
	statuses     repo.StatusRepository
	orderLogs    repo.OrderLogRepository
	payments     repo.PaymentRepository
	proofs       repo.ProofOfDeliveryRepository
	catalog      repo.CatalogRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository             { return r.orders }
func (r *TxReposMock) OrderDetails() repo.OrderDetailRepository { return r.orderDetails }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository     { return r.orderItems }
func (r *TxReposMock) Statuses() repo.StatusRepository          { return r.statuses }
func (r *TxReposMock) OrderLogs() repo.OrderLogRepository       { return r.orderLogs }
func (r *TxReposMock) Payments() repo.PaymentRepository         { return r.payments }
func (r *TxReposMock) Proofs() repo.ProofOfDeliveryRepository   { return r.proofs }
func (r *TxReposMock) Catalog() repo.CatalogRepository          { return r.catalog }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByIDForUpdate(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatusID) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

type OrderDetailRepoMock struct{ mock.Mock }

func (m *OrderDetailRepoMock) Create(ctx context.Context, detail model.OrderDetail) (int64, error) {
	args := m.Called(ctx, detail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderDetailRepoMock) FindByID(ctx context.Context, detailID int64) (model.OrderDetail, error) {
	args := m.Called(ctx, detailID)
	d, _ := args.Get(0).(model.OrderDetail)
	return d, args.Error(1)
}

func (m *OrderDetailRepoMock) UpdatePaymentStatus(ctx context.Context, detailID int64, status model.PaymentState) error {
	args := m.Called(ctx, detailID, status)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) ListByOrderIDForUpdate(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) UpdateStatus(ctx context.Context, itemID int64, status model.ItemStatusID) error {
	args := m.Called(ctx, itemID, status)
	return args.Error(0)
}

type StatusRepoMock struct{ mock.Mock }

func (m *StatusRepoMock) FindOrderStatus(ctx context.Context, id model.OrderStatusID) (model.OrderStatus, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.OrderStatus)
	return s, args.Error(1)
}

func (m *StatusRepoMock) FindItemStatus(ctx context.Context, id model.ItemStatusID) (model.OrderItemStatus, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.OrderItemStatus)
	return s, args.Error(1)
}

func (m *StatusRepoMock) ListOrderStatuses(ctx context.Context) ([]model.OrderStatus, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.OrderStatus)
	return out, args.Error(1)
}

func (m *StatusRepoMock) ListItemStatuses(ctx context.Context) ([]model.OrderItemStatus, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.OrderItemStatus)
	return out, args.Error(1)
}

type OrderLogRepoMock struct {
	mock.Mock
	// 追記された行をそのまま残して中身を確認できるようにする
	Created []model.OrderLog
}

func (m *OrderLogRepoMock) Create(ctx context.Context, log model.OrderLog) error {
	m.Created = append(m.Created, log)
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *OrderLogRepoMock) ListByOrderID(ctx context.Context, orderID int64, filter repo.OrderLogFilter) ([]model.OrderLog, int64, error) {
	args := m.Called(ctx, orderID, filter)
	logs, _ := args.Get(0).([]model.OrderLog)
	return logs, args.Get(1).(int64), args.Error(2)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) Create(ctx context.Context, payment model.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PaymentRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error) {
	args := m.Called(ctx, orderID)
	out, _ := args.Get(0).([]model.Payment)
	return out, args.Error(1)
}

func (m *PaymentRepoMock) SumCompletedByOrderID(ctx context.Context, orderID int64) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type ProofRepoMock struct{ mock.Mock }

func (m *ProofRepoMock) Create(ctx context.Context, proof model.ProofOfDelivery) (int64, error) {
	args := m.Called(ctx, proof)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProofRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.ProofOfDelivery, error) {
	args := m.Called(ctx, orderID)
	out, _ := args.Get(0).([]model.ProofOfDelivery)
	return out, args.Error(1)
}

type CatalogRepoMock struct{ mock.Mock }

func (m *CatalogRepoMock) FindShop(ctx context.Context, shopID int64) (model.Shop, error) {
	args := m.Called(ctx, shopID)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *CatalogRepoMock) FindItem(ctx context.Context, itemID int64) (model.Item, error) {
	args := m.Called(ctx, itemID)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) UpdateLastLogin(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

// =====================
// Helper: error contains（HTTPErrorの実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
