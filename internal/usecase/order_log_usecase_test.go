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

func TestOrderLogList(t *testing.T) {
	ctx := context.Background()
	orders := new(OrderRepoMock)
	logs := new(OrderLogRepoMock)
	uc := usecase.NewOrderLogUsecase(orders, logs)

	orders.On("FindByID", mock.Anything, int64(1)).Return(model.Order{ID: 1}, nil)

	f := repo.OrderLogFilter{Limit: 20}
	logs.On("ListByOrderID", mock.Anything, int64(1), f).Return([]model.OrderLog{
		{ID: 1, OrderID: 1, Event: model.LogEventOrderPlaced},
		{ID: 2, OrderID: 1, Event: model.LogEventStatusChanged},
	}, int64(2), nil)

	out, err := uc.List(ctx, 1, f)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)
	assert.Equal(t, 2, len(out.Logs))
}

func TestOrderLogList_OrderNotFound(t *testing.T) {
	orders := new(OrderRepoMock)
	logs := new(OrderLogRepoMock)
	uc := usecase.NewOrderLogUsecase(orders, logs)

	orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.List(context.Background(), 9, repo.OrderLogFilter{})
	assertErrContains(t, err, "order not found")
	logs.AssertNotCalled(t, "ListByOrderID", mock.Anything, mock.Anything, mock.Anything)
}
