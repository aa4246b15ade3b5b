package usecase_test

import (
	"context"
	"testing"

	"agrimart/internal/domain/model"
	"agrimart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDeliveryFixture() (*OrderRepoMock, *ProofRepoMock, *OrderLogRepoMock, *usecase.DeliveryUsecase) {
	tx := new(TxManagerMock)
	orders := new(OrderRepoMock)
	proofs := new(ProofRepoMock)
	logs := new(OrderLogRepoMock)

	tx.Repos = &TxReposMock{
		orders:    orders,
		proofs:    proofs,
		orderLogs: logs,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	return orders, proofs, logs, usecase.NewDeliveryUsecase(tx)
}

func TestRecordProof_InTransitOrder(t *testing.T) {
	ctx := context.Background()
	orders, proofs, logs, uc := newDeliveryFixture()

	orders.On("FindByIDForUpdate", mock.Anything, int64(1)).
		Return(model.Order{ID: 1, OrderStatusID: model.OrderStatusInTransit}, nil)
	proofs.On("Create", mock.Anything, mock.MatchedBy(func(p model.ProofOfDelivery) bool {
		return p.OrderID == 1 && p.Status == model.ProofStatusSubmitted && p.Latitude == 14.5995
	})).Return(int64(300), nil)
	logs.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.RecordProof(ctx, actor, 1, usecase.RecordProofInput{
		Latitude:  14.5995,
		Longitude: 120.9842,
		Images:    []string{"https://cdn.example.com/pod/1.jpg"},
		Remarks:   "left at gate",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(300), out.ID)

	// PODはステータスを変えない
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	if assert.Equal(t, 1, len(logs.Created)) {
		assert.Equal(t, model.LogEventProofRecorded, logs.Created[0].Event)
	}
}

// 配達前の注文にはPODを記録できない
func TestRecordProof_NotEligible(t *testing.T) {
	ctx := context.Background()
	orders, proofs, _, uc := newDeliveryFixture()

	orders.On("FindByIDForUpdate", mock.Anything, int64(1)).
		Return(model.Order{ID: 1, OrderStatusID: model.OrderStatusPreparing}, nil)

	_, err := uc.RecordProof(ctx, actor, 1, usecase.RecordProofInput{
		Latitude:  14.5995,
		Longitude: 120.9842,
		Images:    []string{"https://cdn.example.com/pod/1.jpg"},
	})
	assertErrContains(t, err, "delivery-eligible")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, usecase.KindInvalidState, he.Kind)

	proofs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 再配達で2行目が作れる（1注文1行に制約しない）
func TestRecordProof_SecondAttemptAllowed(t *testing.T) {
	ctx := context.Background()
	orders, proofs, logs, uc := newDeliveryFixture()

	orders.On("FindByIDForUpdate", mock.Anything, int64(1)).
		Return(model.Order{ID: 1, OrderStatusID: model.OrderStatusDelivered}, nil)
	proofs.On("Create", mock.Anything, mock.Anything).Return(int64(301), nil)
	logs.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.RecordProof(ctx, actor, 1, usecase.RecordProofInput{
		Latitude:  14.6,
		Longitude: 120.98,
		Images:    []string{"https://cdn.example.com/pod/2.jpg"},
	})
	assert.NoError(t, err)
}

func TestRecordProof_ImagesRequired(t *testing.T) {
	_, _, _, uc := newDeliveryFixture()

	_, err := uc.RecordProof(context.Background(), actor, 1, usecase.RecordProofInput{
		Latitude:  14.6,
		Longitude: 120.98,
	})
	assertErrContains(t, err, "image")
}
