package usecase

import (
	"context"
	"strings"
	"time"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"
)

type PaymentUsecase struct {
	tx       repo.TransactionManager
	currency string
}

func NewPaymentUsecase(tx repo.TransactionManager, currency string) *PaymentUsecase {
	return &PaymentUsecase{tx: tx, currency: currency}
}

type RecordPaymentInput struct {
	Method        model.PaymentMethod
	Amount        int64
	TransactionID string
	Details       string
}

type PaymentOutput struct {
	ID            int64               `json:"id"`
	OrderID       int64               `json:"order_id"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
	AmountPaid    int64               `json:"amount_paid"`
	TransactionID string              `json:"transaction_id"`
	PaymentStatus model.PaymentState  `json:"order_payment_status"`
	PaidAt        time.Time           `json:"paid_at"`
}

// RecordPaymentは支払い1回分を記録し、payment_receivedログを追記する。
// 金額はtotal_amountと一致していなくてよい（分割払いを許す）。
// COMPLETED累計がtotal以上になったら注文のpayment_statusをPAIDにする。
func (u *PaymentUsecase) RecordPayment(ctx context.Context, actor Actor, orderID int64, in RecordPaymentInput) (PaymentOutput, error) {
	if actor.UserID <= 0 {
		return PaymentOutput{}, errUnauthorized()
	}
	if orderID <= 0 {
		return PaymentOutput{}, errValidation("invalid id")
	}
	if !model.ValidPaymentMethod(in.Method) {
		return PaymentOutput{}, errValidation("invalid payment method")
	}
	if in.Amount <= 0 {
		return PaymentOutput{}, errValidation("invalid amount")
	}
	if strings.TrimSpace(in.TransactionID) == "" {
		return PaymentOutput{}, errValidation("transaction_id is required")
	}

	var out PaymentOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUpdate(ctx, orderID)
		if err == repo.ErrNotFound {
			return errNotFound("order not found")
		}
		if err != nil {
			return dbError(err)
		}

		d, err := r.OrderDetails().FindByID(ctx, o.OrderDetailID)
		if err != nil {
			return dbError(err)
		}

		now := time.Now()
		paymentID, err := r.Payments().Create(ctx, model.Payment{
			OrderID:        o.ID,
			PaymentMethod:  in.Method,
			PaymentStatus:  model.PaymentStatusCompleted,
			AmountPaid:     in.Amount,
			TransactionID:  in.TransactionID,
			PaymentDetails: in.Details,
			PaidAt:         now,
		})
		if err != nil {
			return dbError(err)
		}

		// 累計で注文の支払い状況を更新
		paid, err := r.Payments().SumCompletedByOrderID(ctx, o.ID)
		if err != nil {
			return dbError(err)
		}
		state := model.PaymentStatePartial
		if paid >= d.TotalAmount {
			state = model.PaymentStatePaid
		}
		if state != d.PaymentStatus {
			if err := r.OrderDetails().UpdatePaymentStatus(ctx, d.ID, state); err != nil {
				return dbError(err)
			}
		}

		uid := actor.UserID
		amount := in.Amount
		err = r.OrderLogs().Create(ctx, model.OrderLog{
			OrderID:          o.ID,
			Event:            model.LogEventPaymentReceived,
			UserID:           &uid,
			Amount:           &amount,
			Currency:         u.currency,
			PaymentReference: in.TransactionID,
			PaymentMethod:    string(in.Method),
			IPAddress:        actor.IPAddress,
			UserAgent:        actor.UserAgent,
			CreatedAt:        now,
		})
		if err != nil {
			return dbError(err)
		}

		out = PaymentOutput{
			ID:            paymentID,
			OrderID:       o.ID,
			PaymentMethod: in.Method,
			AmountPaid:    in.Amount,
			TransactionID: in.TransactionID,
			PaymentStatus: state,
			PaidAt:        now,
		}
		return nil
	})

	if err != nil {
		return PaymentOutput{}, err
	}
	return out, nil
}
