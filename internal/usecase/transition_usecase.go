package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"
)

// 遷移エンジン。明細ステータスの更新・注文ステータスの導出・監査ログの追記を
// 1トランザクションで行う。注文ステータスをここ以外で書き換えてはいけない。
type TransitionUsecase struct {
	tx repo.TransactionManager
}

func NewTransitionUsecase(tx repo.TransactionManager) *TransitionUsecase {
	return &TransitionUsecase{tx: tx}
}

type TransitionItemInput struct {
	NewStatusID model.ItemStatusID
	Notes       string
}

// 遷移後の明細と注文の状態。
type TransitionOutput struct {
	OrderID       int64               `json:"order_id"`
	OrderStatusID model.OrderStatusID `json:"order_status_id"`
	ItemID        int64               `json:"item_id"`
	ItemStatusID  model.ItemStatusID  `json:"item_status_id"`
}

// TransitionItemは1明細のステータスを進める。
//   - 対象ステータスはis_active=trueのカタログ行でなければならない
//   - 遷移表にない移動はinvalid_transition（Cancelledへは非終端から常に可）
//   - 注文ステータスは明細更新と同じtxで導出し直す
//   - 成功した遷移1回につき監査ログを必ず1行追記する
func (u *TransitionUsecase) TransitionItem(ctx context.Context, actor Actor, orderID int64, itemID int64, in TransitionItemInput) (TransitionOutput, error) {
	if actor.UserID <= 0 {
		return TransitionOutput{}, errUnauthorized()
	}
	if orderID <= 0 || itemID <= 0 {
		return TransitionOutput{}, errValidation("invalid id")
	}

	var out TransitionOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 注文行を先にロック
		o, err := r.Orders().FindByIDForUpdate(ctx, orderID)
		if err == repo.ErrNotFound {
			return errNotFound("order not found")
		}
		if err != nil {
			return dbError(err)
		}

		// 対象ステータスは明細カタログで解決する（注文カタログのIDは通らない）
		st, err := r.Statuses().FindItemStatus(ctx, in.NewStatusID)
		if err == repo.ErrNotFound {
			return errNotFound("unknown item status")
		}
		if err != nil {
			return dbError(err)
		}
		if !st.IsActive {
			return errValidation("status is retired")
		}

		// 明細をid昇順でロック
		items, err := r.OrderItems().ListByOrderIDForUpdate(ctx, orderID)
		if err != nil {
			return dbError(err)
		}

		idx := -1
		for i := range items {
			if items[i].ID == itemID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return errNotFound("order item not found")
		}

		from := items[idx].ItemStatusID
		if from == in.NewStatusID {
			// 同一ステータスへの再送は何もしない（ログも増やさない）
			out = TransitionOutput{OrderID: o.ID, OrderStatusID: o.OrderStatusID, ItemID: itemID, ItemStatusID: from}
			return nil
		}
		if !from.CanTransitionTo(in.NewStatusID) {
			return errInvalidTransition(fmt.Sprintf("item status %d cannot move to %d", from, in.NewStatusID))
		}

		items[idx].ItemStatusID = in.NewStatusID
		derived := model.DeriveOrderStatus(items)

		// COD注文は支払い記録なしにDeliveredへ確定できない
		if derived == model.OrderStatusDelivered {
			if err := u.checkCashOnDelivery(ctx, r, o); err != nil {
				return err
			}
		}

		if err := r.OrderItems().UpdateStatus(ctx, itemID, in.NewStatusID); err != nil {
			return dbError(err)
		}
		if derived != o.OrderStatusID {
			if err := r.Orders().UpdateStatus(ctx, orderID, derived); err != nil {
				return dbError(err)
			}
		}

		if err := appendTransitionLog(ctx, r, actor, o.ID, itemID, from, in.NewStatusID, in.Notes); err != nil {
			return dbError(err)
		}

		out = TransitionOutput{OrderID: o.ID, OrderStatusID: derived, ItemID: itemID, ItemStatusID: in.NewStatusID}
		return nil
	})

	if err != nil {
		return TransitionOutput{}, err
	}
	return out, nil
}

// CancelOrderは非終端の明細をすべてCancelledにする。
// 明細ごとに遷移ログ1行＋要約ログ1行（notes=理由）。
// 2回目の呼び出しは対象が残っていなければ何もしない（冪等）。
func (u *TransitionUsecase) CancelOrder(ctx context.Context, actor Actor, orderID int64, reason string) (model.OrderStatusID, error) {
	if actor.UserID <= 0 {
		return 0, errUnauthorized()
	}
	if orderID <= 0 {
		return 0, errValidation("invalid id")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return 0, errValidation("reason is required")
	}

	var result model.OrderStatusID

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUpdate(ctx, orderID)
		if err == repo.ErrNotFound {
			return errNotFound("order not found")
		}
		if err != nil {
			return dbError(err)
		}

		items, err := r.OrderItems().ListByOrderIDForUpdate(ctx, orderID)
		if err != nil {
			return dbError(err)
		}

		changed := 0
		for i := range items {
			from := items[i].ItemStatusID
			if from.IsTerminal() {
				continue
			}
			if err := r.OrderItems().UpdateStatus(ctx, items[i].ID, model.ItemStatusCancelled); err != nil {
				return dbError(err)
			}
			if err := appendTransitionLog(ctx, r, actor, o.ID, items[i].ID, from, model.ItemStatusCancelled, ""); err != nil {
				return dbError(err)
			}
			items[i].ItemStatusID = model.ItemStatusCancelled
			changed++
		}

		derived := model.DeriveOrderStatus(items)
		result = derived

		if changed == 0 {
			// すでに全明細が終端。2回目のキャンセルは何もしない。
			return nil
		}

		if derived != o.OrderStatusID {
			if err := r.Orders().UpdateStatus(ctx, orderID, derived); err != nil {
				return dbError(err)
			}
		}

		uid := actor.UserID
		err = r.OrderLogs().Create(ctx, model.OrderLog{
			OrderID:   o.ID,
			Event:     model.LogEventOrderCancelled,
			UserID:    &uid,
			Notes:     reason,
			IPAddress: actor.IPAddress,
			UserAgent: actor.UserAgent,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return dbError(err)
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return result, nil
}

// COD注文の配達確定には先に（または同時に）COMPLETEDな支払いが要る
func (u *TransitionUsecase) checkCashOnDelivery(ctx context.Context, r repo.TxRepos, o model.Order) error {
	d, err := r.OrderDetails().FindByID(ctx, o.OrderDetailID)
	if err == repo.ErrNotFound {
		return errNotFound("order detail not found")
	}
	if err != nil {
		return dbError(err)
	}
	if d.PaymentMethod != model.PaymentMethodCOD {
		return nil
	}

	paid, err := r.Payments().SumCompletedByOrderID(ctx, o.ID)
	if err != nil {
		return dbError(err)
	}
	if paid < d.TotalAmount {
		return errInvalidState("cash on delivery payment not settled")
	}
	return nil
}

func appendTransitionLog(ctx context.Context, r repo.TxRepos, actor Actor, orderID int64, itemID int64, from model.ItemStatusID, to model.ItemStatusID, notes string) error {
	uid := actor.UserID
	fromID := int64(from)
	toID := int64(to)
	return r.OrderLogs().Create(ctx, model.OrderLog{
		OrderID:     orderID,
		OrderItemID: &itemID,
		Event:       model.LogEventStatusChanged,
		FromStatus:  &fromID,
		ToStatus:    &toID,
		UserID:      &uid,
		Notes:       notes,
		IPAddress:   actor.IPAddress,
		UserAgent:   actor.UserAgent,
		CreatedAt:   time.Now(),
	})
}
