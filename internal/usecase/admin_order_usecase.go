package usecase

import (
	"context"
	"net/http"

	repo "agrimart/internal/repository"
)

// 管理画面向けの注文一覧。
type AdminOrderUsecase struct {
	tx repo.TransactionManager
}

func NewAdminOrderUsecase(tx repo.TransactionManager) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx}
}

func (u *AdminOrderUsecase) List(ctx context.Context, f repo.OrderListFilter) ([]OrderOutput, int64, error) {
	// page/limitの最低限チェック
	if f.Page < 1 {
		return []OrderOutput{}, 0, NewHTTPError(http.StatusBadRequest, KindValidation, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return []OrderOutput{}, 0, NewHTTPError(http.StatusBadRequest, KindValidation, "invalid limit")
	}

	var outs []OrderOutput
	var total int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, n, err := r.Orders().ListAdmin(ctx, f)
		if err != nil {
			return dbError(err)
		}
		total = n

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			d, err := r.OrderDetails().FindByID(ctx, o.OrderDetailID)
			if err != nil {
				return dbError(err)
			}
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return dbError(err)
			}
			outs = append(outs, toOrderOutput(o, d, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, 0, err
	}
	return outs, total, nil
}
