package usecase

import (
	"context"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"
)

// ステータスカタログの公開（管理画面のプルダウン用）。
type StatusUsecase struct {
	statuses repo.StatusRepository
}

func NewStatusUsecase(statuses repo.StatusRepository) *StatusUsecase {
	return &StatusUsecase{statuses: statuses}
}

func (u *StatusUsecase) ListOrderStatuses(ctx context.Context) ([]model.OrderStatus, error) {
	out, err := u.statuses.ListOrderStatuses(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return out, nil
}

func (u *StatusUsecase) ListItemStatuses(ctx context.Context) ([]model.OrderItemStatus, error) {
	out, err := u.statuses.ListItemStatuses(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return out, nil
}
