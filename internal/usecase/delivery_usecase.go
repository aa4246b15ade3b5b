package usecase

import (
	"context"
	"encoding/json"
	"time"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"
)

type DeliveryUsecase struct {
	tx repo.TransactionManager
}

func NewDeliveryUsecase(tx repo.TransactionManager) *DeliveryUsecase {
	return &DeliveryUsecase{tx: tx}
}

type RecordProofInput struct {
	Latitude  float64
	Longitude float64
	Images    []string
	Remarks   string
}

type ProofOutput struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Images    []string  `json:"images"`
	Remarks   string    `json:"remarks"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordProofは配達証明を1行記録する。注文がIn-TransitかDeliveredのときだけ有効。
// ステータスは変えない（Deliveredへの遷移は別操作）。再配達で複数行になり得る。
func (u *DeliveryUsecase) RecordProof(ctx context.Context, actor Actor, orderID int64, in RecordProofInput) (ProofOutput, error) {
	if actor.UserID <= 0 {
		return ProofOutput{}, errUnauthorized()
	}
	if orderID <= 0 {
		return ProofOutput{}, errValidation("invalid id")
	}
	if len(in.Images) == 0 {
		return ProofOutput{}, errValidation("at least one image is required")
	}

	var out ProofOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUpdate(ctx, orderID)
		if err == repo.ErrNotFound {
			return errNotFound("order not found")
		}
		if err != nil {
			return dbError(err)
		}

		if !o.OrderStatusID.DeliveryEligible() {
			return errInvalidState("order is not in a delivery-eligible state")
		}

		imagesJSON, err := json.Marshal(in.Images)
		if err != nil {
			return errValidation("invalid images")
		}

		now := time.Now()
		proofID, err := r.Proofs().Create(ctx, model.ProofOfDelivery{
			OrderID:    o.ID,
			Latitude:   in.Latitude,
			Longitude:  in.Longitude,
			ImagesJSON: string(imagesJSON),
			Remarks:    in.Remarks,
			Status:     model.ProofStatusSubmitted,
			CreatedAt:  now,
		})
		if err != nil {
			return dbError(err)
		}

		uid := actor.UserID
		meta, _ := json.Marshal(map[string]interface{}{
			"proof_id": proofID,
			"latitude": in.Latitude,
			"images":   len(in.Images),
		})
		err = r.OrderLogs().Create(ctx, model.OrderLog{
			OrderID:      o.ID,
			Event:        model.LogEventProofRecorded,
			UserID:       &uid,
			Notes:        in.Remarks,
			MetadataJSON: string(meta),
			IPAddress:    actor.IPAddress,
			UserAgent:    actor.UserAgent,
			CreatedAt:    now,
		})
		if err != nil {
			return dbError(err)
		}

		out = ProofOutput{
			ID:        proofID,
			OrderID:   o.ID,
			Latitude:  in.Latitude,
			Longitude: in.Longitude,
			Images:    in.Images,
			Remarks:   in.Remarks,
			Status:    string(model.ProofStatusSubmitted),
			CreatedAt: now,
		}
		return nil
	})

	if err != nil {
		return ProofOutput{}, err
	}
	return out, nil
}
