package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	repo "agrimart/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type txReposGorm struct {
	orders       repo.OrderRepository
	orderDetails repo.OrderDetailRepository
	orderItems   repo.OrderItemRepository
	statuses     repo.StatusRepository
	orderLogs    repo.OrderLogRepository
	payments     repo.PaymentRepository
	proofs       repo.ProofOfDeliveryRepository
	catalog      repo.CatalogRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposGorm) OrderDetails() repo.OrderDetailRepository { return r.orderDetails }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository     { return r.orderItems }
func (r *txReposGorm) Statuses() repo.StatusRepository          { return r.statuses }
func (r *txReposGorm) OrderLogs() repo.OrderLogRepository       { return r.orderLogs }
func (r *txReposGorm) Payments() repo.PaymentRepository         { return r.payments }
func (r *txReposGorm) Proofs() repo.ProofOfDeliveryRepository   { return r.proofs }
func (r *txReposGorm) Catalog() repo.CatalogRepository          { return r.catalog }

type TxManagerGorm struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTxManagerGorm(db *gorm.DB, log *zap.Logger) *TxManagerGorm {
	return &TxManagerGorm{db: db, log: log}
}

// retryBackoffは直列化失敗後の待ち時間。
const retryBackoff = 50 * time.Millisecond

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	err := tm.run(ctx, fn)
	if !isSerializationFailure(err) {
		return err
	}

	// 直列化失敗は1回だけリトライ。それでもだめならErrConflictとして返す。
	tm.log.Warn("tx serialization failure, retrying once", zap.Error(err))
	time.Sleep(retryBackoff)

	err = tm.run(ctx, fn)
	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", repo.ErrConflict, err)
	}
	return err
}

func (tm *TxManagerGorm) run(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:       NewOrderGormRepository(tx),
			orderDetails: NewOrderDetailGormRepository(tx),
			orderItems:   NewOrderItemGormRepository(tx),
			statuses:     NewStatusGormRepository(tx),
			orderLogs:    NewOrderLogGormRepository(tx),
			payments:     NewPaymentGormRepository(tx),
			proofs:       NewProofOfDeliveryGormRepository(tx),
			catalog:      NewCatalogGormRepository(tx),
		}
		return fn(r)
	})
}

// serialization_failure / deadlock_detected
func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
