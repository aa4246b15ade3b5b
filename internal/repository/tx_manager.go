package repository

import (
	"context"
	"errors"
)

// リトライ後も解消しなかったロック/直列化の衝突。
var ErrConflict = errors.New("concurrency conflict")

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderDetails() OrderDetailRepository
	OrderItems() OrderItemRepository
	Statuses() StatusRepository
	OrderLogs() OrderLogRepository
	Payments() PaymentRepository
	Proofs() ProofOfDeliveryRepository
	Catalog() CatalogRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// 直列化失敗（SQLSTATE 40001/40P01）は実装側で1回だけリトライする。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
