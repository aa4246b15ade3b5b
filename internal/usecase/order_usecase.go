package usecase

import (
	"context"
	"strings"
	"time"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"
)

type OrderUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
}

// order_code生成の約束（本番はUUID、テストは固定値）
type IDGenerator interface {
	NewID() string
}

func NewOrderUsecase(tx repo.TransactionManager, idGen IDGenerator) *OrderUsecase {
	return &OrderUsecase{tx: tx, idGen: idGen}
}

type PlaceOrderItemInput struct {
	ItemID   int64
	Quantity int64
}

type PlaceOrderInput struct {
	ShippingAddress  string
	DropLocationLat  float64
	DropLocationLong float64
	OrderInstruction string
	PaymentMethod    model.PaymentMethod
	ShippingFee      int64
	TotalAmount      int64
	Items            []PlaceOrderItemInput
}

type OrderItemOutput struct {
	ID              int64              `json:"id"`
	ItemID          int64              `json:"item_id"`
	ShopID          int64              `json:"shop_id"`
	Quantity        int64              `json:"quantity"`
	PriceAtPurchase int64              `json:"price_at_purchase"`
	ItemStatusID    model.ItemStatusID `json:"item_status_id"`
}

type OrderOutput struct {
	ID            int64               `json:"id"`
	UserID        int64               `json:"user_id"`
	OrderCode     string              `json:"order_code"`
	OrderStatusID model.OrderStatusID `json:"order_status_id"`
	Subtotal      int64               `json:"subtotal"`
	ShippingFee   int64               `json:"shipping_fee"`
	TotalAmount   int64               `json:"total_amount"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
	PaymentStatus model.PaymentState  `json:"payment_status"`
	OrderedAt     time.Time           `json:"ordered_at"`
	Items         []OrderItemOutput   `json:"items"`
}

// PlaceOrderはOrder・OrderDetail・OrderItemsを1トランザクションで作る。
// 価格は商品カタログからprice_at_purchaseへスナップショットし、
// subtotal + shipping_fee == total_amount を検証してから確定する。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, errUnauthorized()
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, errValidation("order has no items")
	}
	if strings.TrimSpace(in.ShippingAddress) == "" {
		return OrderOutput{}, errValidation("shipping address is required")
	}
	if !model.ValidPaymentMethod(in.PaymentMethod) {
		return OrderOutput{}, errValidation("invalid payment method")
	}
	if in.ShippingFee < 0 {
		return OrderOutput{}, errValidation("invalid shipping fee")
	}
	for _, it := range in.Items {
		if it.ItemID <= 0 || it.Quantity <= 0 {
			return OrderOutput{}, errValidation("invalid order item")
		}
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		var subtotal int64 = 0

		for _, line := range in.Items {
			item, err := r.Catalog().FindItem(ctx, line.ItemID)
			if err == repo.ErrNotFound {
				return errNotFound("item not found")
			}
			if err != nil {
				return dbError(err)
			}
			if !item.IsActive {
				return errValidation("item is inactive")
			}

			shop, err := r.Catalog().FindShop(ctx, item.ShopID)
			if err == repo.ErrNotFound {
				return errNotFound("shop not found")
			}
			if err != nil {
				return dbError(err)
			}
			if !shop.IsActive {
				return errValidation("shop is inactive")
			}

			//スナップショット
			orderItems = append(orderItems, model.OrderItem{
				ItemID:          item.ID,
				ShopID:          shop.ID,
				Quantity:        line.Quantity,
				PriceAtPurchase: item.Price,
				ItemStatusID:    model.ItemStatusPending,
			})
			subtotal += item.Price * line.Quantity
		}

		// 金額の不変条件
		if subtotal+in.ShippingFee != in.TotalAmount {
			return errValidation("total amount mismatch")
		}

		detailID, err := r.OrderDetails().Create(ctx, model.OrderDetail{
			OrderCode:        u.idGen.NewID(),
			Subtotal:         subtotal,
			ShippingFee:      in.ShippingFee,
			TotalAmount:      in.TotalAmount,
			ShippingAddress:  in.ShippingAddress,
			DropLocationLat:  in.DropLocationLat,
			DropLocationLong: in.DropLocationLong,
			OrderInstruction: in.OrderInstruction,
			PaymentMethod:    in.PaymentMethod,
			PaymentStatus:    model.PaymentStateUnpaid,
		})
		if err != nil {
			return dbError(err)
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:        userID,
			OrderDetailID: detailID,
			OrderStatusID: model.OrderStatusPending,
		})
		if err != nil {
			return dbError(err)
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return dbError(err)
		}

		uid := userID
		amount := in.TotalAmount
		err = r.OrderLogs().Create(ctx, model.OrderLog{
			OrderID:   orderID,
			Event:     model.LogEventOrderPlaced,
			UserID:    &uid,
			Amount:    &amount,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return dbError(err)
		}

		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return dbError(err)
		}
		d, err := r.OrderDetails().FindByID(ctx, detailID)
		if err != nil {
			return dbError(err)
		}
		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return dbError(err)
		}
		out = toOrderOutput(o, d, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, errUnauthorized()
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByUserID(ctx, userID, 1, 50)
		if err != nil {
			return dbError(err)
		}

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
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, errUnauthorized()
	}
	if orderID <= 0 {
		return OrderOutput{}, errValidation("invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return errNotFound("order not found")
		}
		if err != nil {
			return dbError(err)
		}
		if o.UserID != userID {
			//他人の注文は「存在しない扱い」にする
			return errNotFound("order not found")
		}

		d, err := r.OrderDetails().FindByID(ctx, o.OrderDetailID)
		if err != nil {
			return dbError(err)
		}
		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return dbError(err)
		}

		out = toOrderOutput(o, d, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, d model.OrderDetail, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ID:              it.ID,
			ItemID:          it.ItemID,
			ShopID:          it.ShopID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
			ItemStatusID:    it.ItemStatusID,
		})
	}

	return OrderOutput{
		ID:            o.ID,
		UserID:        o.UserID,
		OrderCode:     d.OrderCode,
		OrderStatusID: o.OrderStatusID,
		Subtotal:      d.Subtotal,
		ShippingFee:   d.ShippingFee,
		TotalAmount:   d.TotalAmount,
		PaymentMethod: d.PaymentMethod,
		PaymentStatus: d.PaymentStatus,
		OrderedAt:     o.OrderedAt,
		Items:         outItems,
	}
}
