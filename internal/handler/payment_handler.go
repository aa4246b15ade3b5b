package handler

import (
	"net/http"
	"strconv"

	"agrimart/internal/config"
	"agrimart/internal/domain/model"
	"agrimart/internal/middleware"
	"agrimart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type PaymentCreateRequest struct {
	Method        string `json:"method"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transaction_id"`
	Details       string `json:"details"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.StaffRoleGuard())

	g.POST("/:id/payments", h.create)
}

func (h *PaymentHandler) create(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req PaymentCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.RecordPayment(c.Request().Context(), actor, orderID, usecase.RecordPaymentInput{
		Method:        model.PaymentMethod(req.Method),
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		Details:       req.Details,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
