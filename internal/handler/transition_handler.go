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

// 遷移エンジンのHTTP面。店舗側（VENDOR/ADMIN）専用。
type TransitionHandler struct {
	uc *usecase.TransitionUsecase
}

func NewTransitionHandler(uc *usecase.TransitionUsecase) *TransitionHandler {
	return &TransitionHandler{uc: uc}
}

type ItemStatusUpdateRequest struct {
	StatusID int64  `json:"status_id"`
	Notes    string `json:"notes"`
}

type OrderCancelRequest struct {
	Reason string `json:"reason"`
}

func (h *TransitionHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.StaffRoleGuard())

	g.POST("/:id/items/:itemId/status", h.updateItemStatus)
	g.POST("/:id/cancel", h.cancel)
}

func (h *TransitionHandler) updateItemStatus(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	var req ItemStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.TransitionItem(c.Request().Context(), actor, orderID, itemID, usecase.TransitionItemInput{
		NewStatusID: model.ItemStatusID(req.StatusID),
		Notes:       req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *TransitionHandler) cancel(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req OrderCancelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	status, err := h.uc.CancelOrder(c.Request().Context(), actor, orderID, req.Reason)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":         "cancelled",
		"order_status_id": status,
	})
}
