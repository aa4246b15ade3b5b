package handler

import (
	"net/http"

	"agrimart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ステータスカタログの公開API（認証不要の参照データ）
type StatusHandler struct {
	uc *usecase.StatusUsecase
}

func NewStatusHandler(uc *usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

func (h *StatusHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/statuses/orders", h.listOrderStatuses)
	e.GET("/statuses/items", h.listItemStatuses)
}

func (h *StatusHandler) listOrderStatuses(c echo.Context) error {
	out, err := h.uc.ListOrderStatuses(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatusHandler) listItemStatuses(c echo.Context) error {
	out, err := h.uc.ListItemStatuses(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
