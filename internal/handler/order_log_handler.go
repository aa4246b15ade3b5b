package handler

import (
	"net/http"
	"strconv"
	"time"

	"agrimart/internal/config"
	"agrimart/internal/domain/model"
	"agrimart/internal/middleware"
	repo "agrimart/internal/repository"
	"agrimart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderLogHandler struct {
	uc *usecase.OrderLogUsecase
}

func NewOrderLogHandler(uc *usecase.OrderLogUsecase) *OrderLogHandler {
	return &OrderLogHandler{uc: uc}
}

func (h *OrderLogHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.StaffRoleGuard())

	g.GET("/:id/logs", h.list)
}

func (h *OrderLogHandler) list(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var f repo.OrderLogFilter

	if v := c.QueryParam("event"); v != "" {
		ev := model.LogEvent(v)
		f.Event = &ev
	}
	if v := c.QueryParam("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
		}
		f.UserID = &id
	}
	if v := c.QueryParam("from"); v != "" {
		tm, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from"})
		}
		f.From = &tm
	}
	if v := c.QueryParam("to"); v != "" {
		tm, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to"})
		}
		f.To = &tm
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		f.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offset"})
		}
		f.Offset = n
	}

	out, err := h.uc.List(c.Request().Context(), orderID, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
