package handler

import (
	"net/http"
	"strconv"

	"agrimart/internal/config"
	"agrimart/internal/middleware"
	"agrimart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DeliveryHandler struct {
	uc *usecase.DeliveryUsecase
}

func NewDeliveryHandler(uc *usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

func (h *DeliveryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.StaffRoleGuard())

	g.POST("/:id/proof-of-delivery", h.record)
}

// multipart/form-dataで受ける。画像本体は外部ストレージに上げた後の
// URLをimagesフィールドで渡す（アップロード機構はこのAPIの外）。
func (h *DeliveryHandler) record(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	lat, err := strconv.ParseFloat(c.FormValue("latitude"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid latitude"})
	}
	long, err := strconv.ParseFloat(c.FormValue("longitude"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid longitude"})
	}
	remarks := c.FormValue("remarks")

	var images []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		images = form.Value["images"]
	}

	out, err := h.uc.RecordProof(c.Request().Context(), actor, orderID, usecase.RecordProofInput{
		Latitude:  lat,
		Longitude: long,
		Images:    images,
		Remarks:   remarks,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
