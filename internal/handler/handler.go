package handler

import (
	"errors"
	"net/http"

	"agrimart/internal/middleware"
	repo "agrimart/internal/repository"
	"agrimart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message, Kind: string(he.Kind)})
	}

	// リトライでも解消しなかったロック競合は409で返す
	if errors.Is(err, repo.ErrConflict) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "concurrent update, retry the request", Kind: string(usecase.KindConflict)})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// middleware.AuthJWTがc.Set("user_id", int64)した値を取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	if v == nil {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}

// 監査ログ用の操作者情報をまとめて取り出す
func actorFromContext(c echo.Context) (usecase.Actor, bool) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return usecase.Actor{}, false
	}
	return usecase.Actor{
		UserID:    userID,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}, true
}
