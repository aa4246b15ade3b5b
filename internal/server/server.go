package server

import (
	"time"

	"agrimart/internal/config"
	"agrimart/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Handlersはルート登録に必要なハンドラ一式
type Handlers struct {
	Auth       *handler.AuthHandler
	Status     *handler.StatusHandler
	Order      *handler.OrderHandler
	Transition *handler.TransitionHandler
	Delivery   *handler.DeliveryHandler
	Payment    *handler.PaymentHandler
	OrderLog   *handler.OrderLogHandler
	AdminOrder *handler.AdminOrderHandler
}

// Newはechoを組み立ててルートを登録する
func New(cfg config.Config, log *zap.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(requestLogger(log))

	h.Auth.RegisterRoutes(e)
	h.Status.RegisterRoutes(e)
	h.Order.RegisterRoutes(e, cfg)
	h.Transition.RegisterRoutes(e, cfg)
	h.Delivery.RegisterRoutes(e, cfg)
	h.Payment.RegisterRoutes(e, cfg)
	h.OrderLog.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)

	return e
}

// requestLoggerはアクセスログをzapへ流す
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency.Round(time.Microsecond)),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
				log.Warn("request", fields...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
