package main

import (
	"time"

	"agrimart/internal/config"
	"agrimart/internal/domain/model"
	"agrimart/internal/handler"
	"agrimart/internal/infra/db"
	infraRepo "agrimart/internal/infra/repository"
	"agrimart/internal/server"
	"agrimart/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// order_code用のUUID生成器
type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

// HS256でアクセストークンを発行する
type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envは無くても起動できる（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Agrivet{},
		&model.Shop{},
		&model.Item{},
		&model.OrderStatus{},
		&model.OrderItemStatus{},
		&model.OrderDetail{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderLog{},
		&model.ProofOfDelivery{},
		&model.Payment{},
	); err != nil {
		log.Fatal("auto migrate failed", zap.Error(err))
	}

	//ステータスカタログ投入と旧文字列データの移行
	if err := db.SeedStatusCatalogs(gormDB); err != nil {
		log.Fatal("seed status catalogs failed", zap.Error(err))
	}
	if err := db.MigrateLegacyStatuses(gormDB); err != nil {
		log.Fatal("migrate legacy statuses failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	logRepo := infraRepo.NewOrderLogGormRepository(gormDB)
	statusRepo := infraRepo.NewStatusGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB, log)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: cfg.AccessTokenTTL,
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, issuer)
	statusUC := usecase.NewStatusUsecase(statusRepo)
	orderUC := usecase.NewOrderUsecase(txManager, idGen)
	transitionUC := usecase.NewTransitionUsecase(txManager)
	deliveryUC := usecase.NewDeliveryUsecase(txManager)
	paymentUC := usecase.NewPaymentUsecase(txManager, cfg.Currency)
	logUC := usecase.NewOrderLogUsecase(orderRepo, logRepo)
	adminUC := usecase.NewAdminOrderUsecase(txManager)

	//Server起動
	e := server.New(cfg, log, server.Handlers{
		Auth:       handler.NewAuthHandler(authUC),
		Status:     handler.NewStatusHandler(statusUC),
		Order:      handler.NewOrderHandler(orderUC),
		Transition: handler.NewTransitionHandler(transitionUC),
		Delivery:   handler.NewDeliveryHandler(deliveryUC),
		Payment:    handler.NewPaymentHandler(paymentUC),
		OrderLog:   handler.NewOrderLogHandler(logUC),
		AdminOrder: handler.NewAdminOrderHandler(adminUC),
	})

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
