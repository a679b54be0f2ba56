package di

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"shop_backend/internal/app/router"
	"shop_backend/internal/config"
	authadapters "shop_backend/internal/feature/auth/adapters"
	"shop_backend/internal/feature/auth/credential"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	catalogadapters "shop_backend/internal/feature/catalog/adapters"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	catalogusecase "shop_backend/internal/feature/catalog/usecase"
	ordersadapters "shop_backend/internal/feature/orders/adapters"
	ordershandler "shop_backend/internal/feature/orders/transport/handler"
	ordersusecase "shop_backend/internal/feature/orders/usecase"
	"shop_backend/internal/platform/http/handler"
	jwtmw "shop_backend/internal/platform/jwt"
	infraredis "shop_backend/internal/platform/redis"
)

// NewEngine wires repositories, usecases and handlers into a router.
// rdb may be nil.
func NewEngine(cfg config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	// Repository
	userRepo := authadapters.NewUserGorm(db)
	productRepo := catalogadapters.NewProductGorm(db)
	orderRepo := ordersadapters.NewOrderGorm(db)

	// Usecase
	creds := credential.New()
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, creds, tokens)
	userUC := authusecase.NewUserUsecase(userRepo, creds)
	productUC := catalogusecase.NewProductUsecase(productRepo)
	assembler := ordersusecase.NewAssembler(ordersadapters.NewClientFinder(userRepo), productRepo, orderRepo)
	orderUC := ordersusecase.NewOrderUsecase(assembler, orderRepo, NewRequestGuard(rdb, cfg.IdempotencyTTL))

	// Handler
	return router.NewRouter(
		router.Options{JWTSecret: cfg.JWTSecret, CORSOrigins: cfg.CORSAllowedOrigins},
		router.Handlers{
			Health:   handler.NewHealthHandler(HealthChecks(db, rdb)...),
			Auth:     authhandler.NewAuthHandler(authUC),
			Users:    authhandler.NewUserHandler(userUC),
			Products: cataloghandler.NewProductHandler(productUC),
			Orders:   ordershandler.NewOrderHandler(orderUC),
		},
	)
}

// HealthChecks returns a database probe and, when rdb is set, a Redis probe.
func HealthChecks(db *gorm.DB, rdb *redis.Client) []handler.Check {
	checks := []handler.Check{{
		Name: "database",
		Probe: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return sqlDB.PingContext(ctx)
		},
	}}
	if rdb != nil {
		checks = append(checks, handler.Check{
			Name: "redis",
			Probe: func(ctx context.Context) error {
				return infraredis.Ping(ctx, rdb)
			},
		})
	}
	return checks
}
