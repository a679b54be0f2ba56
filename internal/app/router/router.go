// Package router はHTTPルーティングを組み立てます。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "shop_backend/internal/feature/auth/transport/handler"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	ordershandler "shop_backend/internal/feature/orders/transport/handler"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/platform/http/handler"
)

// Options are the router settings that do not come from handlers.
type Options struct {
	JWTSecret   string
	CORSOrigins []string
}

// Handlers はルーターに登録するハンドラー一式です。
type Handlers struct {
	Health   *handler.HealthHandler
	Auth     *authhandler.AuthHandler
	Users    *authhandler.UserHandler
	Products *cataloghandler.ProductHandler
	Orders   *ordershandler.OrderHandler
}

func NewRouter(opts Options, h Handlers) *gin.Engine {
	r := gin.Default()

	// CORS追加 (許可オリジンが設定されている場合のみ)
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", ordershandler.HeaderIdempotencyKey},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)
	// 新規ユーザー登録
	r.POST("/auth/signup", h.Auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/auth/login", h.Auth.Login)
	// 商品一覧は公開
	r.GET("/products", h.Products.ListActive)
	r.GET("/products/all", h.Products.ListAll)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		auth.GET("/users", h.Users.List)
		auth.PUT("/users/:id", h.Users.Update)
		auth.DELETE("/users/:id", h.Users.Delete)

		auth.POST("/products/add", h.Products.Add)
		auth.PUT("/products/:id", h.Products.Update)
		auth.DELETE("/products/:id", h.Products.Delete)

		auth.GET("/orders", h.Orders.ListAll)
		auth.GET("/orders/active", h.Orders.ListActive)
		auth.POST("/orders/new", h.Orders.Place)
		auth.PUT("/orders/:id", h.Orders.Update)
		// :id はクライアント(ユーザー)ID
		auth.GET("/orders/:id", h.Orders.ListByClient)
	}

	return r
}
