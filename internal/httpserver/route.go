package httpserver

import (
	"github.com/labstack/echo/v4"

	"shopapi/internal/authz"
	"shopapi/internal/middleware"
)

type Deps struct {
	Auth             *middleware.Auth
	AuthHandler      *AuthHandler
	ProductHandler   *ProductHandler
	OrderHandler     *OrderHandler
	RecommendHandler *RecommendHandler
	UserHandler      *UserHandler
	SearchHandler    *SearchHandler

	// DebugRoutes gates the local-only debug endpoints. Set from
	// configuration at startup, never flipped at runtime.
	DebugRoutes bool
}

func principal(c echo.Context) (authz.Principal, error) {
	return middleware.PrincipalFrom(c)
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.ListProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	admin := v1.Group("/admin", d.Auth.RequireSuperuser)
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
	admin.POST("/users", d.UserHandler.CreateUser)
	admin.DELETE("/users/:id", d.UserHandler.DeleteUser)

	orders := v1.Group("/orders", d.Auth.RequireAuth)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)

	v1.GET("/recommendations", d.RecommendHandler.Recommend, d.Auth.RequireAuth)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}

	if d.DebugRoutes {
		v1.GET("/debug/users/:id", d.UserHandler.DebugGetUser)
	}
}
