package grocery

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"backend-suite/internal/config"
	"backend-suite/internal/httpx"
	"backend-suite/internal/grocery/models"
	"backend-suite/internal/middleware"
)

// Router builds the grocery HTTP surface. Entity routes sit at the root;
// /auth/login stays open while the rest is guarded when auth is enabled.
func Router(db *gorm.DB, auth config.AuthConfig, log zerolog.Logger) *gin.Engine {
	app := New(db)

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	r.POST("/auth/login", httpx.Login(app.Users.Repo(), auth.JWTSecret,
		time.Duration(auth.ExpireHours)*time.Hour,
		func(u *models.User) (uint, string) { return u.ID, u.Password }))

	api := r.Group("/")
	if auth.Enabled {
		api.Use(middleware.RequireAuth(auth.JWTSecret))
	}

	httpx.Resource(api, "users", app.Users)
	httpx.Resource(api, "products", app.Products)
	httpx.Resource(api, "discounts", app.Discounts)
	httpx.Resource(api, "carts", app.Carts)
	httpx.Resource(api, "orders", app.Orders)
	httpx.Resource(api, "payments", app.Payments)
	httpx.Resource(api, "deliveries", app.Deliveries)

	return r
}
