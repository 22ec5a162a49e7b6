package college

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"backend-suite/internal/college/models"
	"backend-suite/internal/config"
	"backend-suite/internal/httpx"
	"backend-suite/internal/middleware"
)

// Router builds the admissions HTTP surface under /api. Fees payments get
// hand-written handlers because their create resolves the application by
// form id and their reads embed it.
func Router(db *gorm.DB, auth config.AuthConfig, log zerolog.Logger) *gin.Engine {
	app := New(db)

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	r.POST("/auth/login", httpx.Login(app.Users.Repo(), auth.JWTSecret,
		time.Duration(auth.ExpireHours)*time.Hour,
		func(u *models.User) (uint, string) { return u.ID, u.Password }))

	api := r.Group("/api")
	if auth.Enabled {
		api.Use(middleware.RequireAuth(auth.JWTSecret))
	}

	httpx.Resource(api, "users", app.Users)
	httpx.Resource(api, "courses", app.Courses)
	httpx.Resource(api, "documents", app.Documents)
	httpx.Resource(api, "applications", app.Applications)

	api.POST("/payments", func(c *gin.Context) {
		var p models.FeesPayment
		if err := c.ShouldBindJSON(&p); err != nil {
			httpx.BadRequest(c, "invalid request body: "+err.Error())
			return
		}
		created, err := app.CreatePayment(c.Request.Context(), &p)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	})
	api.GET("/payments", func(c *gin.Context) {
		recs, err := app.ListPayments(c.Request.Context())
		httpx.ListResponse(c, recs, err)
	})
	api.GET("/payments/:id", func(c *gin.Context) {
		id, ok := httpx.IDParam(c)
		if !ok {
			return
		}
		p, err := app.GetPayment(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	})
	api.PUT("/payments/:id", func(c *gin.Context) {
		id, ok := httpx.IDParam(c)
		if !ok {
			return
		}
		var patch models.FeesPayment
		if err := c.ShouldBindJSON(&patch); err != nil {
			httpx.BadRequest(c, "invalid request body: "+err.Error())
			return
		}
		merged, err := app.Payments.Update(c.Request.Context(), id, &patch)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, merged)
	})
	api.DELETE("/payments/:id", func(c *gin.Context) {
		id, ok := httpx.IDParam(c)
		if !ok {
			return
		}
		if err := app.Payments.Delete(c.Request.Context(), id); err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	})

	return r
}
