package library

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"backend-suite/internal/config"
	"backend-suite/internal/export"
	"backend-suite/internal/httpx"
	"backend-suite/internal/library/models"
	"backend-suite/internal/middleware"
)

// Router builds the library HTTP surface under /api.
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
	httpx.Resource(api, "stocks", app.Stocks)
	httpx.Resource(api, "issues", app.Issues)
	httpx.Resource(api, "notifications", app.Notify)

	api.GET("/stocks/user/:userId", func(c *gin.Context) {
		id, ok := httpx.UintParam(c, "userId")
		if !ok {
			return
		}
		recs, err := app.StocksByUser(c.Request.Context(), id)
		httpx.ListResponse(c, recs, err)
	})
	api.GET("/stocks/search", func(c *gin.Context) {
		if title := c.Query("title"); title != "" {
			recs, err := app.SearchByTitle(c.Request.Context(), title)
			httpx.ListResponse(c, recs, err)
			return
		}
		if author := c.Query("author"); author != "" {
			recs, err := app.SearchByAuthor(c.Request.Context(), author)
			httpx.ListResponse(c, recs, err)
			return
		}
		httpx.BadRequest(c, "title or author query parameter is required")
	})
	api.GET("/stocks/export", exportStocks(app))

	api.GET("/issues/user/:userId", func(c *gin.Context) {
		id, ok := httpx.UintParam(c, "userId")
		if !ok {
			return
		}
		recs, err := app.IssuesByUser(c.Request.Context(), id)
		httpx.ListResponse(c, recs, err)
	})
	api.GET("/issues/book/:bookId", func(c *gin.Context) {
		id, ok := httpx.UintParam(c, "bookId")
		if !ok {
			return
		}
		recs, err := app.IssuesByBook(c.Request.Context(), id)
		httpx.ListResponse(c, recs, err)
	})
	api.GET("/issues/status/:status", func(c *gin.Context) {
		recs, err := app.IssuesByStatus(c.Request.Context(), c.Param("status"))
		httpx.ListResponse(c, recs, err)
	})

	api.GET("/notifications/user/:userId", func(c *gin.Context) {
		id, ok := httpx.UintParam(c, "userId")
		if !ok {
			return
		}
		recs, err := app.NotificationsByUser(c.Request.Context(), id)
		httpx.ListResponse(c, recs, err)
	})
	api.GET("/notifications/issue/:bookIssueId", func(c *gin.Context) {
		id, ok := httpx.UintParam(c, "bookIssueId")
		if !ok {
			return
		}
		recs, err := app.NotificationsByIssue(c.Request.Context(), id)
		httpx.ListResponse(c, recs, err)
	})

	return r
}

func exportStocks(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		recs, err := app.Stocks.List(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		rows := make([][]any, len(recs))
		for i, s := range recs {
			rows[i] = []any{s.ID, s.Title, s.Author, s.Subject,
				s.TotalQuantity, s.AvailableQuantity, s.Status, s.UserID}
		}
		f, err := export.Workbook("Stock",
			[]string{"Book ID", "Title", "Author", "Subject",
				"Total Quantity", "Available Quantity", "Status", "User ID"},
			rows)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		export.WriteXLSX(c, "stock", f)
	}
}
