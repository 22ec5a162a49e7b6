package budget

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"backend-suite/internal/budget/models"
	"backend-suite/internal/config"
	"backend-suite/internal/export"
	"backend-suite/internal/httpx"
	"backend-suite/internal/middleware"
)

// Router builds the budget HTTP surface under /api.
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

	api.GET("/expenses/export", exportExpenses(app))

	httpx.Resource(api, "users", app.Users)
	httpx.Resource(api, "accounts", app.Accounts)
	httpx.Resource(api, "incomes", app.Incomes)
	httpx.Resource(api, "expenses", app.Expenses)
	httpx.Resource(api, "budgets", app.Budgets)
	httpx.Resource(api, "goals", app.Goals)

	return r
}

func exportExpenses(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		recs, err := app.Expenses.List(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		rows := make([][]any, len(recs))
		for i, e := range recs {
			acct := any("")
			if e.AccountID != nil {
				acct = *e.AccountID
			}
			rows[i] = []any{e.ID, e.Category, e.Amount,
				e.ExpenseDate.Format("2006-01-02"), e.UserID, acct}
		}
		f, err := export.Workbook("Expenses",
			[]string{"Expense ID", "Category", "Amount", "Date", "User ID", "Account ID"},
			rows)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		export.WriteXLSX(c, "expenses", f)
	}
}
