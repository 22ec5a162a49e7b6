package clinic

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"backend-suite/internal/httpx"
	"backend-suite/internal/middleware"
)

// Router builds the clinic HTTP surface. The app has no users table, so
// there is no login and no token guard.
func Router(db *gorm.DB, log zerolog.Logger) *gin.Engine {
	app := New(db)

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	api := r.Group("/")
	httpx.Resource(api, "patients", app.Patients)
	httpx.Resource(api, "doctors", app.Doctors)
	httpx.Resource(api, "consultations", app.Consultations)
	httpx.Resource(api, "healthrecords", app.HealthRecords)
	httpx.Resource(api, "medicalhistory", app.Histories)

	return r
}
