package library_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qawatake/fixify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"backend-suite/internal/config"
	"backend-suite/internal/database"
	"backend-suite/internal/library"
	"backend-suite/internal/library/models"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, database.MigrateLibrary(db))
	return library.Router(db, config.AuthConfig{}, zerolog.Nop()), db
}

// seed inserts a librarian with two books, a member with an issue on the
// first book and one notification about it.
func seed(t *testing.T, db *gorm.DB) (librarianID, memberID, bookID, issueID uint) {
	t.Helper()
	now := time.Now()

	librarian := fixify.NewModel(&models.User{Username: "lib", Password: "pw", Role: "LIBRARIAN"})
	member := fixify.NewModel(&models.User{Username: "mem", Password: "pw", Role: "MEMBER"})

	stockConn := fixify.ConnectorFunc(func(t testing.TB, s *models.Stock, u *models.User) {
		s.UserID = u.ID
	})
	dune := fixify.NewModel(&models.Stock{
		Title: "The Go Programming Language", Author: "Donovan",
		TotalQuantity: 3, AvailableQuantity: 2, Status: "AVAILABLE",
	}, stockConn)
	sicp := fixify.NewModel(&models.Stock{
		Title: "Structure and Interpretation", Author: "Abelson",
		TotalQuantity: 1, AvailableQuantity: 1, Status: "AVAILABLE",
	}, stockConn)

	issue := fixify.NewModel(&models.BookIssue{
		IssueDate: now, DueDate: now.AddDate(0, 0, 14), Status: "ISSUED",
	},
		fixify.ConnectorFunc(func(t testing.TB, i *models.BookIssue, s *models.Stock) {
			i.BookID = s.ID
		}),
		fixify.ConnectorFunc(func(t testing.TB, i *models.BookIssue, u *models.User) {
			id := u.ID
			i.UserID = &id
		}),
	)
	note := fixify.NewModel(&models.Notify{Message: "due soon", SentAt: now},
		fixify.ConnectorFunc(func(t testing.TB, n *models.Notify, i *models.BookIssue) {
			n.BookIssueID = i.ID
		}),
		fixify.ConnectorFunc(func(t testing.TB, n *models.Notify, u *models.User) {
			n.UserID = u.ID
		}),
	)

	librarian.With(dune, sicp)
	dune.With(issue)
	member.With(issue)
	issue.With(note)
	member.With(note)

	fixify.New(t, librarian, member).Iterate(func(model any) error {
		return db.Create(model).Error
	})

	return librarian.Value().ID, member.Value().ID, dune.Value().ID, issue.Value().ID
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listOf[T any](t *testing.T, w *httptest.ResponseRecorder) []T {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var recs []T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	return recs
}

func TestStocksByUser(t *testing.T) {
	r, db := setup(t)
	librarianID, memberID, _, _ := seed(t, db)

	recs := listOf[models.Stock](t, get(t, r, fmt.Sprintf("/api/stocks/user/%d", librarianID)))
	assert.Len(t, recs, 2)

	recs = listOf[models.Stock](t, get(t, r, fmt.Sprintf("/api/stocks/user/%d", memberID)))
	assert.Empty(t, recs)
}

func TestSearchCaseInsensitive(t *testing.T) {
	r, db := setup(t)
	seed(t, db)

	recs := listOf[models.Stock](t, get(t, r, "/api/stocks/search?title=go+progr"))
	require.Len(t, recs, 1)
	assert.Equal(t, "The Go Programming Language", recs[0].Title)

	recs = listOf[models.Stock](t, get(t, r, "/api/stocks/search?author=ABELSON"))
	require.Len(t, recs, 1)
	assert.Equal(t, "Abelson", recs[0].Author)

	recs = listOf[models.Stock](t, get(t, r, "/api/stocks/search?title=nonexistent"))
	assert.Empty(t, recs)

	w := get(t, r, "/api/stocks/search")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssueFinders(t *testing.T) {
	r, db := setup(t)
	_, memberID, bookID, _ := seed(t, db)

	recs := listOf[models.BookIssue](t, get(t, r, fmt.Sprintf("/api/issues/user/%d", memberID)))
	assert.Len(t, recs, 1)

	recs = listOf[models.BookIssue](t, get(t, r, fmt.Sprintf("/api/issues/book/%d", bookID)))
	assert.Len(t, recs, 1)

	recs = listOf[models.BookIssue](t, get(t, r, "/api/issues/status/ISSUED"))
	assert.Len(t, recs, 1)

	recs = listOf[models.BookIssue](t, get(t, r, "/api/issues/status/RETURNED"))
	assert.Empty(t, recs)
}

func TestNotificationFinders(t *testing.T) {
	r, db := setup(t)
	_, memberID, _, issueID := seed(t, db)

	recs := listOf[models.Notify](t, get(t, r, fmt.Sprintf("/api/notifications/user/%d", memberID)))
	require.Len(t, recs, 1)
	assert.Equal(t, "due soon", recs[0].Message)

	recs = listOf[models.Notify](t, get(t, r, fmt.Sprintf("/api/notifications/issue/%d", issueID)))
	assert.Len(t, recs, 1)
}

func TestIssueRequiresExistingBook(t *testing.T) {
	r, db := setup(t)
	seed(t, db)

	body, err := json.Marshal(gin.H{
		"bookId": 999, "issueDate": time.Now(), "dueDate": time.Now(), "status": "ISSUED",
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/issues", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestStockExport(t *testing.T) {
	r, db := setup(t)
	seed(t, db)

	w := get(t, r, "/api/stocks/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "stock_")
	assert.NotZero(t, w.Body.Len())
}
