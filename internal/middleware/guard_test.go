package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realestate_backend/internal/auth"
	"realestate_backend/internal/models"
	"realestate_backend/internal/repositories"
	"realestate_backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardedRouter(t *testing.T, db *gorm.DB, tokens TokenParser) *gin.Engine {
	t.Helper()

	guard := NewGuard(tokens, repositories.NewUserRepository())
	echo := func(c *gin.Context, user *auth.Identity) {
		if user == nil {
			c.JSON(http.StatusOK, gin.H{"public": true})
			return
		}
		c.JSON(http.StatusOK, user)
	}

	r := gin.New()
	r.Use(RequestIDMiddleware(), DBMiddleware(db))
	r.GET("/public", guard.Protect(Roles(), echo))
	r.GET("/realtor", guard.Protect(Roles(models.UserTypeRealtor), echo))
	r.GET("/any", guard.Protect(Roles(models.AllUserTypes...), echo))
	return r
}

func get(r http.Handler, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func assertDenied(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func TestProtect_PublicRoutePassesNilIdentity(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newGuardedRouter(t, db, testutil.NewCredentials())

	w := get(r, "/public", "Bearer garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"public":true}`, w.Body.String())
}

func TestProtect_AllowsMatchingRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newGuardedRouter(t, db, testutil.NewCredentials())
	realtor := testutil.CreateUser(t, db, "rita", models.UserTypeRealtor)

	w := get(r, "/realtor", "Bearer "+testutil.Token(t, realtor))
	require.Equal(t, http.StatusOK, w.Code)

	var identity auth.Identity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.Equal(t, realtor.ID, identity.ID)
	assert.Equal(t, "rita", identity.Name)
}

func TestProtect_SchemeIsCaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newGuardedRouter(t, db, testutil.NewCredentials())
	buyer := testutil.CreateUser(t, db, "bob", models.UserTypeBuyer)

	w := get(r, "/any", "bearer "+testutil.Token(t, buyer))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtect_DeniesWrongRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newGuardedRouter(t, db, testutil.NewCredentials())
	buyer := testutil.CreateUser(t, db, "bob", models.UserTypeBuyer)

	assertDenied(t, get(r, "/realtor", "Bearer "+testutil.Token(t, buyer)))
}

func TestProtect_DeniesMissingOrMalformedToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newGuardedRouter(t, db, testutil.NewCredentials())

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc", "Bearer not.a.jwt", "Bearer ???"} {
		assertDenied(t, get(r, "/any", header))
	}
}

func TestProtect_DeniesTokenSignedWithOtherKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newGuardedRouter(t, db, testutil.NewCredentials())
	buyer := testutil.CreateUser(t, db, "bob", models.UserTypeBuyer)

	forged, err := auth.NewCredentials("other-key", testutil.ProductKeySecret, time.Hour).GenerateToken(buyer.ID, buyer.Name)
	require.NoError(t, err)

	assertDenied(t, get(r, "/any", "Bearer "+forged))
}

func TestProtect_DeniesExpiredToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	buyer := testutil.CreateUser(t, db, "bob", models.UserTypeBuyer)

	issued := time.Now().Add(-2 * time.Hour)
	old := testutil.NewCredentials().WithClock(func() time.Time { return issued })
	token, err := old.GenerateToken(buyer.ID, buyer.Name)
	require.NoError(t, err)

	r := newGuardedRouter(t, db, testutil.NewCredentials())
	assertDenied(t, get(r, "/any", "Bearer "+token))
}

func TestProtect_DeniesDeletedUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newGuardedRouter(t, db, testutil.NewCredentials())
	buyer := testutil.CreateUser(t, db, "bob", models.UserTypeBuyer)
	token := testutil.Token(t, buyer)

	require.NoError(t, db.Delete(&models.User{}, buyer.ID).Error)

	assertDenied(t, get(r, "/any", "Bearer "+token))
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(r, "/", "")
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "7c9e6679-7425-40de-944b-e07fc1f90ae7")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", w.Header().Get("X-Request-ID"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
