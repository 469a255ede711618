package delivery

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "konexio-backend/internal/auth/domain"
	"konexio-backend/internal/auth/repository"
	"konexio-backend/internal/auth/token"
	"konexio-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *token.Service, repository.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}))

	userRepo := repository.NewUserRepository(db)
	tokens := token.NewService("test-secret", 50*time.Minute)
	authUc := usecase.NewAuthUsecase(userRepo, tokens)

	r := gin.New()
	r.GET("/protected", Authenticate(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(ContextUserIDKey)})
	})
	r.GET("/admin", Authenticate(tokens), RequireAdmin(authUc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, tokens, userRepo
}

func TestAuthenticate_MissingCookie(t *testing.T) {
	r, _, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"Invalid or expired token. Please login first."}`, w.Body.String())
}

func TestAuthenticate_GarbageToken_ClearsCookie(t *testing.T) {
	r, _, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	require.True(t, cleared, "expected the jwt cookie to be cleared")
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	r, _, _ := newAuthTestRouter(t)

	expired := token.NewService("test-secret", -time.Minute)
	tok, err := expired.Issue("u1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ValidToken_AttachesSubject(t *testing.T) {
	r, tokens, _ := newAuthTestRouter(t)

	tok, err := tokens.Issue("user-42")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"userID":"user-42"}`, w.Body.String())
}

func TestRequireAdmin_ForbiddenForNonAdmin(t *testing.T) {
	r, tokens, userRepo := newAuthTestRouter(t)

	user := &authdomain.User{Email: "pleb@example.com", Password: "h"}
	require.NoError(t, userRepo.Create(user))

	tok, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	r, tokens, userRepo := newAuthTestRouter(t)

	admin := &authdomain.User{Email: "admin@example.com", Password: "h", IsAdmin: true}
	require.NoError(t, userRepo.Create(admin))

	tok, err := tokens.Issue(admin.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
