package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-stationops/internal/auth"
	autherrors "go-stationops/internal/auth/errors"
	"go-stationops/internal/shared/apperror"
	"go-stationops/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	loginFn func(ctx context.Context, email, password string) (auth.LoginResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (auth.LoginResponse, error) {
	return f.loginFn(ctx, email, password)
}

func setupAuthRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	h := auth.NewHandler(svc)
	r.POST("/login", h.Login)
	r.GET("/me", func(c *gin.Context) {
		p := &auth.Principal{ID: "abc", Role: auth.RoleCustomer, Origin: store.CustomerDomain}
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
	}, h.Me)
	r.GET("/me-anon", h.Me)
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := setupAuthRouter(&fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (auth.LoginResponse, error) {
				assert.Equal(t, "a@x.test", email)
				return auth.LoginResponse{AccessToken: "tok", TokenType: "Bearer", Principal: auth.PrincipalResponse{Role: "admin"}}, nil
			},
		})

		w := postLogin(r, `{"email":"a@x.test","password":"pw"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]any)
		assert.Equal(t, "tok", data["access_token"])
	})

	t.Run("validation error", func(t *testing.T) {
		r := setupAuthRouter(&fakeAuthService{})
		w := postLogin(r, `{"email":"nope"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("every auth failure reads the same", func(t *testing.T) {
		for _, failure := range []error{autherrors.ErrInvalidCredentials, errors.New("anything")} {
			r := setupAuthRouter(&fakeAuthService{
				loginFn: func(ctx context.Context, email, password string) (auth.LoginResponse, error) {
					return auth.LoginResponse{}, failure
				},
			})
			w := postLogin(r, `{"email":"a@x.test","password":"pw"}`)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Invalid credentials")
		}
	})

	t.Run("store outage is a 500", func(t *testing.T) {
		r := setupAuthRouter(&fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, store.Unreachable(store.Primary, errors.New("timeout"))
			},
		})
		w := postLogin(r, `{"email":"a@x.test","password":"pw"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeStoreUnreachable)
	})
}

func TestHandler_Me(t *testing.T) {
	r := setupAuthRouter(&fakeAuthService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me-anon", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
