package auth_test

import (
	"context"
	"testing"
	"time"

	"go-stationops/internal/account"
	accounterrors "go-stationops/internal/account/errors"
	"go-stationops/internal/auth"
	autherrors "go-stationops/internal/auth/errors"
	"go-stationops/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-jwt-secret"

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, time.Hour)
	p := &auth.Principal{ID: primitive.NewObjectID().Hex(), Role: auth.RoleEmployee}

	token, expiresAt, err := tokens.Issue(p)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, p.ID, subject)
}

func TestTokenManager_Rejects(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, time.Hour)

	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}

	cases := map[string]string{
		"garbage": "not.a.token",
		"expired": sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject:   "abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}),
		"wrong key": sign(jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{
			Subject:   "abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}),
		"no expiry": sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject: "abc",
		}),
		"no subject": sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}),
		"other hmac size": sign(jwt.SigningMethodHS512, []byte(testSecret), jwt.RegisteredClaims{
			Subject:   "abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Verify(token)
			assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
		})
	}
}

func TestSession_Authenticate(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewTokenManager(testSecret, time.Hour)

	t.Run("re-resolves the subject", func(t *testing.T) {
		resolver, repo := setupResolver(t)
		session := auth.NewSession(tokens, resolver)

		emp := &account.EmployeeAccount{ID: primitive.NewObjectID(), Email: "e@x.test"}
		// token claims admin but the store says employee
		token, _, err := tokens.Issue(&auth.Principal{ID: emp.ID.Hex(), Role: auth.RoleAdmin})
		require.NoError(t, err)

		repo.EXPECT().FindAdminByID(gomock.Any(), emp.ID).Return(nil, accounterrors.ErrAccountNotFound)
		repo.EXPECT().FindEmployeeByID(gomock.Any(), emp.ID).Return(emp, nil)

		p, err := session.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleEmployee, p.Role)
		assert.Equal(t, emp.ID.Hex(), p.ID)
	})

	t.Run("valid token for a deleted principal is rejected", func(t *testing.T) {
		resolver, repo := setupResolver(t)
		session := auth.NewSession(tokens, resolver)

		id := primitive.NewObjectID()
		token, _, err := tokens.Issue(&auth.Principal{ID: id.Hex(), Role: auth.RoleCustomer})
		require.NoError(t, err)

		repo.EXPECT().FindAdminByID(gomock.Any(), id).Return(nil, accounterrors.ErrAccountNotFound)
		repo.EXPECT().FindEmployeeByID(gomock.Any(), id).Return(nil, accounterrors.ErrAccountNotFound)
		repo.EXPECT().FindCustomerByID(gomock.Any(), store.CustomerDomain, id).Return(nil, accounterrors.ErrAccountNotFound)
		repo.EXPECT().FindCustomerByID(gomock.Any(), store.Primary, id).Return(nil, accounterrors.ErrAccountNotFound)

		p, err := session.Authenticate(ctx, token)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, autherrors.ErrPrincipalNotFound)
	})

	t.Run("bad token never reaches the stores", func(t *testing.T) {
		resolver, _ := setupResolver(t)
		session := auth.NewSession(tokens, resolver)

		_, err := session.Authenticate(ctx, "broken")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)

		_, err = session.Authenticate(ctx, "  ")
		assert.ErrorIs(t, err, autherrors.ErrMissingToken)
	})
}
