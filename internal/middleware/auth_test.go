package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/authz"
	"shopapi/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

func doAuth(t *testing.T, header string) (authz.Principal, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := &Auth{JWTSecret: testSecret}
	var got authz.Principal
	err := m.RequireAuth(func(c echo.Context) error {
		p, err := PrincipalFrom(c)
		if err != nil {
			return err
		}
		got = p
		return c.NoContent(http.StatusOK)
	})(c)
	return got, err
}

func TestRequireAuth_ResolvesClaims(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	token, err := tokens.NewAccessToken(userID.String(), true, true, time.Now().Add(time.Hour), testSecret)
	require.NoError(t, err)

	p, err := doAuth(t, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, userID, p.ID)
	assert.True(t, p.IsSuperuser)
	assert.True(t, p.IsActive)
}

func TestRequireAuth_CarriesInactiveFlag(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	token, err := tokens.NewAccessToken(userID.String(), false, false, time.Now().Add(time.Hour), testSecret)
	require.NoError(t, err)

	p, err := doAuth(t, "Bearer "+token)
	require.NoError(t, err)
	assert.False(t, p.IsActive, "active flag must come from the token, not be assumed")
	assert.False(t, authz.CanCreateOrder(p))
}

func TestRequireAuth_Rejections(t *testing.T) {
	t.Parallel()

	expired, err := tokens.NewAccessToken(uuid.NewString(), false, true, time.Now().Add(-time.Hour), testSecret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "expired token", header: "Bearer " + expired},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := doAuth(t, tt.header)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok, "expected HTTPError")
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		})
	}
}
