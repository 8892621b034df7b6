//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/response"
)

func loginUser(t *testing.T, username, password string) string {
	t.Helper()
	resp := doRequest(t, "POST", "/auth/login", "",
		dto.LoginInput{Username: username, Password: password}, http.StatusOK)

	var result response.TokenResponse
	decodeJSON(t, resp, &result)
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestLogin(t *testing.T) {
	resp := doRequest(t, "POST", "/auth/login", "",
		dto.LoginInput{Username: "admin", Password: "admin123"}, http.StatusOK)

	var result response.TokenResponse
	decodeJSON(t, resp, &result)
	require.Equal(t, "admin", result.Username)
	require.True(t, result.IsSuperuser)
	require.NotEmpty(t, result.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	doRequest(t, "POST", "/auth/login", "",
		dto.LoginInput{Username: "admin", Password: "wrong"}, http.StatusUnauthorized)
}

func TestLoginUnknownUser(t *testing.T) {
	doRequest(t, "POST", "/auth/login", "",
		dto.LoginInput{Username: "nobody", Password: "admin123"}, http.StatusUnauthorized)
}

func TestAuthStatus(t *testing.T) {
	token := loginUser(t, "admin", "admin123")
	resp := doRequest(t, "GET", "/auth/status", token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), `"valid"`)
}

func TestAuthStatusWithoutToken(t *testing.T) {
	doRequest(t, "GET", "/auth/status", "", nil, http.StatusUnauthorized)
}

func TestAdminRoutesRejectAnonymous(t *testing.T) {
	doRequest(t, "GET", "/admin/cocktails", "", nil, http.StatusUnauthorized)
}

func TestAdminRoutesRejectStaff(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	doRequest(t, "POST", "/admin/users", admin, dto.CreateUserInput{
		Username: "barback",
		Password: "barback1",
	}, http.StatusCreated)

	staff := loginUser(t, "barback", "barback1")
	resp := doRequest(t, "GET", "/admin/cocktails", staff, nil, http.StatusForbidden)
	require.Contains(t, resp.Body.String(), "admin only")
}
