//go:build integration_test || all_tests

package test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestAuth_RegisterLoginLogout() {
	t := s.T()

	status, env := s.apiCall(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Coach Carter",
		"email":    "carter@swim.test",
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)

	status, env = s.apiCall(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Coach Carter",
		"email":    "carter@swim.test",
		"password": "secret-pass",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, env = s.apiCall(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "carter@swim.test",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = s.apiCall(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "carter@swim.test",
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, status, env.Error)
	sess := decodeData[session](t, env)
	require.NotEmpty(t, sess.Token)
	assert.Equal(t, "carter@swim.test", sess.User.Email)

	status, env = s.apiCall(t, http.MethodGet, "/api/auth/me", sess.Token, nil)
	require.Equal(t, http.StatusOK, status, env.Error)

	status, _ = s.apiCall(t, http.MethodPost, "/api/auth/logout", sess.Token, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = s.apiCall(t, http.MethodGet, "/api/athletes", sess.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
}

func (s *IntegrationTestSuite) TestAuth_MissingToken() {
	t := s.T()

	status, env := s.apiCall(t, http.MethodGet, "/api/dashboard/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "not authorized, token missing", env.Error)
}
