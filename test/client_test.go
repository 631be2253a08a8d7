//go:build integration_test || all_tests

package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

const dateLayout = "2006-01-02"

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// apiCall sends body as JSON with the bearer token, when set, and decodes the envelope.
func (s *IntegrationTestSuite) apiCall(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(respBytes, &env), string(respBytes))
	return resp.StatusCode, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v), string(env.Data))
	return v
}

type session struct {
	Token string `json:"token"`
	User  struct {
		ID    int    `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// registerCoach creates a fresh coach and returns its session.
func (s *IntegrationTestSuite) registerCoach(t *testing.T) session {
	t.Helper()
	status, env := s.apiCall(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     gofakeit.Name(),
		"email":    gofakeit.Email(),
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	return decodeData[session](t, env)
}

type created struct {
	ID int `json:"id"`
}

func (s *IntegrationTestSuite) createAthlete(t *testing.T, token string) int {
	t.Helper()
	status, env := s.apiCall(t, http.MethodPost, "/api/athletes", token, map[string]any{
		"firstName":   gofakeit.FirstName(),
		"lastName":    gofakeit.LastName(),
		"dateOfBirth": "2008-04-12",
		"gender":      "female",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	return decodeData[created](t, env).ID
}

type detailBody struct {
	Distance     int     `json:"distance"`
	SwimStyle    string  `json:"swimStyle"`
	TimeSeconds  float64 `json:"timeSeconds"`
	SeriesNumber *int    `json:"seriesNumber,omitempty"`
}

func (s *IntegrationTestSuite) createTraining(t *testing.T, token string, athleteID int, date string, duration int, details ...detailBody) int {
	t.Helper()
	status, env := s.apiCall(t, http.MethodPost, "/api/trainings", token, map[string]any{
		"athleteId":       athleteID,
		"date":            date,
		"trainingType":    "speed",
		"status":          "completed",
		"durationMinutes": duration,
		"details":         details,
	})
	require.Equal(t, http.StatusCreated, status, fmt.Sprintf("%s: %s", date, env.Error))
	return decodeData[created](t, env).ID
}
