package auth

import "context"

// LoginTestChecker is a Checker over a fixed token -> coach id map.
type LoginTestChecker struct {
	LoggedSessions map[string]int
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]int{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (int, bool, error) {
	coachID, ok := c.LoggedSessions[token]
	return coachID, ok, nil
}
