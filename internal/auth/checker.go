package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	// IsLogged returns the id of the coach owning the token when the session is alive.
	IsLogged(ctx context.Context, token string) (int, bool, error)
}
