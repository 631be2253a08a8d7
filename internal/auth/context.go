package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/swimcoach/pkg"
)

var ErrNotAuthenticated = &pkg.KindError{Kind: pkg.ErrUnauthorized, Msg: "not authenticated"}

type coachIDKey struct{}

func WithCoachID(ctx context.Context, coachID int) context.Context {
	return context.WithValue(ctx, coachIDKey{}, coachID)
}

// CoachIDFromContext returns the id of the authenticated coach set by the auth middleware.
func CoachIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(coachIDKey{}).(int)
	return id, ok && id > 0
}

// RequireCoachID is CoachIDFromContext for handlers behind the auth middleware.
func RequireCoachID(ctx context.Context) (int, error) {
	id, ok := CoachIDFromContext(ctx)
	if !ok {
		return 0, ErrNotAuthenticated
	}
	return id, nil
}

// BearerToken extracts the token from the Authorization header, empty if absent.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
