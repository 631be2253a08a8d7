package auth

import (
	"time"

	"github.com/2beens/swimcoach/pkg"
)

const RoleCoach = "coach"

var (
	ErrCoachNotFound      = &pkg.KindError{Kind: pkg.ErrNotFound, Msg: "coach not found"}
	ErrEmailTaken         = &pkg.KindError{Kind: pkg.ErrConflict, Msg: "email already registered"}
	ErrInvalidCredentials = &pkg.KindError{Kind: pkg.ErrUnauthorized, Msg: "invalid credentials"}
	ErrInvalidToken       = &pkg.KindError{Kind: pkg.ErrUnauthorized, Msg: "invalid token"}
	ErrSessionNotFound    = &pkg.KindError{Kind: pkg.ErrUnauthorized, Msg: "session not found"}
)

type Coach struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is what a successful register or login hands back to the client.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *Coach    `json:"user"`
}
