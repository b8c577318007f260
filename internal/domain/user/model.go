package user

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the signed-in viewer. The zero Session is anonymous.
type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
	Token    string `json:"token"`
}

func (s Session) IsAnonymous() bool {
	return s.UserID == "" || s.Token == ""
}

// Expired reports whether the bearer token's exp claim is in the past at now.
// Tokens that cannot be decoded count as expired; tokens without exp never expire.
// The signature is not checked: the backend does that on every request.
func (s Session) Expired(now time.Time) bool {
	if s.Token == "" {
		return true
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, &claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}
	return exp.Time.Before(now)
}

// CanManage reports whether the session may delete a resource owned by ownerID.
func (s Session) CanManage(ownerID string) bool {
	if s.IsAnonymous() {
		return false
	}
	return s.IsAdmin || (ownerID != "" && s.UserID == ownerID)
}

// Profile is a public user record as shown on a profile page.
type Profile struct {
	ID       string
	Username string
	Email    string
	Image    string
}

type Credentials struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

type Registration struct {
	Username        string `json:"username" validate:"required,max=64"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// ProfileUpdate changes the signed-in user's public details.
type ProfileUpdate struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
}
