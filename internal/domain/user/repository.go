package user

import "context"

// AccountGateway is the remote user service.
type AccountGateway interface {
	Login(ctx context.Context, creds Credentials) (Session, error)
	Register(ctx context.Context, reg Registration) error
	GetProfile(ctx context.Context, userID string) (Profile, error)
	UpdateProfile(ctx context.Context, token, userID string, update ProfileUpdate) (Profile, error)
}
