package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle exchanges a verified Google identity for tokens,
	// linking the Google ID to the employee account on first login.
	LoginWithGoogle(ctx context.Context, email string, googleID string) (TokenResponse, error)

	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error
}
