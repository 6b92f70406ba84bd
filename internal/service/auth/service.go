package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eakathit/TimeTracker/internal/domain/auth"
	"github.com/eakathit/TimeTracker/internal/domain/employee"
	"github.com/eakathit/TimeTracker/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	logger       *slog.Logger
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	logger *slog.Logger,
) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if emp.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueTokens(ctx, emp)
}

func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string, googleID string) (auth.TokenResponse, error) {
	emp, err := a.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if !emp.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	// Link the Google identity on first OAuth login.
	if emp.GoogleID == nil {
		emp.GoogleID = &googleID
		if err := a.employeeRepo.Update(ctx, emp); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	} else if *emp.GoogleID != googleID {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, emp)
}

func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	emp, err := a.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if !emp.IsActive {
		return auth.AccessTokenResponse{}, auth.ErrAccountInactive
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err =
		a.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return resp, nil
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, emp employee.Employee) (auth.TokenResponse, error) {
	var resp auth.TokenResponse
	var err error

	resp.AccessToken, resp.AccessTokenExpiresIn, err =
		a.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	resp.RefreshToken, resp.RefreshTokenExpiresIn, err =
		a.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	a.logger.InfoContext(ctx, "employee logged in", slog.String("employee_id", emp.ID))

	return resp, nil
}
