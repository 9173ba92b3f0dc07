package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/common"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login / Register: on success the returned token is installed in the
//     session store.
//   - ForgotPassword / ResetPassword: public endpoints, return the server
//     message.
//   - ChangePassword: refused locally with common.ErrNotAuthenticated unless
//     the session holds a valid token.
//   - Logout: ends the local session.
//
// Calls are never retried.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error)
	Logout(ctx context.Context)
}

type authService struct {
	client        client.Client
	session       SessionStore
	validator     Validator
	log           logging.Logger
	defaultRoleID int
}

func NewAuthService(c client.Client, s SessionStore, v Validator, log logging.Logger, defaultRoleID int) AuthService {
	return &authService{
		client:        c,
		session:       s,
		validator:     v,
		log:           log.With("service", "auth"),
		defaultRoleID: defaultRoleID,
	}
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(req); err != nil {
		return nil, err
	}

	resp, err := a.client.Login(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return a.install(ctx, resp)
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.RoleID == 0 {
		req.RoleID = a.defaultRoleID
	}
	if err := a.validator.Validate(req); err != nil {
		return nil, err
	}

	resp, err := a.client.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return a.install(ctx, resp)
}

func (a *authService) install(ctx context.Context, resp *models.AuthResponse) (*models.User, error) {
	if resp.AccessToken == "" {
		return nil, common.ErrInvalidToken
	}
	if err := a.session.SetAuthenticatedUser(ctx, resp.AccessToken); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "authenticated", "user_id", resp.User.ID)
	return &resp.User, nil
}

func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (string, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(req); err != nil {
		return "", err
	}

	resp, err := a.client.ForgotPassword(ctx, req)
	if err != nil {
		return "", fmt.Errorf("forgot password: %w", err)
	}
	return resp.Message, nil
}

func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	if err := a.validator.Validate(req); err != nil {
		return "", err
	}

	resp, err := a.client.ResetPassword(ctx, req)
	if err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	return resp.Message, nil
}

func (a *authService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error) {
	if !a.session.IsTokenValid(ctx) {
		return "", common.ErrNotAuthenticated
	}
	if err := a.validator.Validate(req); err != nil {
		return "", err
	}

	resp, err := a.client.ChangePassword(ctx, req)
	if err != nil {
		return "", fmt.Errorf("change password: %w", endOnUnauthorized(ctx, a.session, err))
	}
	return resp.Message, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Logout(ctx)
}
