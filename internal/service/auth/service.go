package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/auth"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/user"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	usr, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}
	if !usr.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	// Not every user has an employee record; admin accounts may not.
	var employeeID *string
	if emp, err := s.employeeRepo.GetByUserID(ctx, usr.ID); err == nil {
		employeeID = &emp.ID
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.LoginResponse{}, err
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(usr.ID, usr.Email, employeeID, usr.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, _, err := s.jwtService.GenerateRefreshToken(usr.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, usr.ID); err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User: auth.UserInfo{
			ID:         usr.ID,
			Email:      usr.Email,
			Role:       string(usr.Role),
			EmployeeID: employeeID,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.RefreshTokenResponse, error) {
	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		if s.jwtService.IsTokenRevoked(refreshToken) {
			return auth.RefreshTokenResponse{}, auth.ErrTokenRevoked
		}
		return auth.RefreshTokenResponse{}, auth.ErrInvalidToken
	}

	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshTokenResponse{}, err
	}
	if !usr.IsActive {
		return auth.RefreshTokenResponse{}, user.ErrUserInactive
	}

	var employeeID *string
	if emp, err := s.employeeRepo.GetByUserID(ctx, usr.ID); err == nil {
		employeeID = &emp.ID
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.RefreshTokenResponse{}, err
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(usr.ID, usr.Email, employeeID, usr.Role)
	if err != nil {
		return auth.RefreshTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshTokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if _, err := s.jwtService.ParseRefreshToken(refreshToken); err != nil {
		// An already invalid token has nothing to revoke.
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) GetProfile(ctx context.Context) (auth.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.ProfileResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.ProfileResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.ProfileResponse{}, err
	}

	resp := auth.ProfileResponse{
		ID:    usr.ID,
		Email: usr.Email,
		Role:  string(usr.Role),
	}
	if usr.LastLogin != nil {
		lastLogin := usr.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &lastLogin
	}

	if emp, err := s.employeeRepo.GetByUserID(ctx, usr.ID); err == nil {
		resp.EmployeeID = &emp.ID
		resp.EmployeeCode = &emp.EmployeeCode
		resp.FirstName = &emp.FirstName
		resp.LastName = &emp.LastName
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.ProfileResponse{}, err
	}

	return resp, nil
}

func (s *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return fmt.Errorf("user_id claim is missing or invalid")
	}

	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, usr.ID, string(hash))
}
