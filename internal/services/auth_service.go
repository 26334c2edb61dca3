package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/you/authsvc/domain"
)

// AuthConfig carries the flow-level knobs for the auth service.
type AuthConfig struct {
	// SessionTTL is the token lifetime for a plain login.
	SessionTTL time.Duration
	// RememberMeTTL is the extended lifetime selected by the remember-me
	// tier.
	RememberMeTTL time.Duration
	// DefaultRole is embedded as the role claim on issued tokens.
	DefaultRole string
	// SendTimeout bounds the fire-and-forget confirmation dispatch.
	SendTimeout time.Duration
}

// AuthServiceImpl implements domain.AuthService. Business-rule rejections
// come back inside the result value; a non-nil error always means an
// infrastructure failure the web layer should map to a 5xx.
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	confirmationSvc domain.ConfirmationService
	cfg             AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	confirmationSvc domain.ConfirmationService,
	cfg AuthConfig,
) domain.AuthService {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.RememberMeTTL == 0 {
		cfg.RememberMeTTL = 720 * time.Hour
	}
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = "user"
	}
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	return &AuthServiceImpl{
		userRepo:        userRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		confirmationSvc: confirmationSvc,
		cfg:             cfg,
	}
}

// Register implements domain.AuthService. Steps run in strict order:
// validation, uniqueness, hashing, persistence, token issuance, then the
// best-effort confirmation email.
func (s *AuthServiceImpl) Register(ctx context.Context, in domain.RegisterInput) (*domain.RegisterResult, error) {
	if errs := validateRegister(in); len(errs) > 0 {
		return domain.RegisterFailure(domain.FailureValidation, errs...), nil
	}

	email := domain.NormalizeEmail(in.Email)

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return domain.RegisterFailure(domain.FailureDuplicateEmail, domain.MsgDuplicateEmail), nil
	}

	hashedPassword, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FullName:       in.FullName,
		Email:          email,
		PasswordHash:   hashedPassword,
		EmailConfirmed: false,
		IsActive:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique constraint closes the check-then-insert race.
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return domain.RegisterFailure(domain.FailureDuplicateEmail, domain.MsgDuplicateEmail), nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, _, err := s.tokenSvc.Issue(user.ID, user.Email, s.tokenExtras(user), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	// Confirmation email is fire-and-forget: its latency and failures
	// stay out of the registration result.
	go func(userID uint, email string) {
		sendCtx, cancel := context.WithTimeout(context.Background(), s.cfg.SendTimeout)
		defer cancel()
		if _, err := s.confirmationSvc.Send(sendCtx, userID, email); err != nil {
			log.Printf("confirmation email dispatch failed: user_id=%d error=%v", userID, err)
		}
	}(user.ID, user.Email)

	return &domain.RegisterResult{
		Success: true,
		UserID:  user.ID,
		Email:   user.Email,
		Token:   token,
		Message: "registration successful, please confirm your email address",
	}, nil
}

// Login implements domain.AuthService. The account lookup and the password
// check share one generic failure so callers cannot tell which half was
// wrong; the gate checks run only after the password has been proven.
func (s *AuthServiceImpl) Login(ctx context.Context, in domain.LoginInput) (*domain.LoginResult, error) {
	if errs := validateLogin(in); len(errs) > 0 {
		return domain.LoginFailure(domain.FailureValidation, errs...), nil
	}

	user, err := s.userRepo.FindByEmail(ctx, domain.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.LoginFailure(domain.FailureInvalidCredentials, domain.MsgInvalidCredentials), nil
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, in.Password) {
		return domain.LoginFailure(domain.FailureInvalidCredentials, domain.MsgInvalidCredentials), nil
	}

	if !user.IsActive {
		return domain.LoginFailure(domain.FailureAccountDisabled, domain.MsgAccountDisabled), nil
	}
	if !user.EmailConfirmed {
		return domain.LoginFailure(domain.FailureEmailNotConfirmed, domain.MsgEmailNotConfirmed), nil
	}

	// Best-effort: a failed timestamp write must not fail the login.
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		log.Printf("last login update failed: user_id=%d error=%v", user.ID, err)
	}

	ttl := s.cfg.SessionTTL
	if in.RememberMe {
		ttl = s.cfg.RememberMeTTL
	}
	token, expiresAt, err := s.tokenSvc.Issue(user.ID, user.Email, s.tokenExtras(user), ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.LoginResult{
		Success:     true,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.FullName,
		Token:       token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthServiceImpl) tokenExtras(user *domain.User) map[string]string {
	return map[string]string{
		"name": user.FullName,
		"role": s.cfg.DefaultRole,
	}
}
