package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/authsvc/domain"
)

// ConfirmationServiceImpl implements domain.ConfirmationService using Redis
// persistence. Codes live under a TTL with an attempts counter and a resend
// throttle; Redis expiry does the cleanup.
type ConfirmationServiceImpl struct {
	notificationSvc domain.NotificationService
	userRepo        domain.UserRepository
	redisClient     *redis.Client
	config          ConfirmationConfig
}

type ConfirmationConfig struct {
	Length       int
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
	// LinkBaseURL is the confirmation endpoint the emailed link points at.
	LinkBaseURL string
}

// NewConfirmationService creates a new Redis-based confirmation service
func NewConfirmationService(notificationSvc domain.NotificationService, userRepo domain.UserRepository, redisClient *redis.Client, config ConfirmationConfig) domain.ConfirmationService {
	return &ConfirmationServiceImpl{
		notificationSvc: notificationSvc,
		userRepo:        userRepo,
		redisClient:     redisClient,
		config:          config,
	}
}

// Send implements domain.ConfirmationService
func (s *ConfirmationServiceImpl) Send(ctx context.Context, userID uint, email string) (*domain.ConfirmationRequest, error) {
	email = domain.NormalizeEmail(email)
	codeKey := fmt.Sprintf("confirm:%s", email)
	attemptsKey := fmt.Sprintf("confirm:att:%s", email)
	resendKey := fmt.Sprintf("confirm:res:%s", email)

	if canResend, waitTime, _ := s.CanResend(ctx, email); !canResend {
		return nil, fmt.Errorf("%w: wait %d seconds", domain.ErrConfirmationThrottled, waitTime)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	if err := s.redisClient.Set(ctx, codeKey, code, s.config.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store confirmation code: %w", err)
	}
	if err := s.redisClient.Set(ctx, attemptsKey, 0, s.config.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to initialize attempts counter: %w", err)
	}
	if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
		return nil, fmt.Errorf("failed to set resend throttle: %w", err)
	}

	link := fmt.Sprintf("%s?email=%s&code=%s", s.config.LinkBaseURL, url.QueryEscape(email), code)
	body := fmt.Sprintf("Confirm your email address by visiting %s. The link is valid for %d minutes.", link, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendEmail(email, "Confirm your email address", body); err != nil {
		// Roll back the Redis entries so a retry is not throttled.
		s.redisClient.Del(ctx, codeKey, attemptsKey, resendKey)
		return nil, fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return &domain.ConfirmationRequest{
		Email:     email,
		Code:      code,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.config.TTL),
		Attempts:  0,
	}, nil
}

// Confirm implements domain.ConfirmationService
func (s *ConfirmationServiceImpl) Confirm(ctx context.Context, email, code string) error {
	email = domain.NormalizeEmail(email)
	codeKey := fmt.Sprintf("confirm:%s", email)
	attemptsKey := fmt.Sprintf("confirm:att:%s", email)

	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}
	if attempts > int64(s.config.MaxAttempts) {
		s.redisClient.Del(ctx, codeKey, attemptsKey)
		return domain.ErrConfirmationMaxAttempts
	}

	storedCode, err := s.redisClient.Get(ctx, codeKey).Result()
	if err == redis.Nil {
		return domain.ErrConfirmationNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get confirmation code: %w", err)
	}

	if storedCode != code {
		return domain.ErrConfirmationInvalid
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := s.userRepo.ConfirmEmail(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to confirm email: %w", err)
	}

	s.redisClient.Del(ctx, codeKey, attemptsKey)
	return nil
}

// CanResend implements domain.ConfirmationService
func (s *ConfirmationServiceImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	resendKey := fmt.Sprintf("confirm:res:%s", domain.NormalizeEmail(email))

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	// TTL <= 0 means the key does not exist or has expired.
	if ttl <= 0 {
		return true, 0, nil
	}
	return false, int64(ttl.Seconds()), nil
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *ConfirmationServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)
	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
