package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/you/authsvc/domain"
	infraauth "github.com/you/authsvc/internal/infrastructure/auth"
	"github.com/you/authsvc/internal/mocks"
)

// memoryUserRepo is a map-backed store honoring the repository contract:
// lowercase keys, soft-deleted rows invisible.
type memoryUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]*domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{nextID: 1, users: map[string]*domain.User{}}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := domain.NormalizeEmail(user.Email)
	if _, ok := r.users[email]; ok {
		return domain.ErrUserAlreadyExists
	}
	user.ID = r.nextID
	r.nextID++
	user.Email = email
	clone := *user
	r.users[email] = &clone
	return nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[domain.NormalizeEmail(email)]
	return ok, nil
}

func (r *memoryUserRepo) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			user.LastLoginAt = &at
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memoryUserRepo) ConfirmEmail(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			user.EmailConfirmed = true
			return nil
		}
	}
	return domain.ErrUserNotFound
}

var _ domain.UserRepository = (*memoryUserRepo)(nil)

// TestRegisterThenLogin drives both flows end to end against the real
// hasher and real token service.
func TestRegisterThenLogin(t *testing.T) {
	repo := newMemoryUserRepo()
	passwordSvc := infraauth.NewPasswordService(bcrypt.MinCost)
	tokenSvc := infraauth.NewJWTService("0123456789abcdef0123456789abcdef", "authsvc", "authsvc-clients", 24*time.Hour)

	svc := NewAuthService(repo, passwordSvc, tokenSvc, mocks.NewMockConfirmationService(), AuthConfig{})

	reg, err := svc.Register(context.Background(), domain.RegisterInput{
		FullName:        "Jane Doe",
		Email:           "JANE@EX.com",
		Password:        "Aa1!aaaa",
		ConfirmPassword: "Aa1!aaaa",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !reg.Success {
		t.Fatalf("expected registration success, got %+v", reg)
	}
	if reg.Email != "jane@ex.com" {
		t.Errorf("expected stored email jane@ex.com, got %q", reg.Email)
	}

	claims, err := tokenSvc.Validate(reg.Token)
	if err != nil {
		t.Fatalf("registration token failed validation: %v", err)
	}
	if claims.UserID != reg.UserID {
		t.Errorf("expected token subject %d, got %d", reg.UserID, claims.UserID)
	}

	// Unconfirmed accounts cannot log in yet.
	blocked, err := svc.Login(context.Background(), domain.LoginInput{Email: "jane@ex.com", Password: "Aa1!aaaa"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if blocked.Success || blocked.Code != domain.FailureEmailNotConfirmed {
		t.Fatalf("expected email-not-confirmed gate, got %+v", blocked)
	}

	if err := repo.ConfirmEmail(context.Background(), reg.UserID); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	login, err := svc.Login(context.Background(), domain.LoginInput{Email: "jane@ex.com", Password: "Aa1!aaaa", RememberMe: false})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !login.Success {
		t.Fatalf("expected login success, got %+v", login)
	}
	if login.DisplayName != "Jane Doe" {
		t.Errorf("expected display name Jane Doe, got %q", login.DisplayName)
	}

	loginClaims, err := tokenSvc.Validate(login.Token)
	if err != nil {
		t.Fatalf("login token failed validation: %v", err)
	}
	if loginClaims.Extra["name"] != "Jane Doe" {
		t.Errorf("expected name claim, got %v", loginClaims.Extra)
	}

	// Without remember-me the embedded expiry sits near now+24h, not 720h.
	want := time.Now().Add(24 * time.Hour)
	if diff := loginClaims.ExpiresAt.Sub(want); diff > time.Minute || diff < -time.Minute {
		t.Errorf("expected expiry near now+24h, got %v", loginClaims.ExpiresAt)
	}

	stored, err := repo.FindByEmail(context.Background(), "jane@ex.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.LastLoginAt == nil {
		t.Error("expected last login to be recorded")
	}
}

// TestLogin_SoftDeletedAccountIsInvisible exercises the deletion contract:
// the store never returns deleted rows, so the flow reports the same
// generic failure as an unknown email.
func TestLogin_SoftDeletedAccountIsInvisible(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		// Deleted rows are filtered at the store layer.
		return nil, domain.ErrUserNotFound
	}

	svc := NewAuthService(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockConfirmationService(), AuthConfig{})

	result, err := svc.Login(context.Background(), domain.LoginInput{Email: "deleted@ex.com", Password: "Aa1!aaaa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("deleted account must never authenticate")
	}
	if result.Code != domain.FailureInvalidCredentials {
		t.Errorf("expected generic invalid credentials, got %q", result.Code)
	}
	if !containsMsg(result.Errors, domain.MsgInvalidCredentials) {
		t.Errorf("expected generic message, got %v", result.Errors)
	}
}
