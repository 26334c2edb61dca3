package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/authsvc/domain"
)

// AuthHandlers handles authentication HTTP requests. Business-rule
// rejections arrive inside the flow results and map to 4xx; an error from
// the service means infrastructure malfunction and maps to 500.
type AuthHandlers struct {
	authSvc         domain.AuthService
	confirmationSvc domain.ConfirmationService
	userRepo        domain.UserRepository
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, confirmationSvc domain.ConfirmationService, userRepo domain.UserRepository) *AuthHandlers {
	return &AuthHandlers{
		authSvc:         authSvc,
		confirmationSvc: confirmationSvc,
		userRepo:        userRepo,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// ConfirmRequest represents an email confirmation request
type ConfirmRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// SendConfirmationRequest asks for a fresh confirmation code
type SendConfirmationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"invalid request body"}})
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		log.Printf("register: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"code": result.Code, "errors": result.Errors})
		return
	}

	audit(domain.NewAuditEvent(domain.UserRegistrationEvent).WithUser(result.UserID, result.Email))

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"user_id": result.UserID,
			"email":   result.Email,
			"token":   result.Token,
			"message": result.Message,
		},
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"invalid request body"}})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), domain.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		log.Printf("login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	if !result.Success {
		audit(domain.NewAuditEvent(domain.UserLoginFailureEvent).WithError(string(result.Code)))
		c.JSON(loginFailureStatus(result.Code), gin.H{"code": result.Code, "errors": result.Errors})
		return
	}

	audit(domain.NewAuditEvent(domain.UserLoginEvent).WithUser(result.UserID, result.Email))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user_id":      result.UserID,
			"email":        result.Email,
			"display_name": result.DisplayName,
			"token":        result.Token,
			"token_type":   "Bearer",
			"expires_at":   result.ExpiresAt,
		},
	})
}

func loginFailureStatus(code domain.FailureCode) int {
	switch code {
	case domain.FailureValidation:
		return http.StatusBadRequest
	case domain.FailureInvalidCredentials:
		return http.StatusUnauthorized
	default: // account-state gates
		return http.StatusForbidden
	}
}

// SendConfirmation handles requests for a fresh confirmation code. The
// response never reveals whether the email exists.
func (h *AuthHandlers) SendConfirmation(c *gin.Context) {
	var req SendConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"a valid email is required"}})
		return
	}

	// Every outcome below answers the same generic 200: a throttle or send
	// failure only happens for existing accounts, so surfacing it would
	// distinguish them from unknown emails.
	user, err := h.userRepo.FindByEmail(c.Request.Context(), req.Email)
	if err == nil {
		if _, err := h.confirmationSvc.Send(c.Request.Context(), user.ID, user.Email); err != nil {
			log.Printf("send confirmation: %v", err)
		}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send confirmation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "if the account exists, a confirmation email has been sent"},
	})
}

// Confirm handles email confirmation
func (h *AuthHandlers) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"email and code are required"}})
		return
	}

	if err := h.confirmationSvc.Confirm(c.Request.Context(), req.Email, req.Code); err != nil {
		audit(domain.NewAuditEvent(domain.EmailConfirmFailureEvent).WithError(err.Error()))
		switch {
		case errors.Is(err, domain.ErrConfirmationNotFound), errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "confirmation code not found"})
		case errors.Is(err, domain.ErrConfirmationMaxAttempts):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "maximum attempts exceeded"})
		case errors.Is(err, domain.ErrConfirmationInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid confirmation code"})
		default:
			log.Printf("confirm: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "confirmation failed"})
		}
		return
	}

	audit(domain.NewAuditEvent(domain.EmailConfirmedEvent).WithEmail(req.Email))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "email address confirmed"},
	})
}

// Me returns the authenticated user's profile (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user id not found in context"})
		return
	}
	id, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user id not found in context"})
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":              user.ID,
			"full_name":       user.FullName,
			"email":           user.Email,
			"email_confirmed": user.EmailConfirmed,
			"is_active":       user.IsActive,
			"last_login_at":   user.LastLoginAt,
			"created_at":      user.CreatedAt,
		},
	})
}

// audit writes one structured audit line per business event.
func audit(event *domain.AuditEvent) {
	line, err := json.Marshal(event)
	if err != nil {
		return
	}
	log.Printf("AUDIT %s", line)
}
