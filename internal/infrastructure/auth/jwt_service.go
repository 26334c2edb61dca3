package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/you/authsvc/domain"
)

// registered claim names that never collide with caller-supplied extras
var reservedClaims = map[string]bool{
	"sub": true, "email": true, "jti": true,
	"iss": true, "aud": true, "iat": true, "exp": true,
}

// JWTServiceImpl implements domain.TokenService with HMAC-signed tokens.
// Validation is stateless: signature, issuer, audience and expiry are the
// only trust anchors, and expiry is enforced with zero clock-skew leeway.
type JWTServiceImpl struct {
	secretKey  []byte
	issuer     string
	audience   string
	defaultTTL time.Duration
	parser     *jwt.Parser
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer, audience string, defaultTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:  []byte(secretKey),
		issuer:     issuer,
		audience:   audience,
		defaultTTL: defaultTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}
}

// Issue implements domain.TokenService
func (j *JWTServiceImpl) Issue(userID uint, email string, extra map[string]string, ttl time.Duration) (string, time.Time, error) {
	if ttl == 0 {
		ttl = j.defaultTTL
	}
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{}
	for k, v := range extra {
		if !reservedClaims[k] {
			claims[k] = v
		}
	}
	claims["sub"] = strconv.FormatUint(uint64(userID), 10)
	claims["email"] = email
	claims["jti"] = uuid.NewString()
	claims["iss"] = j.issuer
	claims["aud"] = j.audience
	claims["iat"] = now.Unix()
	claims["exp"] = expiresAt.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate implements domain.TokenService
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := j.parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		default:
			return nil, domain.ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	jti, _ := claims["jti"].(string)

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	tokenClaims := &domain.TokenClaims{
		UserID:    uint(userID),
		Email:     email,
		TokenID:   jti,
		IssuedAt:  time.Unix(int64(iat), 0),
		ExpiresAt: time.Unix(int64(exp), 0),
		Extra:     map[string]string{},
	}
	for k, v := range claims {
		if reservedClaims[k] {
			continue
		}
		if s, ok := v.(string); ok {
			tokenClaims.Extra[k] = s
		}
	}

	return tokenClaims, nil
}

// ExtractSubjectID implements domain.TokenService
func (j *JWTServiceImpl) ExtractSubjectID(tokenString string) (uint, error) {
	claims, err := j.Validate(tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
