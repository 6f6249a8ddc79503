package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movielists/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// defaultTokenTTL bounds a session when auth.token_ttl is not configured.
const defaultTokenTTL = 30 * 24 * time.Hour

// AuthService handles registration, login and token verification.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(repo repository.Authorization, cfg AuthConfig) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		authRepo:   repo,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
	}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// SignUp registers a new user and issues a session token so the fresh
// account is usable without a second round trip.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (int, string, error) {
	if strings.TrimSpace(username) == "" {
		return 0, "", fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if strings.TrimSpace(password) == "" {
		return 0, "", fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	existing, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return 0, "", err
	}
	if existing != nil {
		return 0, "", ErrDuplicateUsername
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, "", err
	}
	id, err := s.authRepo.Create(ctx, username, hash)
	if err != nil {
		return 0, "", err
	}

	token, err := s.issueToken(id)
	if err != nil {
		return 0, "", err
	}
	return id, token, nil
}

// SignIn validates credentials and returns a fresh token. An unknown
// username and a wrong password fail identically.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (int, string, error) {
	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return 0, "", err
	}
	if u == nil {
		return 0, "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return 0, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return 0, "", err
	}
	return u.ID, token, nil
}

// ParseToken parses the JWT and returns the user id it was issued for.
// Verification is purely cryptographic; the user record is not re-read.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidCredentials
	}
	return claims.UserID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
