package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"weathermap/internal/models"
	"weathermap/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is tuned so verification takes tens of milliseconds.
const bcryptCost = 12

// AuthService handles registration, login and token verification.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService. The signing secret comes from
// configuration loaded once at startup.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 7 * 24 * time.Hour, // Token valid for 7 days
	}
}

// Register hashes the password and creates the user. Email comparison is
// case-insensitive; the address is stored lowercased so the unique index
// enforces that.
func (s *AuthService) Register(user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return ErrEmailRegistered
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check existing email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword) // Store the hashed password

	if err := s.userRepo.Create(user); err != nil {
		// A concurrent registration may have won the unique index race.
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrEmailRegistered
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login authenticates a user and returns the user plus a signed token.
// The error is the same whether the email is unknown or the password wrong.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken signs a token carrying the user id, valid for 7 days.
func (s *AuthService) IssueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":     time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifies signature and expiry and returns the user id the
// token was issued for. It does not check that the user still exists; that
// is Authenticate's job.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// Authenticate resolves a bearer token to a live user. A token whose user
// has been deleted since issuance is rejected with the same error as a bad
// signature, so callers cannot tell the two apart.
func (s *AuthService) Authenticate(tokenString string) (*models.User, error) {
	userID, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}
