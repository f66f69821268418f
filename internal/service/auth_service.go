package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/recipebox/internal/config"
	"github.com/recipebox/internal/models"
	"github.com/recipebox/internal/repository"
	"github.com/recipebox/internal/validation"
	"github.com/recipebox/pkg/crypto"
	"github.com/recipebox/pkg/password"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login, and password changes
type AuthService struct {
	userRepo   *repository.UserRepository
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repository.UserRepository, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		authConfig: authConfig,
	}
}

// RegisterRequest represents the sign-up request
type RegisterRequest struct {
	Username             string `json:"username" binding:"required,max=50"`
	FirstName            string `json:"first_name" binding:"required,max=50"`
	LastName             string `json:"last_name" binding:"required,max=50"`
	Email                string `json:"email" binding:"required,email"`
	NewPassword          string `json:"new_password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents the password-change request
type ChangePasswordRequest struct {
	Password             string `json:"password" binding:"required"`
	NewPassword          string `json:"new_password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

// TokenResponse represents the JWT token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// JWTClaims represents the JWT claims
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Register creates a new user. The candidate password must pass the strength
// and confirmation rules; the stored credential is a bcrypt hash, never the
// plaintext. Registration does not establish a session.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	errs := validation.Errors{}
	if err := password.CheckStrength(req.NewPassword); err != nil {
		errs.Add("new_password", err.Error())
	}
	if err := password.CheckConfirmation(req.NewPassword, req.PasswordConfirmation); err != nil {
		// The error belongs to the confirmation field, not the password.
		errs.Add("password_confirmation", err.Error())
	}
	if !errs.Empty() {
		return nil, errs
	}

	// Check if username exists
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	// Check if email exists
	exists, err = s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	// Hash password
	passwordHash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies a username/password pair and returns the user
func (s *AuthService) Authenticate(username, plaintext string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(plaintext, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword replaces the user's credential. The claimed current password
// must verify against the stored hash, and the new password must pass the
// strength and confirmation rules. A nil user always fails the
// current-password rule. The previous hash is discarded.
func (s *AuthService) ChangePassword(user *models.User, req *ChangePasswordRequest) error {
	errs := validation.Errors{}

	if user == nil || !crypto.CheckPassword(req.Password, user.PasswordHash) {
		errs.Add("password", "password is invalid")
	}
	if err := password.CheckStrength(req.NewPassword); err != nil {
		errs.Add("new_password", err.Error())
	}
	if err := password.CheckConfirmation(req.NewPassword, req.PasswordConfirmation); err != nil {
		errs.Add("password_confirmation", err.Error())
	}
	if !errs.Empty() {
		return errs
	}

	passwordHash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = passwordHash
	return s.userRepo.Update(user)
}

// GenerateToken generates a JWT token for a user, for API clients that do
// not carry the session cookie.
func (s *AuthService) GenerateToken(user *models.User) (*TokenResponse, error) {
	expiresIn := time.Duration(s.authConfig.JWTExpireHours) * time.Hour

	claims := &JWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "recipebox",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresIn:   s.authConfig.JWTExpireHours * 3600,
	}, nil
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.authConfig.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
