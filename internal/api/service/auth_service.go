package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"messagely/internal/api/models"
	"messagely/internal/api/repository"
	"messagely/internal/config"
	"messagely/pkg/apperror"
)

// Claims is the access-token payload. The username is the only identity
// the rest of the API needs.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService layers token issuance on top of the user directory.
type AuthService interface {
	Register(username, password, firstName, lastName, phone string) (accessToken, refreshToken string, user *models.User, err error)
	Login(username, password string) (accessToken, refreshToken string, user *models.User, err error)
	RefreshAccessToken(refreshToken string) (newAccessToken string, err error)
	RevokeToken(refreshToken string) error
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	users            UserService
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSecret        string
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
}

func NewAuthService(
	users UserService,
	refreshTokenRepo repository.RefreshTokenRepository,
	cfg *config.Config,
) AuthService {
	return &authService{
		users:            users,
		refreshTokenRepo: refreshTokenRepo,
		jwtSecret:        cfg.JWTSecret,
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
	}
}

// Register creates the user and signs them in immediately.
func (s *authService) Register(username, password, firstName, lastName, phone string) (string, string, *models.User, error) {
	user, err := s.users.Register(username, password, firstName, lastName, phone)
	if err != nil {
		return "", "", nil, err
	}

	accessToken, refreshToken, err := s.issueTokens(user.Username)
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, user, nil
}

// Login verifies credentials, stamps last_login_at and issues a token
// pair. A missing user and a wrong password both come back as the same
// auth failure so the login endpoint does not reveal which usernames
// exist.
func (s *authService) Login(username, password string) (string, string, *models.User, error) {
	if err := s.users.Authenticate(username, password); err != nil {
		if apperror.IsNotFound(err) || apperror.IsAuthError(err) {
			return "", "", nil, apperror.NewAuthError("invalid credentials", err)
		}
		return "", "", nil, err
	}

	if err := s.users.RecordLogin(username); err != nil {
		return "", "", nil, err
	}

	user, err := s.users.Get(username)
	if err != nil {
		return "", "", nil, err
	}

	accessToken, refreshToken, err := s.issueTokens(username)
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, user, nil
}

func (s *authService) issueTokens(username string) (string, string, error) {
	accessToken, err := s.generateAccessToken(username)
	if err != nil {
		return "", "", apperror.NewInternalError("could not sign access token", err)
	}
	refreshToken, err := s.generateRefreshToken(username)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (s *authService) generateAccessToken(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateRefreshToken(username string) (string, error) {
	refreshToken := &models.RefreshToken{
		ID:        uuid.New().String(),
		Username:  username,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return "", apperror.NewDatabaseError("could not store refresh token", err)
	}
	return refreshToken.Token, nil
}

// RefreshAccessToken exchanges a stored refresh token for a fresh access
// token. Expired tokens are deleted on sight.
func (s *authService) RefreshAccessToken(refreshTokenString string) (string, error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.NewAuthError("invalid refresh token", err)
		}
		return "", apperror.NewDatabaseError("could not look up refresh token", err)
	}

	if refreshToken.Revoked {
		return "", apperror.NewAuthError("refresh token revoked", nil)
	}

	if time.Now().After(refreshToken.ExpiresAt) {
		_ = s.refreshTokenRepo.Delete(refreshToken.ID)
		return "", apperror.NewAuthError("refresh token expired", nil)
	}

	accessToken, err := s.generateAccessToken(refreshToken.Username)
	if err != nil {
		return "", apperror.NewInternalError("could not sign access token", err)
	}
	return accessToken, nil
}

// RevokeToken marks the refresh token revoked. An unknown token is not
// an error; the endpoint answers the same either way.
func (s *authService) RevokeToken(refreshTokenString string) error {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperror.NewDatabaseError("could not look up refresh token", err)
	}
	if err := s.refreshTokenRepo.Revoke(refreshToken.ID); err != nil {
		return apperror.NewDatabaseError("could not revoke refresh token", err)
	}
	return nil
}

// ValidateToken parses and verifies an access token.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, apperror.NewAuthError("invalid token", err)
	}
	if !token.Valid || claims.Username == "" {
		return nil, apperror.NewAuthError("invalid token", nil)
	}
	return claims, nil
}
