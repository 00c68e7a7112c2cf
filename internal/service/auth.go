package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"consultcare/config"
	"consultcare/internal/domain"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID       `json:"user_id"`
	Role   domain.UserRole `json:"role"`
}

// AuthServiceImpl validates access tokens issued by the identity service.
// Login and refresh live there; this service only mints tokens for operators.
type AuthServiceImpl struct {
	jwtConfig config.JWTConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewAuthService(jwtConfig config.JWTConfig, logger *zap.Logger, now func() time.Time) *AuthServiceImpl {
	return &AuthServiceImpl{
		jwtConfig: jwtConfig,
		logger:    logger,
		now:       now,
	}
}

func (s *AuthServiceImpl) ParseToken(ctx context.Context, tokenString string) (uuid.UUID, domain.UserRole, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return uuid.Nil, "", fmt.Errorf("ошибка парсинга токена: %v: %w", err, domain.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("недействительный токен: %w", domain.ErrUnauthorized)
	}

	if claims.UserID == uuid.Nil || !claims.Role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("некорректные данные токена: %w", domain.ErrUnauthorized)
	}

	return claims.UserID, claims.Role, nil
}

func (s *AuthServiceImpl) IssueAccessToken(userID uuid.UUID, role domain.UserRole) (*domain.Tokens, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("не указан пользователь: %w", domain.ErrInvalidInput)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("неизвестная роль %q: %w", role, domain.ErrInvalidInput)
	}

	now := s.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID.String(),
		},
		UserID: userID,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("ошибка подписи access token: %w", err)
	}

	s.logger.Info("выпущен access token", zap.String("user_id", userID.String()), zap.String("role", string(role)))

	return &domain.Tokens{
		AccessToken: signed,
		ExpiresIn:   int64(s.jwtConfig.AccessTokenTTL.Seconds()),
	}, nil
}
