package services

import (
	"context"
	"time"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/utils"
)

// TokenService issues JWT access tokens.
type TokenService struct {
	BaseService
	secret string
	expiry time.Duration
	issuer string
}

var _ portssvc.TokenSvcFacade = (*TokenService)(nil)

func NewTokenService(secret string, expiry time.Duration, issuer string) *TokenService {
	return &TokenService{
		secret: secret,
		expiry: expiry,
		issuer: issuer,
	}
}

// GenerateAccessToken creates a signed access token for the user and returns
// it together with its expiry time.
func (s *TokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiry)
	token, err := utils.GenerateJWT(user.UserID, s.secret, s.expiry, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
