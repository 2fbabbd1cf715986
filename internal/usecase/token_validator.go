package usecase

import (
	"store-offers-api/internal/domain/access"
	"store-offers-api/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the caller's Actor for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (access.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (access.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return access.Actor{}, err
	}

	role, err := access.NewRole(claims.Role)
	if err != nil {
		return access.Actor{}, err
	}

	return access.NewActor(claims.UserID, role), nil
}
