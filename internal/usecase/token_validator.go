package usecase

import (
	"multimart/internal/domain/user"
	"multimart/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Actor{}, err
	}

	return Actor{
		UserID: claims.UserID,
		Role:   role,
		ShopID: claims.ShopID,
	}, nil
}
