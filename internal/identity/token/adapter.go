package token

import (
	id "dealerdesk/pkg/domain"
	dErrors "dealerdesk/pkg/domain-errors"
	mwauth "dealerdesk/pkg/platform/middleware/auth"
)

// MiddlewareAdapter exposes the token service through the middleware's
// TokenValidator interface, converting raw claim strings into typed IDs.
type MiddlewareAdapter struct {
	service *Service
}

func NewMiddlewareAdapter(service *Service) *MiddlewareAdapter {
	return &MiddlewareAdapter{service: service}
}

func (a *MiddlewareAdapter) ValidateToken(tokenString string) (*mwauth.Claims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := id.ParseUserID(claims.UserID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token subject")
	}

	return &mwauth.Claims{
		UserID: userID,
		Email:  claims.Email,
		JTI:    claims.ID,
	}, nil
}
