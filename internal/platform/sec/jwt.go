// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides viewer session tokens and the upstream permission vocabulary.
//
// # Architecture
//
// This package isolates security-sensitive code (JWT signing and verification)
// from the page logic. The middleware only depends on the [TokenVerifier]-shaped
// method set of [TokenService].
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret is returned when a TokenService is built without a signing secret.
var ErrNoSecret = errors.New("sec: session secret is empty")

// SessionClaims represents the payload of a viewer session token.
//
// AccessToken is the viewer's upstream API token. It is forwarded on data-store
// calls so that node permissions are computed for this viewer.
type SessionClaims struct {
	jwt.RegisteredClaims

	UserID      string `json:"uid"`
	Username    string `json:"unm"`
	AccessToken string `json:"tok,omitempty"`
}

// TokenService issues and verifies HS256 viewer session tokens.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService bound to a shared secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &TokenService{secret: []byte(secret), issuer: issuer}, nil
}

// IssueSession signs a session token for a viewer.
func (service *TokenService) IssueSession(userID, username, accessToken string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID:      userID,
		Username:    username,
		AccessToken: accessToken,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, issuer and expiry of a session token.
func (service *TokenService) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithIssuer(service.issuer))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
