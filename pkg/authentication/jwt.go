// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/monitoring"
	"github.com/canonical/org-service/internal/tracing"
)

const issuerName = "org-service"

// Claims is the signed claim set carried by every access token.
type Claims struct {
	Email            string `json:"email"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`

	jwt.RegisteredClaims
}

// AdminID is the token subject.
func (c *Claims) AdminID() string {
	return c.Subject
}

var _ TokenIssuerInterface = (*TokenIssuer)(nil)

type TokenIssuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewTokenIssuer(
	secret string,
	algorithm string,
	ttl time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*TokenIssuer, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &TokenIssuer{
		secret:  []byte(secret),
		method:  method,
		ttl:     ttl,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func (i *TokenIssuer) Issue(ctx context.Context, adminID, email, orgID, orgName string) (string, error) {
	_, span := i.tracer.Start(ctx, "authentication.TokenIssuer.Issue")
	defer span.End()

	now := time.Now().UTC()
	claims := &Claims{
		Email:            email,
		OrganizationID:   orgID,
		OrganizationName: orgName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (i *TokenIssuer) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	_, span := i.tracer.Start(ctx, "authentication.TokenIssuer.Verify")
	defer span.End()

	claims := new(Claims)
	token, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{i.method.Alg()}),
		jwt.WithIssuer(issuerName),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
