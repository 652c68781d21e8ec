package handler

import (
	"fmt"
	"strings"
	"time"

	"berries/internal/application/dto"
	appErrors "berries/internal/pkg/errors"
	"berries/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Claims are the bearer token claims. The subject is the owner id.
type Claims struct {
	Admin bool `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for ownerID valid for ttl.
func IssueToken(secret, issuer, ownerID string, admin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// RequireBearer validates the bearer token of each request and stores the
// resulting dto.Principal in the echo context.
func RequireBearer(secret, issuer string, log logger.Logger) echo.MiddlewareFunc {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return fmt.Errorf("%w: missing authorization header", appErrors.ErrUnauthorized)
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return fmt.Errorf("%w: invalid authorization header format", appErrors.ErrUnauthorized)
			}

			claims := &Claims{}
			if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}); err != nil {
				log.Warn(fmt.Sprintf("Rejected bearer token from %s: %v", c.RealIP(), err))
				return fmt.Errorf("%w: invalid token", appErrors.ErrUnauthorized)
			}
			if claims.Subject == "" {
				return fmt.Errorf("%w: token has no subject", appErrors.ErrUnauthorized)
			}

			c.Set(principalKey, dto.Principal{OwnerID: claims.Subject, Admin: claims.Admin})
			return next(c)
		}
	}
}

// principalFrom returns the authenticated caller. Routes are always behind
// RequireBearer, so a missing principal is a wiring error.
func principalFrom(c echo.Context) (dto.Principal, error) {
	p, ok := c.Get(principalKey).(dto.Principal)
	if !ok {
		return dto.Principal{}, fmt.Errorf("%w: no principal in request context", appErrors.ErrUnauthorized)
	}
	return p, nil
}
