package http

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "marketplace.actor"

var ErrSigningSecretIsEmpty = errors.New("jwt signing secret is empty")

// actorClaims is the token payload. The subject carries the actor id.
type actorClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role string `json:"role"`
}

// Authenticator verifies HS256 bearer tokens and turns them into actors.
type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(secret, issuer string) (*Authenticator, error) {
	if secret == "" {
		return nil, ErrSigningSecretIsEmpty
	}
	return &Authenticator{secret: []byte(secret), issuer: issuer}, nil
}

// Authenticate returns the actor named by a signed, unexpired token.
func (a *Authenticator) Authenticate(token string) (kernel.Actor, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	var claims actorClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return kernel.Actor{}, errs.NewUnauthenticatedErrorWithCause("token is invalid", err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, errs.NewUnauthenticatedErrorWithCause("token subject is invalid", err)
	}

	actor, err := kernel.NewActor(id, claims.Name, claims.Role)
	if err != nil {
		return kernel.Actor{}, errs.NewUnauthenticatedErrorWithCause("token claims are invalid", err)
	}
	return actor, nil
}

// IssueToken signs a token for actor valid for ttl from now.
func (a *Authenticator) IssueToken(actor kernel.Actor, ttl time.Duration, now time.Time) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	claims := actorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name: actor.Name(),
		Role: actor.Role(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Middleware rejects requests without a valid bearer token and stores the
// actor for handlers.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return errs.NewUnauthenticatedError("bearer token is missing")
			}

			actor, err := a.Authenticate(strings.TrimSpace(token))
			if err != nil {
				return err
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// ActorFromContext returns the actor stored by Middleware.
func ActorFromContext(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errs.NewUnauthenticatedError("request is not authenticated")
	}
	return actor, nil
}
