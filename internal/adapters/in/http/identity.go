package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"orders/internal/core/application/service"
	"orders/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

var errMissingBearer = errors.New("missing bearer token")

// IdentityMiddleware verifies an HS256 bearer token and stores the caller built from its
// numeric "id" claim. Requests without a valid token get 401.
func IdentityMiddleware(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			identity, err := parseIdentity(parser, secret, ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			ctx.Set(identityKey, identity)
			return next(ctx)
		}
	}
}

func parseIdentity(parser *jwt.Parser, secret []byte, header string) (service.Identity, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return service.Identity{}, errMissingBearer
	}

	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}); err != nil {
		return service.Identity{}, fmt.Errorf("invalid token: %w", err)
	}

	id, err := userIDClaim(claims["id"])
	if err != nil {
		return service.Identity{}, err
	}

	userID, err := kernel.NewUserID(id)
	if err != nil {
		return service.Identity{}, fmt.Errorf("invalid id claim: %w", err)
	}

	return service.Identity{UserID: userID}, nil
}

func userIDClaim(v any) (int64, error) {
	switch id := v.(type) {
	case float64:
		if id != float64(int64(id)) {
			return 0, fmt.Errorf("id claim %v is not an integer", id)
		}
		return int64(id), nil
	case json.Number:
		return id.Int64()
	case string:
		return strconv.ParseInt(id, 10, 64)
	case nil:
		return 0, errors.New("id claim is missing")
	default:
		return 0, fmt.Errorf("id claim has unsupported type %T", v)
	}
}

// identityFrom returns the zero Identity on routes without IdentityMiddleware.
func identityFrom(ctx echo.Context) service.Identity {
	identity, _ := ctx.Get(identityKey).(service.Identity)
	return identity
}
