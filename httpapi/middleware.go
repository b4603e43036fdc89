package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/clc-tz/legalbridge-backend/auth"
)

// requireAuth authenticates the bearer token and stashes the verified claims
// and raw token on the request context for downstream handlers.
func (s *Server) requireAuth() fiber.Handler {
	scheme := s.authCfg.GetAuthScheme()
	contextKey := s.authCfg.GetContextKey()

	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization), scheme)
		if err != nil {
			return err
		}

		claims, err := s.auther.Authenticate(c.UserContext(), token)
		if err != nil {
			s.logger.Info("token rejected",
				"error", err,
				"path", c.OriginalURL(),
			)
			return errUnauthorized
		}

		c.Locals(contextKey, claims)

		ctx := auth.WithClaimsContext(c.UserContext(), claims)
		ctx = auth.WithTokenContext(ctx, token)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// requireAdmin assumes requireAuth already ran
func (s *Server) requireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := auth.GetClaims(c.UserContext())
		if !ok {
			return errUnauthorized
		}

		if err := auth.RequireRole(claims, auth.RoleAdmin); err != nil {
			return err
		}

		return c.Next()
	}
}

func bearerToken(header, scheme string) (string, error) {
	if header == "" {
		return "", errMissingToken
	}

	prefix := scheme + " "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", errMissingToken
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", errMissingToken
	}

	return token, nil
}
