package middleware

import (
	"strings"

	"forno/internal/domain/entity"
	domainerrors "forno/internal/domain/errors"
	"forno/internal/domain/service"
	"forno/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by the auth chain.
const (
	ContextKeyUserID  = "userID"
	ContextKeyProfile = "profile"
)

// AuthMiddleware authenticates bearer tokens against the identity provider
// and gates routes on the staff approval state.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	staffUC  usecase.StaffUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, staffUC usecase.StaffUsecase) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, staffUC: staffUC}
}

// Authenticate validates the bearer token and stores the caller's stable
// identity id on the context. It does not require a staff profile, so
// first-time registration can pass through it.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
		}

		uid, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid or expired token")
		}

		c.Set(ContextKeyUserID, uid)

		return next(c)
	}
}

// RequireApproved loads the caller's staff profile and rejects accounts that
// are not Approved. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireApproved(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get(ContextKeyUserID).(string)
		if !ok || uid == "" {
			return domainerrors.ErrUnauthorized
		}

		profile, err := m.staffUC.GetProfile(c.Request().Context(), uid)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) && appErr.HTTPCode() == 404 {
				return domainerrors.ErrAccountNotApproved.WithDetails("No staff profile registered for this account")
			}

			return err
		}

		if profile.Status != entity.StaffApproved {
			return domainerrors.ErrAccountNotApproved
		}

		c.Set(ContextKeyProfile, profile)

		return next(c)
	}
}

// RequireAdmin rejects callers without the Administrator role. It must be
// used AFTER RequireApproved.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile, ok := c.Get(ContextKeyProfile).(*entity.StaffProfile)
		if !ok {
			return domainerrors.ErrForbidden.WithDetails("Profile information missing")
		}

		if profile.Role != entity.RoleAdministrator {
			return domainerrors.ErrForbidden.WithDetails("Administrator role required")
		}

		return next(c)
	}
}
