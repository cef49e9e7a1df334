package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/emplacadora/emplacadora-api/internal/api/metrics"
	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// SessionHandler exposes login, session restore, and logout.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login authenticates a user and returns an access token.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, user, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Which step failed (unknown email, wrong password, invalid profile)
		// is not disclosed; the caller only learns that login failed.
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: toUserResponse(user)})
}

// Session restores authentication state from the bearer token.
// It always answers 200: an invalid or absent token yields
// {"authenticated": false}, never an error status.
//
// @Summary      Restore the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/auth/session [get]
func (h *SessionHandler) Session(c echo.Context) error {
	token := optionalBearerToken(c)
	if token == "" {
		metrics.SessionResolvesTotal.WithLabelValues("unauthenticated").Inc()
		return c.JSON(http.StatusOK, sessionResponse{})
	}

	state := h.sessions.Resolve(c.Request().Context(), token)
	if !state.Authenticated {
		metrics.SessionResolvesTotal.WithLabelValues("unauthenticated").Inc()
		return c.JSON(http.StatusOK, sessionResponse{})
	}

	metrics.SessionResolvesTotal.WithLabelValues("authenticated").Inc()
	user := toUserResponse(state.User)
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: &user})
}

// Logout revokes the current session. It answers 204 unconditionally:
// a failing revocation must not block the caller from clearing local state.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /v1/auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if token := optionalBearerToken(c); token != "" {
		h.sessions.Logout(c.Request().Context(), token)
	}
	return c.NoContent(http.StatusNoContent)
}

// optionalBearerToken returns the bearer token, or "" when the header is
// absent or malformed. Session restore and logout never fail on a bad header.
func optionalBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}
