package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"trainingdash/internal/delivery/http/helpers"
	"trainingdash/internal/delivery/http/middleware"
	"trainingdash/internal/domain"
)

const stateCookieName = "td_oauth_state"

// AuthController implements the OAuth sign-in flow and session endpoints.
type AuthController struct {
	Logger       *slog.Logger
	Auth         domain.AuthService
	SessionTTL   time.Duration
	SecureCookie bool
}

func NewAuthController(logger *slog.Logger, auth domain.AuthService, sessionTTL time.Duration, secureCookie bool) *AuthController {
	return &AuthController{
		Logger:       logger,
		Auth:         auth,
		SessionTTL:   sessionTTL,
		SecureCookie: secureCookie,
	}
}

// Login godoc
// @Summary Begin the OAuth sign-in flow
// @Description Redirects to the identity provider's consent page with a state nonce stored in a short-lived cookie.
// @Tags auth
// @Success 302 {string} string "redirect to the provider"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [get]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	authURL, state, err := c.Auth.BeginLogin()
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "begin login failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "sign-in unavailable")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   c.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback godoc
// @Summary Complete the OAuth sign-in flow
// @Description Validates the state nonce, exchanges the code, enforces the staff email-domain policy, issues the session cookie, and redirects to /.
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "State nonce"
// @Success 302 {string} string "redirect to /"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: access_denied"
// @Router /auth/callback [get]
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing code or state")
		return
	}
	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value != state {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "state mismatch")
		return
	}
	clearCookie(w, stateCookieName, c.SecureCookie)

	token, principal, err := c.Auth.CompleteLogin(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			c.Logger.WarnContext(r.Context(), "sign-in denied", "err", err)
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeAccessDenied, "your account is not part of the staff organization")
			return
		}
		c.Logger.ErrorContext(r.Context(), "sign-in failed", "err", err)
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "sign-in failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	c.Logger.InfoContext(r.Context(), "staff signed in", "email", principal.Email)
	http.Redirect(w, r, "/", http.StatusFound)
}

// MeSuccessResponse is the success response envelope for GET /auth/me (200).
type MeSuccessResponse struct {
	Data  domain.Principal  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Me godoc
// @Summary Current principal
// @Description Returns the authenticated staff member for the session.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MeSuccessResponse "data contains the principal"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Unauthorized")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, principal)
}

// Logout godoc
// @Summary End the session
// @Description Clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, middleware.SessionCookieName, c.SecureCookie)
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "signed out"})
}

func clearCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
