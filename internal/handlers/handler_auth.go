package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/middleware"
	"github.com/SscSPs/workspace_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	oauthStateCookie       = "oauth_state"
	oauthStateCookieMaxAge = 600
	googleSignInFailed     = "google_sign_in_failed"
)

type authHandler struct {
	authService     portssvc.AuthSvcFacade
	frontendBaseURL string
	secureCookies   bool
}

// registerAuthRoutes wires the public sign-in endpoints. limit guards the
// credential endpoints and may be nil.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, frontendBaseURL string, secureCookies bool, limit gin.HandlerFunc) {
	h := &authHandler{
		authService:     authService,
		frontendBaseURL: frontendBaseURL,
		secureCookies:   secureCookies,
	}

	credentials := []gin.HandlerFunc{}
	if limit != nil {
		credentials = append(credentials, limit)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/register", append(credentials, h.register)...)
		auth.POST("/login", append(credentials, h.login)...)
		auth.GET("/google/login", h.googleLogin)
		auth.GET("/google/callback", h.googleCallback)
	}
}

// register godoc
// @Summary Register with email and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   user body dto.RegisterRequest true "New user"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register")
		return
	}
	c.JSON(http.StatusCreated, toAuthResponse(user, token))
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, toAuthResponse(user, token))
}

// googleLogin godoc
// @Summary Start Google sign-in
// @Description Sets a short-lived state cookie and redirects to the Google consent screen
// @Tags auth
// @Success 302 "Redirect to Google"
// @Failure 404 {object} map[string]string "Google sign-in is not configured"
// @Router /auth/google/login [get]
func (h *authHandler) googleLogin(c *gin.Context) {
	if !h.authService.GoogleEnabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Google sign-in is not configured"})
		return
	}

	consentURL, state, err := h.authService.GoogleLoginURL(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to start Google sign-in")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateCookieMaxAge, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, consentURL)
}

// googleCallback godoc
// @Summary Finish Google sign-in
// @Description Verifies the state, exchanges the code and redirects to the frontend with the session token in the URL fragment
// @Tags auth
// @Param   state query string true "State echoed by Google"
// @Param   code  query string true "Authorization code"
// @Success 302 "Redirect to the frontend"
// @Router /auth/google/callback [get]
func (h *authHandler) googleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	if !h.authService.GoogleEnabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Google sign-in is not configured"})
		return
	}

	expected, cookieErr := c.Cookie(oauthStateCookie)
	// The state is single use.
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)

	state := c.Query("state")
	if cookieErr != nil || expected == "" || state != expected {
		logger.Warn("Google callback state mismatch")
		h.redirectFailure(c)
		return
	}
	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("Google sign-in was not granted", slog.String("reason", errParam))
		h.redirectFailure(c)
		return
	}
	code := c.Query("code")
	if code == "" {
		logger.Warn("Google callback without authorization code")
		h.redirectFailure(c)
		return
	}

	_, token, err := h.authService.GoogleCallback(c.Request.Context(), code)
	if err != nil {
		logger.Error("Google sign-in failed", slog.String("error", err.Error()))
		h.redirectFailure(c)
		return
	}

	fragment := url.Values{}
	fragment.Set("token", token.Token)
	c.Redirect(http.StatusFound, h.frontendBaseURL+"/auth/callback#"+fragment.Encode())
}

func (h *authHandler) redirectFailure(c *gin.Context) {
	c.Redirect(http.StatusFound, h.frontendBaseURL+"/login?error="+googleSignInFailed)
}

func toAuthResponse(user *domain.User, token utils.SessionToken) dto.AuthResponse {
	return dto.AuthResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		User:      dto.ToUserResponse(user),
	}
}
