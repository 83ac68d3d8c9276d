package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/SscSPs/campus_connect/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles signup, the login flows and identity verification.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the routes for authentication. rateLimit guards
// every credential-accepting endpoint.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, authMiddleware, rateLimit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := rg.Group("/auth")
	{
		auth.POST("/signup", rateLimit, h.signup)
		auth.POST("/register", rateLimit, h.signup)
		auth.POST("/login", rateLimit, h.login)
		auth.POST("/google", rateLimit, h.googleLogin)
		auth.POST("/google/exchange-code", rateLimit, h.exchangeGoogleCode)
		auth.POST("/logout", h.logout)
		auth.GET("/verify", authMiddleware, h.verify)
		auth.PUT("/password", authMiddleware, rateLimit, h.changePassword)
		auth.PUT("/profile", authMiddleware, h.updateProfile)
	}
}

// signup godoc
// @Summary Register a new user
// @Description Creates a local account and returns the identity with a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup details"
// @Success 201 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response "Missing fields, invalid email, short password or email already registered"
// @Failure 429 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /auth/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Error registering user")
		return
	}

	c.JSON(http.StatusCreated, dto.OK("User registered successfully", dto.ToAuthResponse(result)))
}

// login godoc
// @Summary User login
// @Description Authenticates with email and password and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response "Missing fields or account uses Google sign-in"
// @Failure 401 {object} dto.Response "Invalid email or password"
// @Failure 429 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Error logging in")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Login successful", dto.ToAuthResponse(result)))
}

// logout godoc
// @Summary Log out
// @Description Tokens are stateless; the client discards its token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK("Logged out successfully", nil))
}

// verify godoc
// @Summary Verify session token
// @Description Returns the identity the bearer token was issued for.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response{data=dto.IdentityResponse}
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /auth/verify [get]
func (h *authHandler) verify(c *gin.Context) {
	user, ok := middleware.GetUserFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}
	c.JSON(http.StatusOK, dto.OK("", dto.ToIdentityResponse(user)))
}

// changePassword godoc
// @Summary Change password
// @Description Replaces the password of a local account after checking the current one.
// @Tags auth
// @Accept json
// @Produce json
// @Param password body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /auth/password [put]
func (h *authHandler) changePassword(c *gin.Context) {
	user, ok := middleware.GetUserFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), user, req); err != nil {
		respondError(c, err, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Password updated successfully", nil))
}

// updateProfile godoc
// @Summary Update profile
// @Description Changes the display name of the signed-in user.
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "New name"
// @Success 200 {object} dto.Response{data=dto.IdentityResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /auth/profile [put]
func (h *authHandler) updateProfile(c *gin.Context) {
	user, ok := middleware.GetUserFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.authService.UpdateProfile(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.OK("Profile updated successfully", dto.ToIdentityResponse(updated)))
}
