package handlers

import (
	"net/http"

	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/gin-gonic/gin"
)

// googleLogin godoc
// @Summary Sign in with Google
// @Description Verifies a Google ID token obtained by the frontend, provisioning an account on first use.
// @Tags auth
// @Accept json
// @Produce json
// @Param google body dto.GoogleAuthRequest true "Google ID token"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response "Missing token or email registered with a password"
// @Failure 500 {object} dto.Response "Google authentication failed"
// @Failure 503 {object} dto.Response "Google did not answer in time"
// @Router /auth/google [post]
func (h *authHandler) googleLogin(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.ExternalLogin(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err, "Google authentication failed")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Google authentication successful", dto.ToAuthResponse(result)))
}

// exchangeGoogleCode godoc
// @Summary Exchange a Google authorization code
// @Description Redeems an authorization code from the Google popup flow and signs the user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response "Invalid or expired authorization code"
// @Failure 503 {object} dto.Response
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeGoogleCode(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.ExchangeGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err, "Google authentication failed")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Google authentication successful", dto.ToAuthResponse(result)))
}
