package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	routerSuite
}

func (suite *AuthHandlerTestSuite) authResult() *domain.AuthResult {
	return &domain.AuthResult{User: *newUser(uuid.NewString()), Token: "signed.jwt.token"}
}

func (suite *AuthHandlerTestSuite) TestSignup_Success() {
	req := dto.SignupRequest{Name: "Asha Rao", Email: "asha@college.edu", Password: "secret1"}
	result := suite.authResult()
	suite.mockAuth.On("Signup", mock.Anything, req).Return(result, nil).Once()

	w, env := suite.do(http.MethodPost, "/api/auth/signup", "", req)

	suite.requireStatus(w, http.StatusCreated)
	suite.True(env.Success)
	suite.Equal("User registered successfully", env.Message)

	var data map[string]any
	suite.Require().NoError(json.Unmarshal(env.Data, &data))
	suite.Equal(result.User.UserID, data["id"])
	suite.Equal("asha@college.edu", data["email"])
	suite.Equal("local", data["authProvider"])
	suite.Equal("signed.jwt.token", data["token"])
	suite.NotContains(data, "password")
	suite.NotContains(data, "passwordHash")
}

func (suite *AuthHandlerTestSuite) TestRegister_IsAliasOfSignup() {
	req := dto.SignupRequest{Name: "Asha Rao", Email: "asha@college.edu", Password: "secret1"}
	suite.mockAuth.On("Signup", mock.Anything, req).Return(suite.authResult(), nil).Once()

	w, env := suite.do(http.MethodPost, "/api/auth/register", "", req)

	suite.requireStatus(w, http.StatusCreated)
	suite.True(env.Success)
}

func (suite *AuthHandlerTestSuite) TestSignup_EmailTaken() {
	suite.mockAuth.On("Signup", mock.Anything, mock.AnythingOfType("dto.SignupRequest")).
		Return(nil, apperrors.NewConflictError("User already exists with this email")).Once()

	w, env := suite.do(http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{Name: "A", Email: "a@b.edu", Password: "secret1"})

	suite.requireStatus(w, http.StatusBadRequest)
	suite.False(env.Success)
	suite.Equal("User already exists with this email", env.Message)
}

func (suite *AuthHandlerTestSuite) TestSignup_EmptyBodyReachesService() {
	suite.mockAuth.On("Signup", mock.Anything, dto.SignupRequest{}).
		Return(nil, apperrors.NewValidationError("All fields are required")).Once()

	w, env := suite.do(http.MethodPost, "/api/auth/signup", "", nil)

	suite.requireStatus(w, http.StatusBadRequest)
	suite.Equal("All fields are required", env.Message)
}

func (suite *AuthHandlerTestSuite) TestSignup_MalformedJSON() {
	w, env := suite.do(http.MethodPost, "/api/auth/signup", "", `{"email":`)

	suite.requireStatus(w, http.StatusBadRequest)
	suite.Equal("Invalid request body", env.Message)
	suite.mockAuth.AssertNotCalled(suite.T(), "Signup", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestSignup_InternalErrorIsNotEchoed() {
	suite.mockAuth.On("Signup", mock.Anything, mock.AnythingOfType("dto.SignupRequest")).
		Return(nil, apperrors.NewInternalError("Error registering user", errors.New("pq: connection refused"))).Once()

	w, env := suite.do(http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{Name: "A", Email: "a@b.edu", Password: "secret1"})

	suite.requireStatus(w, http.StatusInternalServerError)
	suite.Equal("Error registering user", env.Message)
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	req := dto.LoginRequest{Email: "asha@college.edu", Password: "secret1"}
	suite.mockAuth.On("Login", mock.Anything, req).Return(suite.authResult(), nil).Once()

	w, env := suite.do(http.MethodPost, "/api/auth/login", "", req)

	suite.requireStatus(w, http.StatusOK)
	suite.Equal("Login successful", env.Message)
	suite.Contains(string(env.Data), `"token":"signed.jwt.token"`)
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockAuth.On("Login", mock.Anything, mock.AnythingOfType("dto.LoginRequest")).
		Return(nil, apperrors.NewUnauthenticatedError("Invalid email or password", nil)).Once()

	w, env := suite.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "x@y.edu", Password: "nope"})

	suite.requireStatus(w, http.StatusUnauthorized)
	suite.False(env.Success)
	suite.Equal("Invalid email or password", env.Message)
}

func (suite *AuthHandlerTestSuite) TestLogin_GoogleAccount() {
	msg := "This account uses Google sign-in. Please continue with Google."
	suite.mockAuth.On("Login", mock.Anything, mock.AnythingOfType("dto.LoginRequest")).
		Return(nil, apperrors.NewWrongProviderError(msg)).Once()

	w, env := suite.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "g@college.edu", Password: "whatever"})

	suite.requireStatus(w, http.StatusBadRequest)
	suite.Equal(msg, env.Message)
}

func (suite *AuthHandlerTestSuite) TestGoogleLogin() {
	suite.Run("success", func() {
		suite.mockAuth.On("ExternalLogin", mock.Anything, "google-id-token").Return(suite.authResult(), nil).Once()

		w, env := suite.do(http.MethodPost, "/api/auth/google", "", dto.GoogleAuthRequest{IDToken: "google-id-token"})

		suite.requireStatus(w, http.StatusOK)
		suite.Equal("Google authentication successful", env.Message)
	})

	suite.Run("invalid assertion", func() {
		suite.mockAuth.On("ExternalLogin", mock.Anything, "forged").
			Return(nil, apperrors.NewInvalidAssertionError("Google authentication failed", errors.New("bad audience"))).Once()

		w, env := suite.do(http.MethodPost, "/api/auth/google", "", dto.GoogleAuthRequest{IDToken: "forged"})

		suite.requireStatus(w, http.StatusInternalServerError)
		suite.Equal("Google authentication failed", env.Message)
		suite.NotContains(w.Body.String(), "bad audience")
	})

	suite.Run("verifier timeout", func() {
		suite.mockAuth.On("ExternalLogin", mock.Anything, "slow").
			Return(nil, apperrors.NewUnavailableError("Google sign-in is temporarily unavailable", nil)).Once()

		w, _ := suite.do(http.MethodPost, "/api/auth/google", "", dto.GoogleAuthRequest{IDToken: "slow"})

		suite.requireStatus(w, http.StatusServiceUnavailable)
	})
}

func (suite *AuthHandlerTestSuite) TestExchangeGoogleCode() {
	suite.mockAuth.On("ExchangeGoogleCode", mock.Anything, "4/0Ab-code").Return(suite.authResult(), nil).Once()

	w, env := suite.do(http.MethodPost, "/api/auth/google/exchange-code", "", dto.ExchangeCodeRequest{Code: "4/0Ab-code"})

	suite.requireStatus(w, http.StatusOK)
	suite.True(env.Success)
	suite.Contains(string(env.Data), `"token"`)
}

func (suite *AuthHandlerTestSuite) TestLogout() {
	w, env := suite.do(http.MethodPost, "/api/auth/logout", "", nil)

	suite.requireStatus(w, http.StatusOK)
	suite.True(env.Success)
	suite.Equal("Logged out successfully", env.Message)
}

func (suite *AuthHandlerTestSuite) TestVerify_NoToken() {
	w, env := suite.do(http.MethodGet, "/api/auth/verify", "", nil)

	suite.requireStatus(w, http.StatusUnauthorized)
	suite.Equal("Not authorized, no token provided", env.Message)
	suite.mockAuth.AssertNotCalled(suite.T(), "VerifyIdentity", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestVerify_BadToken() {
	suite.mockAuth.On("VerifyIdentity", mock.Anything, "expired").
		Return(nil, apperrors.NewUnauthenticatedError("Not authorized, token failed", apperrors.ErrInvalidToken)).Once()

	w, env := suite.do(http.MethodGet, "/api/auth/verify", "expired", nil)

	suite.requireStatus(w, http.StatusUnauthorized)
	suite.Equal("Not authorized, token failed", env.Message)
}

func (suite *AuthHandlerTestSuite) TestVerify_Success() {
	user := newUser(uuid.NewString())
	suite.signIn("good", user)

	w, env := suite.do(http.MethodGet, "/api/auth/verify", "good", nil)

	suite.requireStatus(w, http.StatusOK)
	var identity dto.IdentityResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &identity))
	suite.Equal(dto.ToIdentityResponse(user), identity)
	suite.NotContains(string(env.Data), "token")
}

func (suite *AuthHandlerTestSuite) TestChangePassword() {
	user := newUser(uuid.NewString())
	suite.signIn("good", user)

	suite.Run("success", func() {
		req := dto.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret2"}
		suite.mockAuth.On("ChangePassword", mock.Anything, user, req).Return(nil).Once()

		w, env := suite.do(http.MethodPut, "/api/auth/password", "good", req)

		suite.requireStatus(w, http.StatusOK)
		suite.Equal("Password updated successfully", env.Message)
	})

	suite.Run("wrong current password", func() {
		req := dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "secret2"}
		suite.mockAuth.On("ChangePassword", mock.Anything, user, req).
			Return(apperrors.NewUnauthenticatedError("Current password is incorrect", nil)).Once()

		w, env := suite.do(http.MethodPut, "/api/auth/password", "good", req)

		suite.requireStatus(w, http.StatusUnauthorized)
		suite.Equal("Current password is incorrect", env.Message)
	})
}

func (suite *AuthHandlerTestSuite) TestUpdateProfile() {
	user := newUser(uuid.NewString())
	suite.signIn("good", user)

	suite.Run("success", func() {
		renamed := *user
		renamed.Name = "Asha R."
		suite.mockAuth.On("UpdateProfile", mock.Anything, user, dto.UpdateProfileRequest{Name: "Asha R."}).Return(&renamed, nil).Once()

		w, env := suite.do(http.MethodPut, "/api/auth/profile", "good", dto.UpdateProfileRequest{Name: "Asha R."})

		suite.requireStatus(w, http.StatusOK)
		suite.Equal("Profile updated successfully", env.Message)
		suite.Contains(string(env.Data), `"name":"Asha R."`)
	})

	suite.Run("blank name", func() {
		suite.mockAuth.On("UpdateProfile", mock.Anything, user, dto.UpdateProfileRequest{}).
			Return(nil, apperrors.NewValidationError("Name is required")).Once()

		w, env := suite.do(http.MethodPut, "/api/auth/profile", "good", nil)

		suite.requireStatus(w, http.StatusBadRequest)
		suite.Equal("Name is required", env.Message)
	})

	suite.Run("requires token", func() {
		w, _ := suite.do(http.MethodPut, "/api/auth/profile", "", dto.UpdateProfileRequest{Name: "x"})
		suite.requireStatus(w, http.StatusUnauthorized)
	})
}

func (suite *AuthHandlerTestSuite) TestHealthAndUnknownRoute() {
	w, env := suite.do(http.MethodGet, "/health", "", nil)
	suite.requireStatus(w, http.StatusOK)
	suite.Equal("College Student Connect API is running", env.Message)

	w, env = suite.do(http.MethodGet, "/api/nope", "", nil)
	suite.requireStatus(w, http.StatusNotFound)
	suite.Equal("Route not found", env.Message)
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type RateLimitTestSuite struct {
	routerSuite
}

func (suite *RateLimitTestSuite) TestLoginIsThrottled() {
	suite.mockAuth.On("Login", mock.Anything, mock.AnythingOfType("dto.LoginRequest")).
		Return(nil, apperrors.NewUnauthenticatedError("Invalid email or password", nil)).Twice()

	body := dto.LoginRequest{Email: "x@y.edu", Password: "guess"}
	for i := 0; i < 2; i++ {
		w, _ := suite.do(http.MethodPost, "/api/auth/login", "", body)
		suite.requireStatus(w, http.StatusUnauthorized)
	}

	w, env := suite.do(http.MethodPost, "/api/auth/login", "", body)
	suite.requireStatus(w, http.StatusTooManyRequests)
	suite.False(env.Success)

	// Logout is not a credential endpoint.
	w, _ = suite.do(http.MethodPost, "/api/auth/logout", "", nil)
	suite.requireStatus(w, http.StatusOK)
}

func TestRateLimit(t *testing.T) {
	suite.Run(t, &RateLimitTestSuite{routerSuite: routerSuite{authRateLimit: "2-M"}})
}
