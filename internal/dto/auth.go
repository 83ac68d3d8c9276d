package dto

import "github.com/SscSPs/campus_connect/internal/core/domain"

// SignupRequest is the body of /auth/signup and /auth/register.
// Presence is checked by the auth service so the rules hold for every caller.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleAuthRequest carries the ID token obtained by the frontend from Google.
type GoogleAuthRequest struct {
	IDToken string `json:"idToken"`
}

// ExchangeCodeRequest carries an authorization code obtained by the frontend from Google.
type ExchangeCodeRequest struct {
	Code string `json:"code"`
}

// ChangePasswordRequest is the body of PUT /auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfileRequest is the body of PUT /auth/profile.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// IdentityResponse is the public view of a user.
type IdentityResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	AuthProvider domain.AuthProvider `json:"authProvider"`
}

// AuthResponse is returned by signup and the login flows.
type AuthResponse struct {
	IdentityResponse
	Token string `json:"token"`
}

// ToIdentityResponse converts a domain.User to its public view.
func ToIdentityResponse(u *domain.User) IdentityResponse {
	return IdentityResponse{
		ID:           u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		AuthProvider: u.AuthProvider,
	}
}

// ToAuthResponse converts an auth result to the response DTO.
func ToAuthResponse(r *domain.AuthResult) AuthResponse {
	return AuthResponse{
		IdentityResponse: ToIdentityResponse(&r.User),
		Token:            r.Token,
	}
}
