package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/middleware"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// CodeExchanger redeems OAuth authorization codes for the ID token in the token response.
type CodeExchanger struct {
	oauthConfig *oauth2.Config
	timeout     time.Duration
}

// NewGoogleCodeExchanger creates an exchanger for Google's token endpoint.
// redirectURL is "postmessage" for codes obtained by the JS popup flow.
func NewGoogleCodeExchanger(clientID, clientSecret, redirectURL string, timeout time.Duration) *CodeExchanger {
	return NewCodeExchanger(&oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}, timeout)
}

// NewCodeExchanger creates an exchanger for an arbitrary OAuth2 configuration.
func NewCodeExchanger(cfg *oauth2.Config, timeout time.Duration) *CodeExchanger {
	return &CodeExchanger{oauthConfig: cfg, timeout: timeout}
}

var _ portssvc.AuthCodeExchangerSvc = (*CodeExchanger)(nil)

func (e *CodeExchanger) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if e.oauthConfig.ClientID == "" || e.oauthConfig.ClientSecret == "" {
		logger.Error("Google code exchange attempted but OAuth client credentials are not configured")
		return "", apperrors.NewInvalidAssertionError("Google authentication failed", errors.New("oauth client not configured"))
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	token, err := e.oauthConfig.Exchange(ctx, code)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", apperrors.NewUnavailableError("Google authentication is temporarily unavailable", err)
		}
		logger.Warn("Failed to exchange authorization code", slog.String("error", err.Error()))
		return "", apperrors.NewInvalidAssertionError("Invalid or expired authorization code", err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", apperrors.NewInvalidAssertionError("Google authentication failed", errors.New("token response carried no id_token"))
	}
	return idToken, nil
}
