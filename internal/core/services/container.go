package services

import (
	"github.com/SscSPs/campus_connect/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/platform/config"
	"github.com/SscSPs/campus_connect/internal/utils"
)

// NewServiceContainer wires every service from the configuration and repositories.
func NewServiceContainer(cfg *config.Config, repos repositories.RepositoryProvider) *portssvc.ServiceContainer {
	hasher := utils.NewBcryptHasher()
	guard := NewOwnershipGuard()

	var exchanger portssvc.AuthCodeExchangerSvc
	if cfg.GoogleClientSecret != "" {
		exchanger = NewGoogleCodeExchanger(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.GoogleVerifyTimeout)
	}

	auth := NewAuthService(
		NewCredentialStore(repos.UserRepo, hasher),
		hasher,
		NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryDuration),
		NewGoogleIdentityVerifier(cfg.GoogleClientID, cfg.GoogleVerifyTimeout),
		exchanger,
	)

	return &portssvc.ServiceContainer{
		Auth:        auth,
		LostFound:   NewLostFoundService(repos.LostItemRepo, guard),
		Marketplace: NewMarketplaceService(repos.MarketplaceItemRepo, guard),
	}
}
