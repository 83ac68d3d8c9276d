package handlers_test

import (
	"context"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthService) ExternalLogin(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthService) ExchangeGoogleCode(ctx context.Context, code string) (*domain.AuthResult, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthService) VerifyIdentity(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, user *domain.User, req dto.ChangePasswordRequest) error {
	args := m.Called(ctx, user, req)
	return args.Error(0)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, user *domain.User, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock LostFoundService ---
type MockLostFoundService struct {
	mock.Mock
}

func (m *MockLostFoundService) GetLostItemByID(ctx context.Context, itemID string) (*domain.LostItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LostItem), args.Error(1)
}

func (m *MockLostFoundService) ListLostItemsByType(ctx context.Context, itemType domain.LostItemType) ([]domain.LostItem, error) {
	args := m.Called(ctx, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LostItem), args.Error(1)
}

func (m *MockLostFoundService) ListLostItemsByOwner(ctx context.Context, ownerID string) ([]domain.LostItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LostItem), args.Error(1)
}

func (m *MockLostFoundService) CreateLostItem(ctx context.Context, req dto.CreateLostItemRequest, creatorUserID string) (*domain.LostItem, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LostItem), args.Error(1)
}

func (m *MockLostFoundService) UpdateLostItem(ctx context.Context, itemID string, req dto.UpdateLostItemRequest, requestingUserID string) (*domain.LostItem, error) {
	args := m.Called(ctx, itemID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LostItem), args.Error(1)
}

func (m *MockLostFoundService) DeleteLostItem(ctx context.Context, itemID string, requestingUserID string) error {
	args := m.Called(ctx, itemID, requestingUserID)
	return args.Error(0)
}

var _ portssvc.LostFoundSvcFacade = (*MockLostFoundService)(nil)

// --- Mock MarketplaceService ---
type MockMarketplaceService struct {
	mock.Mock
}

func (m *MockMarketplaceService) GetMarketplaceItemByID(ctx context.Context, itemID string) (*domain.MarketplaceItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketplaceItem), args.Error(1)
}

func (m *MockMarketplaceService) ListMarketplaceItemsByCategory(ctx context.Context, category domain.MarketplaceCategory) ([]domain.MarketplaceItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketplaceItem), args.Error(1)
}

func (m *MockMarketplaceService) ListMarketplaceItemsByOwner(ctx context.Context, ownerID string) ([]domain.MarketplaceItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketplaceItem), args.Error(1)
}

func (m *MockMarketplaceService) CreateMarketplaceItem(ctx context.Context, req dto.CreateMarketplaceItemRequest, creatorUserID string) (*domain.MarketplaceItem, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketplaceItem), args.Error(1)
}

func (m *MockMarketplaceService) UpdateMarketplaceItem(ctx context.Context, itemID string, req dto.UpdateMarketplaceItemRequest, requestingUserID string) (*domain.MarketplaceItem, error) {
	args := m.Called(ctx, itemID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketplaceItem), args.Error(1)
}

func (m *MockMarketplaceService) DeleteMarketplaceItem(ctx context.Context, itemID string, requestingUserID string) error {
	args := m.Called(ctx, itemID, requestingUserID)
	return args.Error(0)
}

var _ portssvc.MarketplaceSvcFacade = (*MockMarketplaceService)(nil)
