package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var assertErr = assert.AnError

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserName(ctx context.Context, userID string, name string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, name, updatedAt)
	return args.Error(0)
}

// --- Mock LostItemRepository ---
type MockLostItemRepository struct {
	mock.Mock
}

func (m *MockLostItemRepository) FindLostItemByID(ctx context.Context, itemID string) (*domain.LostItem, error) {
	args := m.Called(ctx, itemID)
	var item *domain.LostItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.LostItem)
	}
	return item, args.Error(1)
}

func (m *MockLostItemRepository) FindLostItemsByType(ctx context.Context, itemType domain.LostItemType) ([]domain.LostItem, error) {
	args := m.Called(ctx, itemType)
	var items []domain.LostItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.LostItem)
	}
	return items, args.Error(1)
}

func (m *MockLostItemRepository) FindLostItemsByOwner(ctx context.Context, ownerID string) ([]domain.LostItem, error) {
	args := m.Called(ctx, ownerID)
	var items []domain.LostItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.LostItem)
	}
	return items, args.Error(1)
}

func (m *MockLostItemRepository) SaveLostItem(ctx context.Context, item domain.LostItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLostItemRepository) UpdateLostItem(ctx context.Context, item domain.LostItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLostItemRepository) DeleteLostItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// --- Mock MarketplaceItemRepository ---
type MockMarketplaceItemRepository struct {
	mock.Mock
}

func (m *MockMarketplaceItemRepository) FindMarketplaceItemByID(ctx context.Context, itemID string) (*domain.MarketplaceItem, error) {
	args := m.Called(ctx, itemID)
	var item *domain.MarketplaceItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MarketplaceItem)
	}
	return item, args.Error(1)
}

func (m *MockMarketplaceItemRepository) FindMarketplaceItemsByCategory(ctx context.Context, category domain.MarketplaceCategory) ([]domain.MarketplaceItem, error) {
	args := m.Called(ctx, category)
	var items []domain.MarketplaceItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MarketplaceItem)
	}
	return items, args.Error(1)
}

func (m *MockMarketplaceItemRepository) FindMarketplaceItemsByOwner(ctx context.Context, ownerID string) ([]domain.MarketplaceItem, error) {
	args := m.Called(ctx, ownerID)
	var items []domain.MarketplaceItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MarketplaceItem)
	}
	return items, args.Error(1)
}

func (m *MockMarketplaceItemRepository) SaveMarketplaceItem(ctx context.Context, item domain.MarketplaceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMarketplaceItemRepository) UpdateMarketplaceItem(ctx context.Context, item domain.MarketplaceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMarketplaceItemRepository) DeleteMarketplaceItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// --- Mock identity verifier and code exchanger ---
type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) Verify(ctx context.Context, assertion string) (*domain.ExternalIdentity, error) {
	args := m.Called(ctx, assertion)
	var identity *domain.ExternalIdentity
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.ExternalIdentity)
	}
	return identity, args.Error(1)
}

type MockCodeExchanger struct {
	mock.Mock
}

func (m *MockCodeExchanger) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}
