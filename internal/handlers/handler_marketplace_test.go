package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MarketplaceHandlerTestSuite struct {
	routerSuite
	seller *domain.User
}

func (suite *MarketplaceHandlerTestSuite) SetupTest() {
	suite.routerSuite.SetupTest()
	suite.seller = newUser(uuid.NewString())
	suite.signIn("seller", suite.seller)
}

func (suite *MarketplaceHandlerTestSuite) listing(category domain.MarketplaceCategory) *domain.MarketplaceItem {
	return &domain.MarketplaceItem{
		ItemID:     uuid.NewString(),
		ItemName:   "Engineering Drawing kit",
		Price:      decimal.RequireFromString("250.50"),
		SellerName: suite.seller.Name,
		Category:   category,
		CreatedBy:  suite.seller.UserID,
	}
}

func (suite *MarketplaceHandlerTestSuite) TestCreate_Success() {
	created := suite.listing(domain.CategorySell)
	suite.mockMarketplace.On("CreateMarketplaceItem", mock.Anything,
		mock.MatchedBy(func(req dto.CreateMarketplaceItemRequest) bool {
			return req.ItemName == "Engineering Drawing kit" &&
				req.Price != nil && req.Price.Equal(decimal.RequireFromString("250.5")) &&
				req.Category == domain.CategorySell
		}),
		suite.seller.UserID,
	).Return(created, nil).Once()

	body := `{"itemName":"Engineering Drawing kit","price":250.5,"sellerName":"Asha Rao","category":"sell"}`
	w, env := suite.do(http.MethodPost, "/api/marketplace", "seller", body)

	suite.requireStatus(w, http.StatusCreated)
	var got domain.MarketplaceItem
	suite.Require().NoError(json.Unmarshal(env.Data, &got))
	suite.True(got.Price.Equal(created.Price))
}

func (suite *MarketplaceHandlerTestSuite) TestCreate_MissingPrice() {
	body := `{"itemName":"Calculator","sellerName":"Asha Rao","category":"sell"}`
	w, env := suite.do(http.MethodPost, "/api/marketplace", "seller", body)

	suite.requireStatus(w, http.StatusBadRequest)
	suite.Equal("Missing required fields: price", env.Message)
}

func (suite *MarketplaceHandlerTestSuite) TestCreate_NegativePrice() {
	suite.mockMarketplace.On("CreateMarketplaceItem", mock.Anything, mock.AnythingOfType("dto.CreateMarketplaceItemRequest"), suite.seller.UserID).
		Return(nil, apperrors.NewValidationError("Price cannot be negative")).Once()

	body := `{"itemName":"Calculator","price":-5,"sellerName":"Asha Rao","category":"sell"}`
	w, env := suite.do(http.MethodPost, "/api/marketplace", "seller", body)

	suite.requireStatus(w, http.StatusBadRequest)
	suite.Equal("Price cannot be negative", env.Message)
}

func (suite *MarketplaceHandlerTestSuite) TestListByCategory() {
	suite.mockMarketplace.On("ListMarketplaceItemsByCategory", mock.Anything, domain.CategoryBuy).
		Return([]domain.MarketplaceItem{*suite.listing(domain.CategoryBuy)}, nil).Once()

	w, env := suite.do(http.MethodGet, "/api/marketplace/buy", "", nil)

	suite.requireStatus(w, http.StatusOK)
	suite.Equal(1, *env.Count)
}

func (suite *MarketplaceHandlerTestSuite) TestUpdateAndDelete_ByNonOwner() {
	itemID := uuid.NewString()
	suite.mockMarketplace.On("UpdateMarketplaceItem", mock.Anything, itemID, mock.AnythingOfType("dto.UpdateMarketplaceItemRequest"), suite.seller.UserID).
		Return(nil, apperrors.NewForbiddenError("You do not have permission to update this item")).Once()
	suite.mockMarketplace.On("DeleteMarketplaceItem", mock.Anything, itemID, suite.seller.UserID).
		Return(apperrors.NewForbiddenError("You do not have permission to delete this item")).Once()

	w, env := suite.do(http.MethodPut, "/api/marketplace/"+itemID, "seller", `{"price":"10"}`)
	suite.requireStatus(w, http.StatusForbidden)
	suite.Equal("You do not have permission to update this item", env.Message)

	w, env = suite.do(http.MethodDelete, "/api/marketplace/"+itemID, "seller", nil)
	suite.requireStatus(w, http.StatusForbidden)
	suite.Equal("You do not have permission to delete this item", env.Message)
}

func (suite *MarketplaceHandlerTestSuite) TestListMyItems() {
	suite.mockMarketplace.On("ListMarketplaceItemsByOwner", mock.Anything, suite.seller.UserID).
		Return([]domain.MarketplaceItem{}, nil).Once()

	w, env := suite.do(http.MethodGet, "/api/marketplace/my-items", "seller", nil)

	suite.requireStatus(w, http.StatusOK)
	suite.Equal(0, *env.Count)
}

func TestMarketplaceHandler(t *testing.T) {
	suite.Run(t, new(MarketplaceHandlerTestSuite))
}
