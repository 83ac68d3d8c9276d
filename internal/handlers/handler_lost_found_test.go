package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LostFoundHandlerTestSuite struct {
	routerSuite
	owner *domain.User
}

func (suite *LostFoundHandlerTestSuite) SetupTest() {
	suite.routerSuite.SetupTest()
	suite.owner = newUser(uuid.NewString())
}

func (suite *LostFoundHandlerTestSuite) item(itemType domain.LostItemType) *domain.LostItem {
	return &domain.LostItem{
		ItemID:        uuid.NewString(),
		ItemName:      "Blue umbrella",
		Description:   "Left in the library",
		LostDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ContactNumber: "9876543210",
		Type:          itemType,
		ImageURL:      domain.DefaultLostItemImageURL,
		CreatedBy:     suite.owner.UserID,
		Owner:         &domain.Owner{UserID: suite.owner.UserID, Name: suite.owner.Name, Email: suite.owner.Email},
	}
}

func (suite *LostFoundHandlerTestSuite) TestCreate_RequiresToken() {
	w, env := suite.do(http.MethodPost, "/api/lost-found", "", dto.CreateLostItemRequest{ItemName: "x"})

	suite.requireStatus(w, http.StatusUnauthorized)
	suite.Equal("Not authorized, no token provided", env.Message)
}

func (suite *LostFoundHandlerTestSuite) TestCreate_MissingFields() {
	suite.signIn("owner", suite.owner)

	w, env := suite.do(http.MethodPost, "/api/lost-found", "owner", map[string]string{"itemName": "Umbrella"})

	suite.requireStatus(w, http.StatusBadRequest)
	suite.Equal("Missing required fields: description, lostDate, contactNumber, type", env.Message)
}

func (suite *LostFoundHandlerTestSuite) TestCreate_Success() {
	suite.signIn("owner", suite.owner)
	req := dto.CreateLostItemRequest{
		ItemName:      "Blue umbrella",
		Description:   "Left in the library",
		LostDate:      "2024-03-01",
		ContactNumber: "9876543210",
		Type:          domain.LostItemTypeLost,
	}
	created := suite.item(domain.LostItemTypeLost)
	suite.mockLostFound.On("CreateLostItem", mock.Anything, req, suite.owner.UserID).Return(created, nil).Once()

	w, env := suite.do(http.MethodPost, "/api/lost-found", "owner", req)

	suite.requireStatus(w, http.StatusCreated)
	suite.Equal("Item posted successfully", env.Message)
	var got domain.LostItem
	suite.Require().NoError(json.Unmarshal(env.Data, &got))
	suite.Equal(created.ItemID, got.ItemID)
	suite.Equal(suite.owner.UserID, got.CreatedBy)
}

func (suite *LostFoundHandlerTestSuite) TestListByType() {
	items := []domain.LostItem{*suite.item(domain.LostItemTypeFound), *suite.item(domain.LostItemTypeFound)}
	suite.mockLostFound.On("ListLostItemsByType", mock.Anything, domain.LostItemTypeFound).Return(items, nil).Once()
	suite.mockLostFound.On("ListLostItemsByType", mock.Anything, domain.LostItemTypeLost).Return([]domain.LostItem{}, nil).Once()

	w, env := suite.do(http.MethodGet, "/api/lost-found/found", "", nil)
	suite.requireStatus(w, http.StatusOK)
	suite.Require().NotNil(env.Count)
	suite.Equal(2, *env.Count)
	suite.Contains(string(env.Data), `"email":"asha@college.edu"`)

	w, env = suite.do(http.MethodGet, "/api/lost-found/lost", "", nil)
	suite.requireStatus(w, http.StatusOK)
	suite.Require().NotNil(env.Count)
	suite.Equal(0, *env.Count)
	suite.JSONEq(`[]`, string(env.Data))
}

func (suite *LostFoundHandlerTestSuite) TestListMyItems() {
	suite.signIn("owner", suite.owner)
	suite.mockLostFound.On("ListLostItemsByOwner", mock.Anything, suite.owner.UserID).
		Return([]domain.LostItem{*suite.item(domain.LostItemTypeLost)}, nil).Once()

	w, env := suite.do(http.MethodGet, "/api/lost-found/my-items", "owner", nil)

	suite.requireStatus(w, http.StatusOK)
	suite.Equal(1, *env.Count)
}

func (suite *LostFoundHandlerTestSuite) TestGet_IsPublic() {
	item := suite.item(domain.LostItemTypeLost)
	suite.mockLostFound.On("GetLostItemByID", mock.Anything, item.ItemID).Return(item, nil).Once()

	w, env := suite.do(http.MethodGet, "/api/lost-found/"+item.ItemID, "", nil)

	suite.requireStatus(w, http.StatusOK)
	suite.True(env.Success)
}

func (suite *LostFoundHandlerTestSuite) TestGet_MalformedID() {
	suite.mockLostFound.On("GetLostItemByID", mock.Anything, "not-a-uuid").
		Return(nil, apperrors.NewNotFoundError("Item not found")).Once()

	w, env := suite.do(http.MethodGet, "/api/lost-found/not-a-uuid", "", nil)

	suite.requireStatus(w, http.StatusNotFound)
	suite.Equal("Item not found", env.Message)
}

func (suite *LostFoundHandlerTestSuite) TestUpdate_ByNonOwner() {
	intruder := newUser(uuid.NewString())
	suite.signIn("intruder", intruder)
	itemID := uuid.NewString()
	name := "Mine now"
	suite.mockLostFound.On("UpdateLostItem", mock.Anything, itemID, dto.UpdateLostItemRequest{ItemName: &name}, intruder.UserID).
		Return(nil, apperrors.NewForbiddenError("You do not have permission to update this item")).Once()

	w, env := suite.do(http.MethodPut, "/api/lost-found/"+itemID, "intruder", map[string]string{"itemName": name})

	suite.requireStatus(w, http.StatusForbidden)
	suite.Equal("You do not have permission to update this item", env.Message)
}

func (suite *LostFoundHandlerTestSuite) TestUpdate_InvalidType() {
	suite.signIn("owner", suite.owner)

	w, env := suite.do(http.MethodPut, "/api/lost-found/"+uuid.NewString(), "owner", map[string]string{"type": "stolen"})

	suite.requireStatus(w, http.StatusBadRequest)
	suite.Equal("Invalid value for field: type", env.Message)
}

func (suite *LostFoundHandlerTestSuite) TestUpdate_Success() {
	suite.signIn("owner", suite.owner)
	item := suite.item(domain.LostItemTypeFound)
	found := domain.LostItemTypeFound
	suite.mockLostFound.On("UpdateLostItem", mock.Anything, item.ItemID, dto.UpdateLostItemRequest{Type: &found}, suite.owner.UserID).
		Return(item, nil).Once()

	w, env := suite.do(http.MethodPut, "/api/lost-found/"+item.ItemID, "owner", map[string]string{"type": "found"})

	suite.requireStatus(w, http.StatusOK)
	suite.Equal("Item updated successfully", env.Message)
}

func (suite *LostFoundHandlerTestSuite) TestDelete() {
	suite.signIn("owner", suite.owner)
	itemID := uuid.NewString()

	suite.Run("owner deletes", func() {
		suite.mockLostFound.On("DeleteLostItem", mock.Anything, itemID, suite.owner.UserID).Return(nil).Once()

		w, env := suite.do(http.MethodDelete, "/api/lost-found/"+itemID, "owner", nil)

		suite.requireStatus(w, http.StatusOK)
		suite.Equal("Item deleted successfully", env.Message)
	})

	suite.Run("already gone", func() {
		suite.mockLostFound.On("DeleteLostItem", mock.Anything, itemID, suite.owner.UserID).
			Return(apperrors.NewNotFoundError("Item not found")).Once()

		w, _ := suite.do(http.MethodDelete, "/api/lost-found/"+itemID, "owner", nil)

		suite.requireStatus(w, http.StatusNotFound)
	})
}

func TestLostFoundHandler(t *testing.T) {
	suite.Run(t, new(LostFoundHandlerTestSuite))
}
