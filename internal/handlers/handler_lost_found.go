package handlers

import (
	"net/http"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/SscSPs/campus_connect/internal/middleware"
	"github.com/gin-gonic/gin"
)

// lostFoundHandler handles HTTP requests for the lost & found board.
type lostFoundHandler struct {
	lostFoundService portssvc.LostFoundSvcFacade
}

func newLostFoundHandler(lfs portssvc.LostFoundSvcFacade) *lostFoundHandler {
	return &lostFoundHandler{lostFoundService: lfs}
}

// registerLostFoundRoutes registers routes related to the lost & found board.
// Reads are public; writes require a verified identity.
func registerLostFoundRoutes(rg *gin.RouterGroup, lostFoundService portssvc.LostFoundSvcFacade, authMiddleware gin.HandlerFunc) {
	h := newLostFoundHandler(lostFoundService)

	lostFound := rg.Group("/lost-found")
	{
		lostFound.POST("", authMiddleware, h.createItem)
		lostFound.GET("/lost", h.listByType(domain.LostItemTypeLost))
		lostFound.GET("/found", h.listByType(domain.LostItemTypeFound))
		lostFound.GET("/my-items", authMiddleware, h.listMyItems)
		lostFound.GET("/:id", h.getItem)
		lostFound.PUT("/:id", authMiddleware, h.updateItem)
		lostFound.DELETE("/:id", authMiddleware, h.deleteItem)
	}
}

// createItem godoc
// @Summary Post a lost or found item
// @Tags lost-found
// @Accept json
// @Produce json
// @Param item body dto.CreateLostItemRequest true "Item details"
// @Success 201 {object} dto.Response{data=domain.LostItem}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /lost-found [post]
func (h *lostFoundHandler) createItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}

	var req dto.CreateLostItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.lostFoundService.CreateLostItem(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Error creating item")
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Item posted successfully", item))
}

// listByType godoc
// @Summary List lost (or found) items
// @Description Newest first, with the poster's name and email.
// @Tags lost-found
// @Produce json
// @Success 200 {object} dto.Response{data=[]domain.LostItem}
// @Failure 500 {object} dto.Response
// @Router /lost-found/lost [get]
// @Router /lost-found/found [get]
func (h *lostFoundHandler) listByType(itemType domain.LostItemType) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.lostFoundService.ListLostItemsByType(c.Request.Context(), itemType)
		if err != nil {
			respondError(c, err, "Error fetching "+string(itemType)+" items")
			return
		}
		c.JSON(http.StatusOK, dto.List(items))
	}
}

// listMyItems godoc
// @Summary List my lost & found posts
// @Tags lost-found
// @Produce json
// @Success 200 {object} dto.Response{data=[]domain.LostItem}
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /lost-found/my-items [get]
func (h *lostFoundHandler) listMyItems(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}

	items, err := h.lostFoundService.ListLostItemsByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Error fetching your items")
		return
	}
	c.JSON(http.StatusOK, dto.List(items))
}

// getItem godoc
// @Summary Get a lost & found item
// @Tags lost-found
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.Response{data=domain.LostItem}
// @Failure 404 {object} dto.Response
// @Router /lost-found/{id} [get]
func (h *lostFoundHandler) getItem(c *gin.Context) {
	item, err := h.lostFoundService.GetLostItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error fetching item")
		return
	}
	c.JSON(http.StatusOK, dto.OK("", item))
}

// updateItem godoc
// @Summary Update a lost & found item
// @Description Only the user who posted the item may update it.
// @Tags lost-found
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.UpdateLostItemRequest true "Fields to change"
// @Success 200 {object} dto.Response{data=domain.LostItem}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /lost-found/{id} [put]
func (h *lostFoundHandler) updateItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}

	var req dto.UpdateLostItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.lostFoundService.UpdateLostItem(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Error updating item")
		return
	}
	c.JSON(http.StatusOK, dto.OK("Item updated successfully", item))
}

// deleteItem godoc
// @Summary Delete a lost & found item
// @Description Only the user who posted the item may delete it.
// @Tags lost-found
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /lost-found/{id} [delete]
func (h *lostFoundHandler) deleteItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}

	if err := h.lostFoundService.DeleteLostItem(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Error deleting item")
		return
	}
	c.JSON(http.StatusOK, dto.OK("Item deleted successfully", nil))
}
