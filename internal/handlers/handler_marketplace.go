package handlers

import (
	"net/http"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/SscSPs/campus_connect/internal/middleware"
	"github.com/gin-gonic/gin"
)

// marketplaceHandler handles HTTP requests for buy/sell listings.
type marketplaceHandler struct {
	marketplaceService portssvc.MarketplaceSvcFacade
}

func newMarketplaceHandler(ms portssvc.MarketplaceSvcFacade) *marketplaceHandler {
	return &marketplaceHandler{marketplaceService: ms}
}

// registerMarketplaceRoutes registers routes related to the marketplace.
func registerMarketplaceRoutes(rg *gin.RouterGroup, marketplaceService portssvc.MarketplaceSvcFacade, authMiddleware gin.HandlerFunc) {
	h := newMarketplaceHandler(marketplaceService)

	marketplace := rg.Group("/marketplace")
	{
		marketplace.POST("", authMiddleware, h.createListing)
		marketplace.GET("/buy", h.listByCategory(domain.CategoryBuy))
		marketplace.GET("/sell", h.listByCategory(domain.CategorySell))
		marketplace.GET("/my-items", authMiddleware, h.listMyListings)
		marketplace.GET("/:id", h.getListing)
		marketplace.PUT("/:id", authMiddleware, h.updateListing)
		marketplace.DELETE("/:id", authMiddleware, h.deleteListing)
	}
}

// createListing godoc
// @Summary Post a marketplace listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param listing body dto.CreateMarketplaceItemRequest true "Listing details"
// @Success 201 {object} dto.Response{data=domain.MarketplaceItem}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /marketplace [post]
func (h *marketplaceHandler) createListing(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}

	var req dto.CreateMarketplaceItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.marketplaceService.CreateMarketplaceItem(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Error creating listing")
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Item posted successfully", item))
}

// listByCategory godoc
// @Summary List buy (or sell) listings
// @Tags marketplace
// @Produce json
// @Success 200 {object} dto.Response{data=[]domain.MarketplaceItem}
// @Router /marketplace/buy [get]
// @Router /marketplace/sell [get]
func (h *marketplaceHandler) listByCategory(category domain.MarketplaceCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.marketplaceService.ListMarketplaceItemsByCategory(c.Request.Context(), category)
		if err != nil {
			respondError(c, err, "Error fetching "+string(category)+" items")
			return
		}
		c.JSON(http.StatusOK, dto.List(items))
	}
}

// listMyListings godoc
// @Summary List my marketplace listings
// @Tags marketplace
// @Produce json
// @Success 200 {object} dto.Response{data=[]domain.MarketplaceItem}
// @Security BearerAuth
// @Router /marketplace/my-items [get]
func (h *marketplaceHandler) listMyListings(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}

	items, err := h.marketplaceService.ListMarketplaceItemsByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Error fetching your items")
		return
	}
	c.JSON(http.StatusOK, dto.List(items))
}

// getListing godoc
// @Summary Get a marketplace listing
// @Tags marketplace
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.Response{data=domain.MarketplaceItem}
// @Failure 404 {object} dto.Response
// @Router /marketplace/{id} [get]
func (h *marketplaceHandler) getListing(c *gin.Context) {
	item, err := h.marketplaceService.GetMarketplaceItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error fetching item")
		return
	}
	c.JSON(http.StatusOK, dto.OK("", item))
}

// updateListing godoc
// @Summary Update a marketplace listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param listing body dto.UpdateMarketplaceItemRequest true "Fields to change"
// @Success 200 {object} dto.Response{data=domain.MarketplaceItem}
// @Failure 400 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /marketplace/{id} [put]
func (h *marketplaceHandler) updateListing(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}

	var req dto.UpdateMarketplaceItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.marketplaceService.UpdateMarketplaceItem(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Error updating item")
		return
	}
	c.JSON(http.StatusOK, dto.OK("Item updated successfully", item))
}

// deleteListing godoc
// @Summary Delete a marketplace listing
// @Tags marketplace
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /marketplace/{id} [delete]
func (h *marketplaceHandler) deleteListing(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
		return
	}

	if err := h.marketplaceService.DeleteMarketplaceItem(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Error deleting item")
		return
	}
	c.JSON(http.StatusOK, dto.OK("Item deleted successfully", nil))
}
