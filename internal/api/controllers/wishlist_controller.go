package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"swisstravel/internal/services"
	"swisstravel/pkg/utils"
)

type WishlistController struct {
	wishlistService services.WishlistServiceInterface
}

func NewWishlistController(wishlistService services.WishlistServiceInterface) *WishlistController {
	return &WishlistController{
		wishlistService: wishlistService,
	}
}

// GetWishlist returns the persisted wishlist rows as a bare JSON array.
func (w *WishlistController) GetWishlist(c *gin.Context) {
	items, err := w.wishlistService.GetWishlist(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetWishlistDetails returns the wishlist with names and descriptions
// resolved against the catalog.
func (w *WishlistController) GetWishlistDetails(c *gin.Context) {
	details, err := w.wishlistService.GetWishlistDetails(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (w *WishlistController) ClearWishlist(c *gin.Context) {
	if err := w.wishlistService.ClearWishlist(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Wishlist cleared")
}
