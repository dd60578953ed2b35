package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"unistay/internal/handler/middleware"
	"unistay/internal/usecase/commands"
	"unistay/internal/usecase/queries"
)

type WishlistHandler struct {
	wishlistCommands commands.WishlistCommands
	wishlistQueries  queries.WishlistQueries
}

func NewWishlistHandler(wishlistCommands commands.WishlistCommands, wishlistQueries queries.WishlistQueries) *WishlistHandler {
	return &WishlistHandler{
		wishlistCommands: wishlistCommands,
		wishlistQueries:  wishlistQueries,
	}
}

// @Summary Save property
// @Description Add a listing to the current user's wishlist; saving twice is a no-op
// @Tags wishlist
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /wishlist/{id} [put]
func (h *WishlistHandler) SaveProperty(c *gin.Context) {
	h.wishlistAction(c, h.wishlistCommands.SaveProperty)
}

// @Summary Unsave property
// @Description Remove a listing from the current user's wishlist
// @Tags wishlist
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /wishlist/{id} [delete]
func (h *WishlistHandler) UnsaveProperty(c *gin.Context) {
	h.wishlistAction(c, h.wishlistCommands.UnsaveProperty)
}

// @Summary List wishlist
// @Description All listings the current user has saved, most recent first
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.WishlistItemView
// @Failure 401 {object} map[string]string
// @Router /wishlist [get]
func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.wishlistQueries.ListWishlist(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *WishlistHandler) wishlistAction(
	c *gin.Context,
	action func(ctx context.Context, userID, propertyID uuid.UUID) error,
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	if err := action(c.Request.Context(), userID, propertyID); err != nil {
		switch {
		case errors.Is(err, commands.ErrPropertyNotFoundWrite), errors.Is(err, commands.ErrWishlistItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
