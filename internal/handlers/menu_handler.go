package handlers

import (
	"net/http"

	"github.com/Greco-cyber/poster-dashboard/internal/dto"
	"github.com/Greco-cyber/poster-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// MenuHandler serves the vendor menu reference data.
type MenuHandler struct {
	menu services.MenuProvider
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menu services.MenuProvider) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// Categories proxies the vendor's menu category listing.
//
// Method: GET /api/menu-categories
//
// Success Response: 200 OK
//   - response: Array of categories (category_id, category_name)
//
// Error Responses:
//   - 500: POSTER_TOKEN not configured
//   - 502/504: Vendor failure
func (h *MenuHandler) Categories(c echo.Context) error {
	categories, err := h.menu.Categories(c.Request().Context())
	if err != nil {
		return SendVendorError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MenuCategoriesResponse{Response: categories})
}
