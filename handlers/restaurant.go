package handlers

import (
	"net/http"
	"strconv"

	"restodir-backend/services"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	Directory *services.DirectoryService
}

// Search handles GET /search. Absent query parameters impose no constraint;
// isKosher is tri-state, so only an explicit true/false adds the predicate.
func (h *RestaurantHandler) Search(c *gin.Context) {
	filter := services.SearchFilter{
		Name:        c.Query("name"),
		Address:     c.Query("address"),
		CuisineType: c.Query("cuisine_type"),
	}

	if kosher := c.Query("isKosher"); kosher != "" {
		value := kosher == "true"
		filter.IsKosher = &value
	}
	filter.CurrentlyOpen = c.Query("currentlyOpen") == "true"

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.Directory.Search(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Records,
		"pagination": result.Pagination,
	})
}

// GetOpenNow handles GET /open.
func (h *RestaurantHandler) GetOpenNow(c *gin.Context) {
	restaurants, err := h.Directory.ListOpenNow()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, restaurants)
}

// GetRestaurant handles GET /restaurants/:id.
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid restaurant id")
		return
	}

	restaurant, err := h.Directory.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, restaurant)
}
