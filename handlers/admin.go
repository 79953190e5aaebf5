package handlers

import (
	"net/http"
	"os"
	"strconv"

	"restodir-backend/models"
	"restodir-backend/services"
	"restodir-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminHandler struct {
	DB        *gorm.DB
	Admin     *services.AdminService
	Directory *services.DirectoryService
}

// Login handles POST /admin/login. The directory has a single shared admin
// credential: the password is checked against the seeded admin account's
// bcrypt hash and a role-bearing token is issued on success.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, utils.SanitizeValidationError(err))
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@restodir.local"
	}

	var admin models.User
	if err := h.DB.Where("email = ? AND role = ?", adminEmail, "admin").First(&admin).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"token": token})
}

// ListRestaurants handles GET /admin/restaurants, the paginated admin view.
func (h *AdminHandler) ListRestaurants(c *gin.Context) {
	var filter services.SearchFilter
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

// GetRestaurant handles GET /admin/restaurants/:id.
func (h *AdminHandler) GetRestaurant(c *gin.Context) {
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

// CreateRestaurant handles POST /admin/restaurants.
func (h *AdminHandler) CreateRestaurant(c *gin.Context) {
	var input services.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, utils.SanitizeValidationError(err))
		return
	}

	restaurant, err := h.Admin.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, restaurant)
}

// UpdateRestaurant handles PUT /admin/restaurants/:id. Full replacement of
// the mutable fields; there are no PATCH semantics.
func (h *AdminHandler) UpdateRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid restaurant id")
		return
	}

	var input services.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, utils.SanitizeValidationError(err))
		return
	}

	restaurant, err := h.Admin.Update(uint(id), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, restaurant)
}

// DeleteRestaurant handles DELETE /admin/restaurants/:id.
func (h *AdminHandler) DeleteRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid restaurant id")
		return
	}

	if err := h.Admin.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
}

// GetAuditLogs handles GET /admin/audit-logs (last 24 hours, newest first).
func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	logs, err := h.Admin.ListAuditLogs()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, logs)
}
