package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kartikay_signage/internal/store"
)

// AdminHandler manages back-office users. All routes here sit behind the
// USER_MANAGEMENT scope.
type AdminHandler struct {
	admins *store.AdminStore
}

// Create adds a back-office user.
// URL: POST /api/admins
func (h *AdminHandler) Create(c *gin.Context) {
	var req struct {
		Email  string   `json:"email" binding:"required,email"`
		Name   string   `json:"name" binding:"required"`
		Role   string   `json:"role" binding:"required"`
		Access []string `json:"access"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON"})
		return
	}

	if !store.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid role value"})
		return
	}
	if !store.ValidAccess(req.Access) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid access value"})
		return
	}

	admin, err := h.admins.CreateAdmin(c.Request.Context(), store.Admin{
		Email:  req.Email,
		Name:   req.Name,
		Role:   req.Role,
		Access: req.Access,
	})
	if err != nil {
		log.Printf("[admins] failed to create admin %s: %v", req.Email, err)
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Error creating admin. Email might exist."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": admin, "message": "Success"})
}

// List returns all back-office users, newest first.
// URL: GET /api/admins
func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.admins.ListAdmins(c.Request.Context())
	if err != nil {
		log.Printf("[admins] failed to list admins: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching admins"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": admins, "message": "Admins fetched successfully"})
}

// Update changes role and/or access of one admin. Other fields are not
// editable after creation.
// URL: PUT /api/admins
func (h *AdminHandler) Update(c *gin.Context) {
	var req struct {
		ID     string   `json:"id" binding:"required"`
		Role   string   `json:"role"`
		Access []string `json:"access"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Admin ID is required"})
		return
	}

	if req.Role != "" && !store.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid role value"})
		return
	}
	if !store.ValidAccess(req.Access) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid access value"})
		return
	}

	admin, err := h.admins.UpdateAdmin(c.Request.Context(), req.ID, req.Role, req.Access)
	if err != nil {
		log.Printf("[admins] failed to update admin %s: %v", req.ID, err)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Error updating admin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": admin, "message": "Admin updated successfully"})
}

// Delete removes a back-office user.
// URL: DELETE /api/admins?id=<id>
func (h *AdminHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Admin ID is required"})
		return
	}

	if err := h.admins.DeleteAdmin(c.Request.Context(), id); err != nil {
		log.Printf("[admins] failed to delete admin %s: %v", id, err)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Error deleting admin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin deleted successfully"})
}
