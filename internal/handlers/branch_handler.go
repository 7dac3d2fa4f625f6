package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/middleware"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
	"github.com/WorkshopSystems01/workshop-tracker/internal/timezone"
)

type BranchHandler struct {
	db *gorm.DB
}

func NewBranchHandler(db *gorm.DB) *BranchHandler {
	return &BranchHandler{db: db}
}

type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (h *BranchHandler) GetMeBranch(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	var branch models.Branch
	if err := h.db.First(&branch, branchID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "branch_not_found", "Branch not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_branch", "Could not load branch data.")
		return
	}

	c.JSON(http.StatusOK, branch)
}

func (h *BranchHandler) UpdateMeBranch(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	var branch models.Branch
	if err := h.db.First(&branch, branchID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "branch_not_found", "Branch not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_branch", "Could not load branch data.")
		return
	}

	var req UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	if req.Name != nil && *req.Name != "" {
		branch.Name = *req.Name
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone identifier.")
			return
		}
		branch.Timezone = *req.Timezone
	}

	if err := h.db.Save(&branch).Error; err != nil {
		httperr.Internal(c, "failed_to_update_branch", "Could not save branch settings.")
		return
	}

	c.JSON(http.StatusOK, branch)
}
