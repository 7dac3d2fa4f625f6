package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/WorkshopSystems01/workshop-tracker/internal/cache"
	"github.com/WorkshopSystems01/workshop-tracker/internal/domain/workorder"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httpresp"
	"github.com/WorkshopSystems01/workshop-tracker/internal/middleware"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
	"github.com/WorkshopSystems01/workshop-tracker/internal/timezone"
)

const dashboardTTL = 60 * time.Second

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDashboardHandler(db *gorm.DB, c *cache.Cache) *DashboardHandler {
	return &DashboardHandler{db: db, cache: c}
}

type DashboardSummary struct {
	Customers      int64 `json:"customers"`
	OpenOrders     int64 `json:"open_orders"`
	DraftInvoices  int64 `json:"draft_invoices"`
	IssuedToday    int64 `json:"issued_today"`
	CompletedToday int64 `json:"completed_today"`
}

// Summary aggregates branch counts, cached for a short window so the
// dashboard does not hammer the database on every refresh.
func (h *DashboardHandler) Summary(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)
	ctx := c.Request.Context()

	key := fmt.Sprintf("dashboard:%d", branchID)

	var summary DashboardSummary
	hit, err := h.cache.GetJSON(ctx, key, &summary)
	if err != nil {
		log.Warn().Err(err).Msg("dashboard cache read failed")
	}
	if hit {
		httpresp.OK(c, summary)
		return
	}

	var branch models.Branch
	if err := h.db.First(&branch, branchID).Error; err != nil {
		httperr.Internal(c, "branch_not_found", "Branch not found.")
		return
	}

	now := timezone.NowIn(branch.Timezone)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	h.db.Model(&models.Customer{}).
		Where("branch_id = ? AND is_temporary = false", branchID).
		Count(&summary.Customers)

	h.db.Model(&models.Order{}).
		Where(
			"branch_id = ? AND status IN ?",
			branchID,
			[]string{string(workorder.StatusCreated), string(workorder.StatusInProgress)},
		).
		Count(&summary.OpenOrders)

	h.db.Model(&models.Invoice{}).
		Where("branch_id = ? AND status = ?", branchID, models.InvoiceStatusDraft).
		Count(&summary.DraftInvoices)

	h.db.Model(&models.Invoice{}).
		Where(
			"branch_id = ? AND status = ? AND updated_at >= ?",
			branchID, models.InvoiceStatusIssued, dayStart,
		).
		Count(&summary.IssuedToday)

	h.db.Model(&models.Order{}).
		Where(
			"branch_id = ? AND status = ? AND completed_at >= ?",
			branchID, string(workorder.StatusCompleted), dayStart,
		).
		Count(&summary.CompletedToday)

	if err := h.cache.SetJSON(ctx, key, summary, dashboardTTL); err != nil {
		log.Warn().Err(err).Msg("dashboard cache write failed")
	}

	httpresp.OK(c, summary)
}
