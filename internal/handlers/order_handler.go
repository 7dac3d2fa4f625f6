package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/WorkshopSystems01/workshop-tracker/internal/dto"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httpresp"
	"github.com/WorkshopSystems01/workshop-tracker/internal/middleware"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
	uclinkage "github.com/WorkshopSystems01/workshop-tracker/internal/usecase/linkage"
	ucworkorder "github.com/WorkshopSystems01/workshop-tracker/internal/usecase/workorder"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	db *gorm.DB

	startOrder    *uclinkage.StartOrder
	resolvePlate  *uclinkage.ResolvePlate
	searchStarted *uclinkage.SearchStartedOrders

	completeOrder *ucworkorder.CompleteOrder
	cancelOrder   *ucworkorder.CancelOrder
	listByDate    *ucworkorder.ListOrdersByDate
	orderMetrics  *ucworkorder.OrderMetrics
}

func NewOrderHandler(
	db *gorm.DB,
	startOrder *uclinkage.StartOrder,
	resolvePlate *uclinkage.ResolvePlate,
	searchStarted *uclinkage.SearchStartedOrders,
	completeOrder *ucworkorder.CompleteOrder,
	cancelOrder *ucworkorder.CancelOrder,
	listByDate *ucworkorder.ListOrdersByDate,
	orderMetrics *ucworkorder.OrderMetrics,
) *OrderHandler {
	return &OrderHandler{
		db:            db,
		startOrder:    startOrder,
		resolvePlate:  resolvePlate,
		searchStarted: searchStarted,
		completeOrder: completeOrder,
		cancelOrder:   cancelOrder,
		listByDate:    listByDate,
		orderMetrics:  orderMetrics,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StartOrderRequest struct {
	CustomerID uint   `json:"customer_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`

	PlateNumber  string `json:"plate_number"`
	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`

	Type                 string `json:"type"`
	Description          string `json:"description"`
	EstimatedDurationMin int    `json:"estimated_duration_min"`
}

type CheckPlateRequest struct {
	PlateNumber string `json:"plate_number" binding:"required"`
}

// ======================================================
// START
// ======================================================

func (h *OrderHandler) Start(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	var req StartOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	order, err := h.startOrder.Execute(c.Request.Context(), uclinkage.StartOrderInput{
		BranchID:             branchID,
		UserID:               userID,
		CustomerID:           req.CustomerID,
		FullName:             req.FullName,
		Phone:                req.Phone,
		PlateNumber:          req.PlateNumber,
		VehicleMake:          req.VehicleMake,
		VehicleModel:         req.VehicleModel,
		Type:                 req.Type,
		Description:          req.Description,
		EstimatedDurationMin: req.EstimatedDurationMin,
	})
	if err != nil {
		if httperr.IsBusiness(err, "customer_or_plate_required") {
			httperr.BadRequest(c, "customer_or_plate_required", "Provide a customer, identity details or a plate number.")
			return
		}
		if httperr.IsBusiness(err, "customer_not_found") {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_start_order", "Could not start the order.")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ======================================================
// CHECK PLATE
// ======================================================

func (h *OrderHandler) CheckPlate(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	var req CheckPlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	match, err := h.resolvePlate.Execute(c.Request.Context(), branchID, req.PlateNumber)
	if err != nil {
		httperr.Internal(c, "plate_check_failed", "Could not check the plate.")
		return
	}

	if match == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":    true,
		"customer": match.Customer,
		"vehicle":  match.Vehicle,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *OrderHandler) ListByDate(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	var branch models.Branch
	if err := h.db.First(&branch, branchID).Error; err != nil {
		httperr.Internal(c, "branch_not_found", "Branch not found.")
		return
	}

	orders, err := h.listByDate.Execute(c.Request.Context(), branchID, dateStr, branch.Timezone)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "order_list_failed", "Could not list orders.")
		return
	}

	httpresp.List(c, toOrderList(orders))
}

func (h *OrderHandler) SearchStarted(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	orders, err := h.searchStarted.Execute(c.Request.Context(), branchID, c.Query("plate"))
	if err != nil {
		httperr.Internal(c, "order_search_failed", "Could not search orders.")
		return
	}

	httpresp.List(c, toOrderList(orders))
}

func toOrderList(orders []models.Order) []dto.OrderListDTO {
	out := make([]dto.OrderListDTO, 0, len(orders))
	for _, o := range orders {
		item := dto.OrderListDTO{
			ID:           o.ID,
			OrderNumber:  o.Number(),
			Type:         o.Type,
			Status:       o.Status,
			CustomerName: o.Customer.FullName,
			StartedAt:    o.StartedAt,
			CompletedAt:  o.CompletedAt,
		}
		if o.Vehicle != nil {
			item.Plate = o.Vehicle.Plate
		}
		out = append(out, item)
	}
	return out
}

// ======================================================
// COMPLETE / CANCEL
// ======================================================

func (h *OrderHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.completeOrder.Execute(c.Request.Context(), branchID, userID, orderID)
	if err != nil {
		writeOrderLifecycleError(c, err)
		return
	}

	httpresp.OK(c, order)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.cancelOrder.Execute(c.Request.Context(), branchID, userID, orderID)
	if err != nil {
		writeOrderLifecycleError(c, err)
		return
	}

	httpresp.OK(c, order)
}

// ======================================================
// METRICS
// ======================================================

func (h *OrderHandler) Metrics(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	metrics, err := h.orderMetrics.Execute(c.Request.Context(), branchID, orderID)
	if err != nil {
		if httperr.IsBusiness(err, "order_not_found") {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		httperr.Internal(c, "order_metrics_failed", "Could not compute order metrics.")
		return
	}

	httpresp.OK(c, metrics)
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

func writeOrderLifecycleError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "order_not_found"):
		httperr.NotFound(c, "order_not_found", "Order not found.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "The order cannot change to that state.")
	default:
		httperr.Internal(c, "order_update_failed", "Could not update the order.")
	}
}
