package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/WorkshopSystems01/workshop-tracker/internal/audit"
	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/linkage"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httpresp"
	"github.com/WorkshopSystems01/workshop-tracker/internal/identity"
	"github.com/WorkshopSystems01/workshop-tracker/internal/middleware"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
	uclinkage "github.com/WorkshopSystems01/workshop-tracker/internal/usecase/linkage"
)

// ======================================================
// HANDLER
// ======================================================

type CustomerHandler struct {
	db    *gorm.DB
	gate  *uclinkage.RegistrationGate
	audit *audit.Dispatcher
}

func NewCustomerHandler(
	db *gorm.DB,
	gate *uclinkage.RegistrationGate,
	auditDispatcher *audit.Dispatcher,
) *CustomerHandler {
	return &CustomerHandler{
		db:    db,
		gate:  gate,
		audit: auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CustomerIdentityRequest struct {
	// BranchID defaults to the token branch; a different value is
	// answered as access denied.
	BranchID uint `json:"branch_id"`

	FullName         string `json:"full_name" binding:"required"`
	Phone            string `json:"phone"`
	CustomerType     string `json:"customer_type"`
	OrganizationName string `json:"organization_name"`
	TaxNumber        string `json:"tax_number"`
}

type CreateCustomerRequest struct {
	CustomerIdentityRequest

	Email   string `json:"email"`
	Address string `json:"address"`
}

// ======================================================
// LIST / SEARCH
// ======================================================

// List returns the branch's real customers. Temporary plate
// placeholders never show up here.
func (h *CustomerHandler) List(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	q := h.db.
		Model(&models.Customer{}).
		Where("branch_id = ? AND is_temporary = false", branchID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"name_normalized LIKE ? OR phone_normalized LIKE ? OR LOWER(organization_name) LIKE ?",
			like, identity.NormalizePhone(search)+"%", like,
		)
	}

	var customers []models.Customer
	if err := q.Order("full_name ASC").Limit(200).Find(&customers).Error; err != nil {
		httperr.Internal(c, "customer_list_failed", "Could not list customers.")
		return
	}

	httpresp.List(c, customers)
}

// ======================================================
// CHECK DUPLICATE (registration step 1)
// ======================================================

func (h *CustomerHandler) CheckDuplicate(c *gin.Context) {
	userBranchID := c.MustGet(middleware.ContextBranchID).(uint)

	var req CustomerIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	res, err := h.runGate(c, userBranchID, req)
	if err != nil {
		httperr.Internal(c, "duplicate_check_failed", "Could not check for duplicates.")
		return
	}
	if res == nil {
		return // denial already written
	}

	if res.Found {
		c.JSON(http.StatusOK, gin.H{
			"found":        true,
			"customer_id":  res.Customer.ID,
			"redirect_url": res.RedirectURL,
			"message":      res.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": false})
}

// ======================================================
// CREATE (gated)
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	userBranchID := c.MustGet(middleware.ContextBranchID).(uint)

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	res, err := h.runGate(c, userBranchID, req.CustomerIdentityRequest)
	if err != nil {
		httperr.Internal(c, "duplicate_check_failed", "Could not check for duplicates.")
		return
	}
	if res == nil {
		return
	}

	// An existing match never hard-fails creation; the caller is sent
	// to the existing profile instead.
	if res.Found {
		c.JSON(http.StatusOK, gin.H{
			"found":        true,
			"customer_id":  res.Customer.ID,
			"redirect_url": res.RedirectURL,
			"message":      res.Message,
		})
		return
	}

	customerType := req.CustomerType
	if customerType != models.CustomerTypeOrganization {
		customerType = models.CustomerTypeIndividual
	}

	customer := models.Customer{
		BranchID:            userBranchID,
		FullName:            strings.TrimSpace(req.FullName),
		NameNormalized:      identity.NormalizeName(req.FullName),
		Phone:               req.Phone,
		PhoneNormalized:     identity.NormalizePhone(req.Phone),
		CustomerType:        customerType,
		OrganizationName:    req.OrganizationName,
		TaxNumber:           req.TaxNumber,
		TaxNumberNormalized: identity.NormalizeTaxNumber(req.TaxNumber),
		Email:               req.Email,
		Address:             req.Address,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Could not create the customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BranchID: userBranchID,
		UserID:   &userID,
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"found":    false,
		"customer": customer,
	})
}

// runGate executes the registration gate and writes the denial
// response itself; a nil result means the request is already answered.
func (h *CustomerHandler) runGate(
	c *gin.Context,
	userBranchID uint,
	req CustomerIdentityRequest,
) (*uclinkage.GateResult, error) {

	targetBranch := req.BranchID
	if targetBranch == 0 {
		targetBranch = userBranchID
	}

	res, err := h.gate.Execute(c.Request.Context(), userBranchID, uclinkage.FindDuplicateInput{
		BranchID:         targetBranch,
		FullName:         req.FullName,
		Phone:            req.Phone,
		OrganizationName: req.OrganizationName,
		TaxNumber:        req.TaxNumber,
		CustomerType:     req.CustomerType,
	})
	if err != nil {
		return nil, err
	}

	if res.State == domain.StateAccessDenied {
		httperr.Forbidden(c, "access_denied", res.Message)
		return nil, nil
	}

	return res, nil
}
