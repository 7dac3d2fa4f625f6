package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/WorkshopSystems01/workshop-tracker/internal/dto"
	"github.com/WorkshopSystems01/workshop-tracker/internal/extraction"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httpresp"
	"github.com/WorkshopSystems01/workshop-tracker/internal/middleware"
	ucinvoice "github.com/WorkshopSystems01/workshop-tracker/internal/usecase/invoice"
)

const maxDocumentBytes = 10 << 20

var allowedDocumentExts = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// ======================================================
// HANDLER
// ======================================================

type InvoiceHandler struct {
	upload         *ucinvoice.UploadDocument
	fromExtraction *ucinvoice.CreateFromExtraction
	finalize       *ucinvoice.FinalizeInvoice
	cancel         *ucinvoice.CancelInvoice
	recent         *ucinvoice.ListRecentInvoices
	items          *ucinvoice.ManageItems
}

func NewInvoiceHandler(
	upload *ucinvoice.UploadDocument,
	fromExtraction *ucinvoice.CreateFromExtraction,
	finalize *ucinvoice.FinalizeInvoice,
	cancel *ucinvoice.CancelInvoice,
	recent *ucinvoice.ListRecentInvoices,
	items *ucinvoice.ManageItems,
) *InvoiceHandler {
	return &InvoiceHandler{
		upload:         upload,
		fromExtraction: fromExtraction,
		finalize:       finalize,
		cancel:         cancel,
		recent:         recent,
		items:          items,
	}
}

// ======================================================
// UPLOAD
// ======================================================

// Upload stores the invoice document and, when the request carries the
// document's text layer, runs the extractor over it. Without a text
// layer the caller keys the invoice in manually.
func (h *InvoiceHandler) Upload(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	file, err := c.FormFile("document")
	if err != nil {
		httperr.BadRequest(c, "missing_document", "A document file is required.")
		return
	}

	if file.Size > maxDocumentBytes {
		httperr.BadRequest(c, "document_too_large", "Documents are limited to 10MB.")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedDocumentExts[ext] {
		httperr.BadRequest(c, "unsupported_document_type", "Only PDF and image documents are accepted.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "document_read_failed", "Could not read the uploaded document.")
		return
	}
	defer src.Close()

	textLayer := c.PostForm("text")

	res, err := h.upload.Execute(
		c.Request.Context(),
		branchID,
		userID,
		file.Filename,
		file.Header.Get("Content-Type"),
		src,
		textLayer,
	)
	if err != nil {
		if httperr.IsBusiness(err, "uploads_disabled") {
			httperr.BadRequest(c, "uploads_disabled", "Document storage is not configured.")
			return
		}
		httperr.Internal(c, "document_upload_failed", "Could not store the document.")
		return
	}

	if !res.Extracted {
		c.JSON(http.StatusOK, gin.H{
			"success":      false,
			"error":        "extraction_unavailable",
			"document_key": res.DocumentKey,
			"message":      "The document has no readable text layer. Enter the invoice manually.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"document_key": res.DocumentKey,
		"extraction":   res.Extraction,
	})
}

// ======================================================
// CREATE FROM EXTRACTION
// ======================================================

type CreateFromExtractionRequest struct {
	OrderID     uint                  `json:"order_id"`
	DocumentKey string                `json:"document_key"`
	Header      extraction.Header     `json:"header" binding:"required"`
	Items       []extraction.LineItem `json:"items"`
	TaxRate     decimal.Decimal       `json:"tax_rate"`
}

func (h *InvoiceHandler) CreateFromExtraction(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	var req CreateFromExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	if strings.TrimSpace(req.Header.CustomerName) == "" {
		httperr.BadRequest(c, "missing_customer_name", "The extracted data has no customer name.")
		return
	}

	res, err := h.fromExtraction.Execute(c.Request.Context(), ucinvoice.CreateFromExtractionInput{
		BranchID:    branchID,
		UserID:      userID,
		OrderID:     req.OrderID,
		DocumentKey: req.DocumentKey,
		Header:      req.Header,
		Items:       req.Items,
		TaxRate:     req.TaxRate,
	})
	if err != nil {
		if httperr.IsBusiness(err, "order_not_found") {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		httperr.Internal(c, "invoice_create_failed", "Could not create the invoice.")
		return
	}

	if res.Relinked {
		c.JSON(http.StatusOK, gin.H{
			"relinked":     true,
			"customer_id":  res.CustomerID,
			"redirect_url": res.RedirectURL,
			"message":      res.Message,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"relinked":    false,
		"customer_id": res.CustomerID,
		"invoice":     res.Invoice,
	})
}

// ======================================================
// RECENT
// ======================================================

func (h *InvoiceHandler) Recent(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	invoices, err := h.recent.Execute(c.Request.Context(), branchID, limit)
	if err != nil {
		httperr.Internal(c, "invoice_list_failed", "Could not list invoices.")
		return
	}

	out := make([]dto.InvoiceListDTO, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.InvoiceListDTO{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			Status:        inv.Status,
			CustomerName:  inv.Customer.FullName,
			Reference:     inv.Reference,
			Total:         inv.Total.StringFixed(2),
			CreatedAt:     inv.CreatedAt,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *InvoiceHandler) Finalize(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.finalize.Execute(c.Request.Context(), branchID, userID, invoiceID)
	if err != nil {
		writeInvoiceLifecycleError(c, err)
		return
	}

	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.cancel.Execute(c.Request.Context(), branchID, userID, invoiceID)
	if err != nil {
		writeInvoiceLifecycleError(c, err)
		return
	}

	httpresp.OK(c, inv)
}

// ======================================================
// LINE ITEMS
// ======================================================

type AddItemRequest struct {
	ItemCode    string          `json:"item_code"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (h *InvoiceHandler) AddItem(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	inv, err := h.items.AddItem(c.Request.Context(), ucinvoice.AddItemInput{
		BranchID:    branchID,
		UserID:      userID,
		InvoiceID:   invoiceID,
		ItemCode:    req.ItemCode,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		writeInvoiceLifecycleError(c, err)
		return
	}

	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) DeleteItem(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemID")
	if !ok {
		return
	}

	inv, err := h.items.DeleteItem(c.Request.Context(), branchID, userID, invoiceID, itemID)
	if err != nil {
		writeInvoiceLifecycleError(c, err)
		return
	}

	httpresp.OK(c, inv)
}

// ======================================================
// HELPERS
// ======================================================

func writeInvoiceLifecycleError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invoice_not_found"):
		httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "The invoice cannot change to that state.")
	case httperr.IsBusiness(err, "empty_invoice"):
		httperr.BadRequest(c, "empty_invoice", "Add at least one line item before issuing.")
	case httperr.IsBusiness(err, "invoice_not_draft"):
		httperr.BadRequest(c, "invoice_not_draft", "Only draft invoices can be edited.")
	case httperr.IsBusiness(err, "description_required"):
		httperr.BadRequest(c, "description_required", "A line item needs a description.")
	default:
		httperr.Internal(c, "invoice_update_failed", "Could not update the invoice.")
	}
}
