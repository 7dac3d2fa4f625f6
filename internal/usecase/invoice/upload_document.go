package invoice

import (
	"context"
	"io"
	"strings"

	"github.com/WorkshopSystems01/workshop-tracker/internal/audit"
	"github.com/WorkshopSystems01/workshop-tracker/internal/extraction"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/storage"
)

// ======================================================
// RESULT
// ======================================================

type UploadResult struct {
	DocumentKey string             `json:"document_key"`
	Extracted   bool               `json:"extracted"`
	Extraction  *extraction.Result `json:"extraction,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// UploadDocument stores the uploaded invoice document and parses its
// text layer. A document without a text layer is stored anyway; the
// caller falls back to manual entry.
type UploadDocument struct {
	store *storage.DocumentStore
	audit *audit.Dispatcher
}

func NewUploadDocument(
	store *storage.DocumentStore,
	audit *audit.Dispatcher,
) *UploadDocument {
	return &UploadDocument{
		store: store,
		audit: audit,
	}
}

func (uc *UploadDocument) Execute(
	ctx context.Context,
	branchID uint,
	userID uint,
	originalName string,
	contentType string,
	body io.Reader,
	textLayer string,
) (*UploadResult, error) {

	if uc.store == nil {
		return nil, httperr.ErrBusiness("uploads_disabled")
	}

	key, err := uc.store.Put(ctx, originalName, contentType, body)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "invoice_document_uploaded",
		Entity:   "invoice_document",
		Metadata: map[string]any{"document_key": key},
	})

	res := &UploadResult{DocumentKey: key}
	if strings.TrimSpace(textLayer) == "" {
		return res, nil
	}

	res.Extracted = true
	res.Extraction = extraction.Extract(textLayer)
	return res, nil
}
