package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/WorkshopSystems01/workshop-tracker/internal/audit"
	"github.com/WorkshopSystems01/workshop-tracker/internal/cache"
	"github.com/WorkshopSystems01/workshop-tracker/internal/config"
	"github.com/WorkshopSystems01/workshop-tracker/internal/handlers"
	infraRepo "github.com/WorkshopSystems01/workshop-tracker/internal/infra/repository"
	"github.com/WorkshopSystems01/workshop-tracker/internal/middleware"
	"github.com/WorkshopSystems01/workshop-tracker/internal/storage"
	ucInvoice "github.com/WorkshopSystems01/workshop-tracker/internal/usecase/invoice"
	ucLinkage "github.com/WorkshopSystems01/workshop-tracker/internal/usecase/linkage"
	ucWorkorder "github.com/WorkshopSystems01/workshop-tracker/internal/usecase/workorder"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	cacheClient *cache.Cache,
	documents *storage.DocumentStore,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	linkageRepo := infraRepo.NewLinkageGormRepository(db)
	workorderRepo := infraRepo.NewWorkorderGormRepository(db)
	invoicingRepo := infraRepo.NewInvoicingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — LINKAGE
	// ======================================================
	registrationGateUC := ucLinkage.NewRegistrationGate(linkageRepo)

	startOrderUC := ucLinkage.NewStartOrder(linkageRepo, auditDispatcher)
	resolvePlateUC := ucLinkage.NewResolvePlate(linkageRepo)
	searchStartedUC := ucLinkage.NewSearchStartedOrders(linkageRepo)

	// ======================================================
	// USE CASES — ORDERS
	// ======================================================
	completeOrderUC := ucWorkorder.NewCompleteOrder(workorderRepo, auditDispatcher)
	cancelOrderUC := ucWorkorder.NewCancelOrder(workorderRepo, auditDispatcher)
	listOrdersByDateUC := ucWorkorder.NewListOrdersByDate(workorderRepo)
	orderMetricsUC := ucWorkorder.NewOrderMetrics(workorderRepo)

	// ======================================================
	// USE CASES — INVOICES
	// ======================================================
	uploadDocumentUC := ucInvoice.NewUploadDocument(documents, auditDispatcher)
	fromExtractionUC := ucInvoice.NewCreateFromExtraction(linkageRepo, invoicingRepo, auditDispatcher)
	finalizeInvoiceUC := ucInvoice.NewFinalizeInvoice(invoicingRepo, auditDispatcher)
	cancelInvoiceUC := ucInvoice.NewCancelInvoice(invoicingRepo, auditDispatcher)
	recentInvoicesUC := ucInvoice.NewListRecentInvoices(invoicingRepo)
	manageItemsUC := ucInvoice.NewManageItems(invoicingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	branchHandler := handlers.NewBranchHandler(db)

	customerHandler := handlers.NewCustomerHandler(db, registrationGateUC, auditDispatcher)

	orderHandler := handlers.NewOrderHandler(
		db,
		startOrderUC,
		resolvePlateUC,
		searchStartedUC,
		completeOrderUC,
		cancelOrderUC,
		listOrdersByDateUC,
		orderMetricsUC,
	)

	invoiceHandler := handlers.NewInvoiceHandler(
		uploadDocumentUC,
		fromExtractionUC,
		finalizeInvoiceUC,
		cancelInvoiceUC,
		recentInvoicesUC,
		manageItemsUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(db, cacheClient)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/branch", branchHandler.GetMeBranch)
			secured.PATCH("/me/branch", branchHandler.UpdateMeBranch)

			// ------------------------------
			// CUSTOMERS
			// ------------------------------
			secured.GET("/me/customers", customerHandler.List)
			secured.POST("/me/customers", customerHandler.Create)
			secured.POST("/me/customers/check-duplicate", customerHandler.CheckDuplicate)

			// ------------------------------
			// ORDERS
			// ------------------------------
			secured.POST("/me/orders", orderHandler.Start)
			secured.POST("/me/orders/check-plate", orderHandler.CheckPlate)
			secured.GET("/me/orders", orderHandler.ListByDate)
			secured.GET("/me/orders/search-started", orderHandler.SearchStarted)
			secured.PATCH("/me/orders/:id/complete", orderHandler.Complete)
			secured.PATCH("/me/orders/:id/cancel", orderHandler.Cancel)
			secured.GET("/me/orders/:id/metrics", orderHandler.Metrics)

			// ------------------------------
			// INVOICES
			// ------------------------------
			secured.POST("/me/invoices/upload", invoiceHandler.Upload)
			secured.POST("/me/invoices/from-extraction", invoiceHandler.CreateFromExtraction)
			secured.GET("/me/invoices/recent", invoiceHandler.Recent)
			secured.POST("/me/invoices/:id/finalize", invoiceHandler.Finalize)
			secured.POST("/me/invoices/:id/cancel", invoiceHandler.Cancel)
			secured.POST("/me/invoices/:id/items", invoiceHandler.AddItem)
			secured.DELETE("/me/invoices/:id/items/:itemID", invoiceHandler.DeleteItem)

			secured.GET("/me/dashboard", dashboardHandler.Summary)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
