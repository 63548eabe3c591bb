package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CustomerUC *usecase.CustomerUseCase
	StoreUC    *usecase.StoreUseCase
	AccountUC  *usecase.AccountUseCase
	SupplierUC *usecase.SupplierUseCase
	RegisterUC *usecase.RegisterUseCase
	SourceUC   *usecase.SourceUseCase
	DocumentUC *usecase.DocumentUseCase
	ReceiptUC  *usecase.ReceiptUseCase
	SearchUC   *usecase.SearchUseCase
	ShiftUC    *usecase.ShiftUseCase
	StatsUC    *usecase.StatsUseCase
	AuthUC     *usecase.AuthUseCase
	JWTSecret  string
	Defaults   config.AuthConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Toda la API acepta token opcional: sin Bearer se usa la identidad por defecto.
	app.Use(AuthMiddleware(deps.JWTSecret, deps.Defaults))

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	auth := app.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/status", authHandler.Status)

	// Datos por inquilino
	data := app.Group("/data/:companyId")

	catalogHandler := NewCatalogHandler(deps.ProductUC, deps.StatsUC)
	// Las rutas fijas van antes que /catalog/:productId.
	data.Get("/catalog/categories", catalogHandler.Categories)
	data.Get("/catalog/filtered", catalogHandler.Filtered)
	data.Get("/catalog", catalogHandler.List)
	data.Post("/catalog", catalogHandler.Create)
	data.Get("/catalog/:productId", catalogHandler.Get)
	data.Put("/catalog/:productId", catalogHandler.Update)
	data.Get("/stock-stats", catalogHandler.StockStats)

	clientHandler := NewClientHandler(deps.CustomerUC)
	data.Get("/clients", clientHandler.List)
	data.Post("/clients", clientHandler.Create)
	data.Get("/clients/:clientId", clientHandler.Get)
	data.Put("/clients/:clientId", clientHandler.Update)

	storeHandler := NewStoreHandler(deps.StoreUC)
	data.Get("/stores", storeHandler.List)
	data.Post("/stores", storeHandler.Create)
	data.Put("/stores/:storeId", storeHandler.Update)

	refHandler := NewReferenceHandler(deps.AccountUC, deps.SupplierUC, deps.RegisterUC, deps.SourceUC)
	data.Get("/accounts", refHandler.ListAccounts)
	data.Post("/accounts", refHandler.CreateAccount)
	data.Put("/accounts/:accountId", refHandler.UpdateAccount)
	data.Get("/suppliers", refHandler.ListSuppliers)
	data.Post("/suppliers", refHandler.CreateSupplier)
	data.Put("/suppliers/:supplierId", refHandler.UpdateSupplier)
	data.Get("/registers", refHandler.ListRegisters)
	data.Post("/registers", refHandler.CreateRegister)
	data.Put("/registers/:registerId", refHandler.UpdateRegister)
	// El frontend legado usa el singular para crear cajas.
	data.Post("/register", refHandler.CreateRegister)
	data.Get("/sources", refHandler.ListSources)
	data.Post("/sources", refHandler.CreateSource)

	// Documentos
	docHandler := NewDocumentHandler(deps.DocumentUC, deps.ReceiptUC)
	docs := app.Group("/docs/:companyId")
	docs.Get("/", docHandler.List)
	docs.Post("/", docHandler.Create)
	docs.Get("/:docId", docHandler.Get)
	docs.Get("/:docId/pdf", docHandler.ReceiptPDF)

	// Turnos de caja
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shift := app.Group("/shift/:companyId")
	shift.Get("/", shiftHandler.OpenShift)
	shift.Get("/current", shiftHandler.Current)
	shift.Get("/history", shiftHandler.History)
	shift.Post("/open", shiftHandler.Open)
	shift.Post("/close", shiftHandler.Close)

	// Búsquedas con paginación en la ruta
	searchHandler := NewSearchHandler(deps.SearchUC, deps.ProductUC, deps.CustomerUC)
	search := app.Group("/search")
	search.Post("/docs/:companyId/:offset/:limit", searchHandler.Docs)
	search.Post("/money/:companyId/:offset/:limit", searchHandler.Money)
	search.Post("/catalog/:companyId/:offset/:limit", searchHandler.Catalog)
	search.Post("/clients/:companyId/:offset/:limit", searchHandler.Clients)

	// Pasarela legada
	proxyHandler := NewProxyHandler(
		deps.ProductUC, deps.CustomerUC, deps.StoreUC,
		deps.AccountUC, deps.SupplierUC, deps.RegisterUC, deps.SourceUC,
		deps.DocumentUC, deps.SearchUC,
	)
	app.All("/proxy", proxyHandler.Handle)
}
