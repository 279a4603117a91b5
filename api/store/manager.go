package store

import (
	"minitienda_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// StoreRoutesManager serves the public storefront: the product listing,
// category-filtered listings, product detail pages and the public create
// form. Every page payload carries the shared site context.
type StoreRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	productService *services.ProductService
}

func NewStoreRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	productService *services.ProductService,
) *StoreRoutesManager {
	return &StoreRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		productService: productService,
	}
}

func (srm *StoreRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/", srm.ProductListing)
	r.Get("/categoria/{category_slug}", srm.ProductListing)
	r.Get("/producto/{slug}", srm.ProductDetail)
	r.Post("/productos", srm.CreateProduct)
}
