package services

import (
	"minitienda_server/database"
	"minitienda_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService    *CacheService
	HealthService   *HealthService
	CatalogService  *CatalogService
	ProductService  *ProductService
	CustomerService *CustomerService
	OrderService    *OrderService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	catalogService := NewCatalogService(logger, db, cacheService)
	productService := NewProductService(logger, db, catalogService, cacheService)
	customerService := NewCustomerService(logger, db)
	orderService := NewOrderService(logger, db)

	return &ServiceManager{
		CacheService:    cacheService,
		HealthService:   healthService,
		CatalogService:  catalogService,
		ProductService:  productService,
		CustomerService: customerService,
		OrderService:    orderService,
	}
}
