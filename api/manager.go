package api

import (
	"minitienda_server/api/admin"
	"minitienda_server/api/health"
	"minitienda_server/api/store"
	"minitienda_server/database"
	"minitienda_server/services"
	"minitienda_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	storeRoutes  *store.StoreRoutesManager
	adminRoutes  *admin.AdminRoutesManager
	healthRoutes *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *routerManager {
	sm := services.NewServiceManager(logger, cfg, db)

	return &routerManager{
		storeRoutes:  store.NewStoreRoutesManager(logger, sm.CatalogService, sm.ProductService),
		adminRoutes:  admin.NewAdminRoutesManager(logger, sm.CatalogService, sm.ProductService, sm.CustomerService, sm.OrderService),
		healthRoutes: health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.storeRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
