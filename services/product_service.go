package services

import (
	"context"
	"fmt"
	"minitienda_server/database"
	"minitienda_server/lib"
	"minitienda_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StorePageSize is the page size of the public product listing.
const StorePageSize = 12

// categoryResolver is the slice of CatalogService the product filter
// pipeline needs.
type categoryResolver interface {
	GetCategoryBySlug(ctx context.Context, slug string) (*tables.Category, error)
}

type ProductService struct {
	logger         *gecho.Logger
	db             *database.DB
	catalogService categoryResolver
	cacheService   *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, catalogService *CatalogService, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:         logger,
		db:             db,
		catalogService: catalogService,
		cacheService:   cacheService,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	IsActive     *bool  `json:"is_active,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`
	SearchTerm   string `json:"search_term,omitempty"` // Search in name, slug, description

	// Sorting
	SortBy        string `json:"sort_by"`
	SortDirection string `json:"sort_direction"` // ASC or DESC
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
}

// GetProducts retrieves products with filtering, pagination, and sorting.
// This is the shared read path behind both the admin listing and the
// public store listing.
func (ps *ProductService) GetProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	if err := ps.validateOptions(opts); err != nil {
		ps.logger.Error("Invalid product list options", gecho.Field("error", err))
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	query := database.Query[tables.Product](ps.db).Relation("Category")

	// The filter pipeline applies in a fixed order: active first, then
	// category. An inactive product never surfaces through a category
	// filter.
	query, empty, err := ps.applyFilters(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	if empty {
		// Unknown category slug: empty result set, not an error
		return &ProductListResult{
			Products: []tables.Product{},
			Pagination: database.Pagination{
				Page:     opts.Page,
				PageSize: opts.PageSize,
				Total:    0,
			},
		}, nil
	}

	query = ps.applySorting(query, opts)

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	ps.logger.Debug("Products fetched",
		gecho.Field("count", len(result.Data)),
		gecho.Field("total", result.Pagination.Total),
		gecho.Field("duration", time.Since(startTime)),
	)

	return &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
	}, nil
}

// GetActiveProducts returns the public listing page: active products only,
// optionally restricted to a category slug, 12 per page, cached.
func (ps *ProductService) GetActiveProducts(ctx context.Context, categorySlug string, page int) (*ProductListResult, error) {
	cached, hit, err := ps.cacheService.GetProductListing(categorySlug, page)
	if err != nil {
		ps.logger.Warn("Failed to get product listing from cache", gecho.Field("error", err))
	} else if hit {
		return cached, nil
	}

	isActive := true
	opts := &ProductListOptions{
		Page:         page,
		PageSize:     StorePageSize,
		IsActive:     &isActive,
		CategorySlug: categorySlug,
	}

	result, err := ps.GetProducts(ctx, opts)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := ps.cacheService.SetProductListing(categorySlug, page, result); err != nil {
			ps.logger.Warn("Failed to cache product listing", gecho.Field("error", err))
		}
	}()

	return result, nil
}

// GetProductsByCategorySlug returns the active products of one category,
// paginated. A slug that matches no category yields an empty page.
func (ps *ProductService) GetProductsByCategorySlug(ctx context.Context, categorySlug string, page int) (*ProductListResult, error) {
	return ps.GetActiveProducts(ctx, categorySlug, page)
}

// GetActiveProductBySlug looks up a single product by slug, restricted to
// active products. Returns (nil, nil) when no active product matches, even
// if an inactive record with that slug exists.
func (ps *ProductService) GetActiveProductBySlug(ctx context.Context, slug string) (*tables.Product, error) {
	cached, hit, err := ps.cacheService.GetProductBySlug(slug)
	if err != nil {
		ps.logger.Warn("Failed to get product from cache", gecho.Field("error", err), gecho.Field("slug", slug))
	} else if hit {
		return cached, nil
	}

	product, err := database.Query[tables.Product](ps.db).
		Where("is_active", true).
		Where("slug", slug).
		Relation("Category").
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by slug: %w", err)
	}

	if product == nil {
		return nil, nil
	}

	go func() {
		if err := ps.cacheService.SetProductBySlug(product); err != nil {
			ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("slug", slug))
		}
	}()

	return product, nil
}

// CreateProduct inserts a new product. An empty slug is derived from the
// name; a duplicate slug surfaces as lib.ErrConflict.
func (ps *ProductService) CreateProduct(ctx context.Context, product *tables.Product) (*tables.Product, error) {
	startTime := time.Now()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.Slug == "" {
		product.Slug = lib.Slugify(product.Name)
	}
	if product.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative")
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := database.Query[tables.Product](ps.db).Insert(ctx, product)
	if err != nil {
		ps.logger.Error("Failed to create product",
			gecho.Field("error", err),
			gecho.Field("product_name", product.Name),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, lib.MapPgWriteError(err)
	}

	ps.invalidateCatalog()

	ps.logger.Info("Product created successfully",
		gecho.Field("id", created.ID),
		gecho.Field("slug", created.Slug),
		gecho.Field("duration", time.Since(startTime)),
	)
	return created, nil
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Slug        *string          `json:"slug,omitempty" validate:"omitempty,max=220"`
	CategoryID  *string          `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// UpdateProduct applies a partial update and refreshes updated_at.
func (ps *ProductService) UpdateProduct(ctx context.Context, productID uuid.UUID, req *UpdateProductRequest) error {
	updateData := make(map[string]any)

	if req.Name != nil {
		updateData["name"] = *req.Name
	}
	if req.Slug != nil {
		updateData["slug"] = *req.Slug
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return fmt.Errorf("invalid category id: %w", err)
		}
		updateData["category_id"] = categoryID
	}
	if req.Description != nil {
		updateData["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return fmt.Errorf("price must not be negative")
		}
		updateData["price"] = *req.Price
	}
	if req.IsActive != nil {
		updateData["is_active"] = *req.IsActive
	}

	if len(updateData) == 0 {
		return nil
	}

	// updated_at auto-refreshes on every save
	updateData["updated_at"] = time.Now()

	affected, err := database.Query[tables.Product](ps.db).
		Where("id", productID).
		Update(ctx, updateData)
	if err != nil {
		return lib.MapPgWriteError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	ps.invalidateCatalog()
	return nil
}

// DeleteProduct deletes a product. A product still referenced by order
// items is protected: the delete fails with lib.ErrProtected.
func (ps *ProductService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	affected, err := database.Query[tables.Product](ps.db).
		Where("id", productID).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	ps.invalidateCatalog()
	return nil
}

// CountProducts returns the count of products matching the filters
func (ps *ProductService) CountProducts(ctx context.Context, opts *ProductListOptions) (int, error) {
	if opts == nil {
		opts = &ProductListOptions{}
	}

	query := database.Query[tables.Product](ps.db)
	query, empty, err := ps.applyFilters(ctx, query, opts)
	if err != nil {
		return 0, err
	}
	if empty {
		return 0, nil
	}

	count, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

func (ps *ProductService) applyDefaultOptions(opts *ProductListOptions) {
	opts.Page, opts.PageSize = database.NormalizePage(opts.Page, opts.PageSize, StorePageSize)
	if opts.SortBy == "" {
		opts.SortBy = "name"
	}
	if opts.SortDirection == "" {
		opts.SortDirection = "ASC"
	}
}

func (ps *ProductService) validateOptions(opts *ProductListOptions) error {
	validSortFields := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"price":      true,
		"name":       true,
		"slug":       true,
	}
	if !validSortFields[opts.SortBy] {
		return fmt.Errorf("invalid sort field: %s", opts.SortBy)
	}

	if opts.SortDirection != "ASC" && opts.SortDirection != "DESC" {
		return fmt.Errorf("invalid sort direction: %s (must be ASC or DESC)", opts.SortDirection)
	}

	return nil
}

// applyFilters applies the filter pipeline in its fixed order. The second
// return value is true when the category slug matched no category, which
// short-circuits into an empty result.
func (ps *ProductService) applyFilters(ctx context.Context, query *database.QueryBuilder[tables.Product], opts *ProductListOptions) (*database.QueryBuilder[tables.Product], bool, error) {
	// 1. Active flag
	if opts.IsActive != nil {
		query = query.Where("is_active", *opts.IsActive)
	}

	// 2. Category slug
	if opts.CategorySlug != "" {
		category, err := ps.catalogService.GetCategoryBySlug(ctx, opts.CategorySlug)
		if err != nil {
			return nil, false, err
		}
		if category == nil {
			return nil, true, nil
		}
		query = query.Where("category_id", category.ID)
	}

	// 3. Search over name, slug, description
	if opts.SearchTerm != "" {
		searchPattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw(
			"(p.name ILIKE ? OR p.slug ILIKE ? OR p.description ILIKE ?)",
			searchPattern, searchPattern, searchPattern,
		)
	}

	return query, false, nil
}

func (ps *ProductService) applySorting(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	direction := database.ASC
	if opts.SortDirection == "DESC" {
		direction = database.DESC
	}

	query = query.OrderBy(opts.SortBy, direction)

	// Secondary sort by ID for consistent ordering
	return query.OrderBy("id", database.ASC)
}

func (ps *ProductService) invalidateCatalog() {
	go func() {
		if err := ps.cacheService.InvalidateCatalogCaches(); err != nil {
			ps.logger.Warn("Failed to invalidate catalog caches", gecho.Field("error", err))
		}
	}()
}
