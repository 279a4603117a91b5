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
)

// CatalogService manages the category side of the catalog.
type CatalogService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCatalogService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// GetCategories returns all categories ordered by name, each annotated
// with its product count. The list is cached; a cache miss falls through
// to the database.
func (cs *CatalogService) GetCategories(ctx context.Context) ([]tables.Category, error) {
	cached, hit, err := cs.cacheService.GetCategories()
	if err != nil {
		cs.logger.Warn("Failed to get categories from cache", gecho.Field("error", err))
	} else if hit {
		return cached, nil
	}

	categories, err := database.Query[tables.Category](cs.db).
		ColumnExpr("c.*").
		ColumnExpr("(SELECT count(*) FROM products AS p WHERE p.category_id = c.id) AS product_count").
		OrderBy("name", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	go func() {
		if err := cs.cacheService.SetCategories(categories); err != nil {
			cs.logger.Warn("Failed to cache categories", gecho.Field("error", err))
		}
	}()

	return categories, nil
}

// SearchCategories returns the categories whose name or slug matches the
// term, ordered by name and annotated with product counts. Search results
// bypass the cache.
func (cs *CatalogService) SearchCategories(ctx context.Context, term string) ([]tables.Category, error) {
	pattern := "%" + term + "%"
	categories, err := database.Query[tables.Category](cs.db).
		ColumnExpr("c.*").
		ColumnExpr("(SELECT count(*) FROM products AS p WHERE p.category_id = c.id) AS product_count").
		WhereRaw("(c.name ILIKE ? OR c.slug ILIKE ?)", pattern, pattern).
		OrderBy("name", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search categories: %w", err)
	}
	return categories, nil
}

// GetCategoryBySlug returns the category with the given slug, or
// (nil, nil) when no category matches.
func (cs *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*tables.Category, error) {
	category, err := database.Query[tables.Category](cs.db).
		Where("slug", slug).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category by slug: %w", err)
	}
	return category, nil
}

// GetCategoryByID returns the category with the given id, or (nil, nil)
// when no category matches.
func (cs *CatalogService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*tables.Category, error) {
	category, err := database.Query[tables.Category](cs.db).
		Where("id", id).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return category, nil
}

// CreateCategory inserts a new category. An empty slug is derived from
// the name. Duplicate names or slugs surface as lib.ErrConflict.
func (cs *CatalogService) CreateCategory(ctx context.Context, category *tables.Category) (*tables.Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.Slug == "" {
		category.Slug = lib.Slugify(category.Name)
	}

	created, err := database.Query[tables.Category](cs.db).Insert(ctx, category)
	if err != nil {
		cs.logger.Error("Failed to create category",
			gecho.Field("error", err),
			gecho.Field("category_name", category.Name),
		)
		return nil, lib.MapPgWriteError(err)
	}

	cs.invalidateCatalog()

	cs.logger.Info("Category created successfully",
		gecho.Field("id", created.ID),
		gecho.Field("slug", created.Slug),
	)
	return created, nil
}

type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Slug *string `json:"slug,omitempty" validate:"omitempty,max=140"`
}

// UpdateCategory applies a partial update by id.
func (cs *CatalogService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req *UpdateCategoryRequest) error {
	updateData := make(map[string]any)

	if req.Name != nil {
		updateData["name"] = *req.Name
	}
	if req.Slug != nil {
		updateData["slug"] = *req.Slug
	}

	if len(updateData) == 0 {
		return nil
	}

	affected, err := database.Query[tables.Category](cs.db).
		Where("id", categoryID).
		Update(ctx, updateData)
	if err != nil {
		return lib.MapPgWriteError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateCatalog()
	return nil
}

// DeleteCategory deletes a category. A category that still has products
// is protected: the delete fails with lib.ErrProtected and the category
// remains untouched.
func (cs *CatalogService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	affected, err := database.Query[tables.Category](cs.db).
		Where("id", categoryID).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateCatalog()
	return nil
}

func (cs *CatalogService) invalidateCatalog() {
	go func() {
		if err := cs.cacheService.InvalidateCatalogCaches(); err != nil {
			cs.logger.Warn("Failed to invalidate catalog caches", gecho.Field("error", err))
		}
	}()
}
