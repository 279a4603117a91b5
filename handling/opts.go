package handling

import (
	"minitienda_server/services"
	"net/http"
	"strconv"
	"strings"
)

// ParsePagination reads page/page_size query parameters, falling back to
// defaults for absent or malformed values.
func ParsePagination(r *http.Request, defaultPageSize int) (page, pageSize int) {
	page = 1
	pageSize = defaultPageSize

	query := r.URL.Query()

	if pageStr := query.Get("page"); pageStr != "" {
		if val, err := strconv.Atoi(pageStr); err == nil && val > 0 {
			page = val
		}
	}

	if pageSizeStr := query.Get("page_size"); pageSizeStr != "" {
		if val, err := strconv.Atoi(pageSizeStr); err == nil && val > 0 {
			pageSize = val
		}
	}

	return page, pageSize
}

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	opts := &services.ProductListOptions{}
	if len(query) == 0 {
		return opts, nil
	}

	var err error
	var valInt int
	var valBool bool

	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if isActive := query.Get("is_active"); isActive != "" {
		if valBool, err = strconv.ParseBool(isActive); err != nil {
			return nil, err
		}
		opts.IsActive = &valBool
	}

	if categorySlug := query.Get("category"); categorySlug != "" {
		opts.CategorySlug = categorySlug
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	return opts, nil
}

// ParseOrderListOptions parses HTTP query parameters into OrderListOptions
func ParseOrderListOptions(r *http.Request) (*services.OrderListOptions, error) {
	query := r.URL.Query()

	opts := &services.OrderListOptions{}

	opts.Page, opts.PageSize = ParsePagination(r, 0)

	if status := query.Get("status"); status != "" {
		opts.Status = status
	}

	if customerID := query.Get("customer_id"); customerID != "" {
		opts.CustomerID = customerID
	}

	return opts, nil
}

// ParseCustomerListOptions parses HTTP query parameters into CustomerListOptions
func ParseCustomerListOptions(r *http.Request) *services.CustomerListOptions {
	opts := &services.CustomerListOptions{}

	opts.Page, opts.PageSize = ParsePagination(r, 0)
	opts.SearchTerm = r.URL.Query().Get("search")

	return opts
}
