package handling

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/avira1987/remix-of-dxb-dubi/services"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"
	"github.com/google/uuid"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}
	var err error
	var val64 uint64
	var valInt int
	var valBool bool

	// Parse pagination parameters
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

	// Parse boolean filters
	if isActive := query.Get("is_active"); isActive != "" {
		if valBool, err = strconv.ParseBool(isActive); err != nil {
			return nil, err
		}
		opts.IsActive = &valBool
	}

	if isFeatured := query.Get("is_featured"); isFeatured != "" {
		if valBool, err = strconv.ParseBool(isFeatured); err != nil {
			return nil, err
		}
		opts.IsFeatured = &valBool
	}

	if isBestseller := query.Get("is_bestseller"); isBestseller != "" {
		if valBool, err = strconv.ParseBool(isBestseller); err != nil {
			return nil, err
		}
		opts.IsBestseller = &valBool
	}

	// Parse lifecycle status filter
	if status := query.Get("status"); status != "" {
		parsed := tables.ProductStatus(status)
		if parsed != tables.ProductStatusDraft && parsed != tables.ProductStatusPublished {
			return nil, fmt.Errorf("invalid status %q", status)
		}
		opts.Status = &parsed
	}

	// Parse relation filters
	if brandID := query.Get("brand_id"); brandID != "" {
		id, err := uuid.Parse(brandID)
		if err != nil {
			return nil, err
		}
		opts.BrandID = &id
	}

	if categoryID := query.Get("category_id"); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return nil, err
		}
		opts.CategoryID = &id
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	// Parse price filters
	if minPrice := query.Get("min_price"); minPrice != "" {
		if val64, err = strconv.ParseUint(minPrice, 10, 64); err != nil {
			return nil, err
		}
		opts.MinPrice = &val64
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		if val64, err = strconv.ParseUint(maxPrice, 10, 64); err != nil {
			return nil, err
		}
		opts.MaxPrice = &val64
	}

	// Parse sorting parameters
	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	return opts, nil
}
