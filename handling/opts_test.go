package handling

import (
	"net/http/httptest"
	"testing"

	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptions_Empty(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)
	assert.Equal(t, 0, opts.Page)
	assert.Nil(t, opts.IsActive)
	assert.Nil(t, opts.Status)
}

func TestParseProductListOptions_FullQuery(t *testing.T) {
	brandID := uuid.New()
	categoryID := uuid.New()

	r := httptest.NewRequest("GET",
		"/products?page=2&page_size=50&is_active=true&is_bestseller=false&status=draft"+
			"&brand_id="+brandID.String()+
			"&category_id="+categoryID.String()+
			"&search=rolex&min_price=1000&max_price=500000&sort_by=price&sort_direction=asc",
		nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 50, opts.PageSize)

	require.NotNil(t, opts.IsActive)
	assert.True(t, *opts.IsActive)
	require.NotNil(t, opts.IsBestseller)
	assert.False(t, *opts.IsBestseller)

	require.NotNil(t, opts.Status)
	assert.Equal(t, tables.ProductStatusDraft, *opts.Status)

	require.NotNil(t, opts.BrandID)
	assert.Equal(t, brandID, *opts.BrandID)
	require.NotNil(t, opts.CategoryID)
	assert.Equal(t, categoryID, *opts.CategoryID)

	assert.Equal(t, "rolex", opts.SearchTerm)
	require.NotNil(t, opts.MinPrice)
	assert.Equal(t, uint64(1000), *opts.MinPrice)
	require.NotNil(t, opts.MaxPrice)
	assert.Equal(t, uint64(500000), *opts.MaxPrice)

	assert.Equal(t, "price", opts.SortBy)
	assert.Equal(t, "ASC", opts.SortDirection)
}

func TestParseProductListOptions_InvalidStatus(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?status=archived", nil)

	_, err := ParseProductListOptions(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestParseProductListOptions_InvalidUUID(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?brand_id=not-a-uuid", nil)

	_, err := ParseProductListOptions(r)
	require.Error(t, err)
}

func TestParseProductListOptions_InvalidPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?page=abc", nil)

	_, err := ParseProductListOptions(r)
	require.Error(t, err)
}
