package catalog

import (
	"testing"

	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"

	"github.com/stretchr/testify/assert"
)

// The detail, slug and contact endpoints all share this gate; a draft must
// stay invisible on every one of them, contact links included.
func TestStorefrontVisible(t *testing.T) {
	tests := []struct {
		name     string
		isActive bool
		status   tables.ProductStatus
		visible  bool
	}{
		{"active published", true, tables.ProductStatusPublished, true},
		{"active draft", true, tables.ProductStatusDraft, false},
		{"inactive published", false, tables.ProductStatusPublished, false},
		{"inactive draft", false, tables.ProductStatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := &tables.Product{
				Name:     "Chronograph",
				IsActive: tt.isActive,
				Status:   tt.status,
			}
			assert.Equal(t, tt.visible, storefrontVisible(product))
		})
	}
}
