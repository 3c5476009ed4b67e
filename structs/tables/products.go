package tables

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus says whether a product is a bulk-upload draft still waiting
// for details or a fully edited product. It replaces the old heuristic of
// treating "inactive and free" as a draft, which misclassified legitimate
// free or temporarily disabled products.
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusPublished ProductStatus = "published"
)

type Product struct {
	tableName     struct{}      `bun:"table:products,alias:p"`
	ID            uuid.UUID     `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name          string        `bun:"name,notnull" json:"name"`
	Slug          string        `bun:"slug,unique,notnull" json:"slug"`
	Description   string        `bun:"description" json:"description,omitempty"`
	Price         uint64        `bun:"price,notnull" json:"price"` // stored in cents
	OriginalPrice *uint64       `bun:"original_price" json:"original_price,omitempty"`
	ImageURL      string        `bun:"image_url" json:"image_url,omitempty"`
	Images        []string      `bun:"images,array" json:"images,omitempty"` // ordered gallery URLs
	IsActive      bool          `bun:"is_active,notnull" json:"is_active"`
	IsFeatured    bool          `bun:"is_featured,notnull" json:"is_featured"`
	IsBestseller  bool          `bun:"is_bestseller,notnull" json:"is_bestseller"`
	StockQuantity int           `bun:"stock_quantity,notnull" json:"stock_quantity"`
	Status        ProductStatus `bun:"status,notnull,default:'published'" json:"status"`
	BrandID       *uuid.UUID    `bun:"brand_id,type:uuid" json:"brand_id,omitempty"`    // weak reference, no cascade
	CategoryID    *uuid.UUID    `bun:"category_id,type:uuid" json:"category_id,omitempty"`
	CreatedAt     time.Time     `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt     time.Time     `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
