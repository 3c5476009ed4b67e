package tables

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	tableName   struct{}  `bun:"table:brands,alias:b"`
	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description string    `bun:"description" json:"description,omitempty"`
	LogoURL     string    `bun:"logo_url" json:"logo_url,omitempty"`
	IsActive    bool      `bun:"is_active,notnull" json:"is_active"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// Category supports one level of nesting through ParentID: top-level rows are
// the storefront gateway, children render as the sub-category grid.
type Category struct {
	tableName   struct{}   `bun:"table:categories,alias:c"`
	ID          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string     `bun:"name,notnull" json:"name"`
	Slug        string     `bun:"slug,unique,notnull" json:"slug"`
	Description string     `bun:"description" json:"description,omitempty"`
	ImageURL    string     `bun:"image_url" json:"image_url,omitempty"`
	ParentID    *uuid.UUID `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	IsActive    bool       `bun:"is_active,notnull" json:"is_active"`
	SortOrder   int        `bun:"sort_order,notnull" json:"sort_order"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// SiteSetting rows are pre-seeded key/value pairs; only Value is ever updated
// through the API. Category is a grouping tag for the back-office tabs.
type SiteSetting struct {
	tableName struct{}  `bun:"table:site_settings,alias:ss"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Key       string    `bun:"key,unique,notnull" json:"key"`
	Value     string    `bun:"value" json:"value"`
	Category  string    `bun:"category,notnull" json:"category"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
