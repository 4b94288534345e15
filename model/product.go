package model

import (
	"time"

	"github.com/muhammadheryan/student-marketplace/constant"
)

// Product mirrors a row of the products table. Column names follow the
// store, which is why the JSON keys are not uniformly snake_case.
type Product struct {
	ID               uint64                    `db:"productID" json:"productID"`
	Name             string                    `db:"name" json:"name"`
	Description      string                    `db:"description" json:"description"`
	Price            float64                   `db:"price" json:"price"`
	Category         constant.Category         `db:"category" json:"category"`
	Condition        string                    `db:"condition" json:"condition"`
	Status           string                    `db:"status" json:"status"`
	ModerationStatus constant.ModerationStatus `db:"moderation_status" json:"moderation_status"`
	IsDeleted        bool                      `db:"is_deleted" json:"is_deleted"`
	Image            string                    `db:"image" json:"image"`
	UserID           uint64                    `db:"userID" json:"userID"`
	IsBundle         bool                      `db:"is_bundle" json:"is_bundle"`
	Flag             bool                      `db:"flag" json:"flag"`
	CreatedAt        time.Time                 `db:"created_at" json:"created_at"`
	ModifiedAt       *time.Time                `db:"modified_at" json:"modified_at,omitempty"`
}

// IsSearchable reports whether the listing may appear in search results.
func (p Product) IsSearchable() bool {
	if p.IsDeleted || p.ModerationStatus != constant.ModerationApproved {
		return false
	}
	for _, s := range constant.AvailableStatuses {
		if p.Status == s {
			return true
		}
	}
	return false
}

// ProductQuery describes one filtered read against the product store.
// Base filters (not deleted, approved, available) are always applied.
type ProductQuery struct {
	// Terms match name or description by containment, OR-ed together.
	Terms []string
	// CategoryTerms match category by containment, OR-ed together.
	CategoryTerms []string
	// Category, when set, requires an exact category.
	Category      constant.Category
	Price         *PriceFilter
	OrderByRecent bool
	Limit         int
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}
