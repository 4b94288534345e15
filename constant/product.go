package constant

type Category string

const (
	CategoryElectronics   Category = "electronics"
	CategoryFurniture     Category = "furniture"
	CategoryTextbooks     Category = "textbooks"
	CategoryClothing      Category = "clothing"
	CategoryMiscellaneous Category = "miscellaneous"
)

// Categories lists every category a listing can be filed under.
var Categories = []Category{
	CategoryElectronics,
	CategoryFurniture,
	CategoryTextbooks,
	CategoryClothing,
	CategoryMiscellaneous,
}

type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
	ModerationArchived ModerationStatus = "archived"
)

const (
	ProductStatusAvailable   = "available"
	ProductStatusUnavailable = "unavailable"
	ProductStatusSold        = "sold"
)

// AvailableStatuses are the status spellings found on listings open for sale.
var AvailableStatuses = []string{"available", "Available"}

const (
	DirectSearchLimit   = 20
	CategorySearchLimit = 20
	FallbackSearchLimit = 12
)
