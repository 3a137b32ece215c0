package request

type UpsertStorageRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=150"`
	Image        string `json:"image"`
	Address      string `json:"address" validate:"required"`
	Phone        string `json:"phone" validate:"required,min=7,max=20"`
	City         string `json:"city" validate:"required"`
	StorageType  string `json:"storage_type" validate:"required"`
	PricePerWeek int64  `json:"price_per_week" validate:"required,gt=0"` // minor units per box
	TotalBoxes   int    `json:"total_boxes" validate:"required,min=1"`
	Description  string `json:"description" validate:"max=2000"`
}

// SearchStoragesRequest comes from query parameters; no validation tags
// because every field is optional.
type SearchStoragesRequest struct {
	City        string
	StorageType string
	MaxPrice    int64
	SortBy      string // "price" or "created_at"
	PaginatedRequest
}
