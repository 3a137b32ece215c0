package response

import (
	"time"

	"storage-rental/internal/data/entity"
)

type StorageResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Image        string    `json:"image,omitempty"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	StorageType  string    `json:"storage_type"`
	PricePerWeek int64     `json:"price_per_week"`
	TotalBoxes   int       `json:"total_boxes"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func StorageToResponse(storage *entity.StorageFacility) StorageResponse {
	return StorageResponse{
		ID:           storage.ID,
		Name:         storage.Name,
		Image:        storage.Image,
		Address:      storage.Address,
		Phone:        storage.Phone,
		City:         storage.City,
		StorageType:  storage.StorageType,
		PricePerWeek: storage.PricePerWeek,
		TotalBoxes:   storage.TotalBoxes,
		Description:  storage.Description,
		CreatedAt:    storage.CreatedAt,
	}
}
