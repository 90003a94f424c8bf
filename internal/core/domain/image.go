package domain

import (
	"context"
	"time"
)

// Image is an uploaded image referenced by user avatars.
type Image struct {
	ImageID     int        `json:"image_id"`
	ImageURL    string     `json:"image_url" binding:"required"`
	Description *string    `json:"description"`
	UploadDate  *time.Time `json:"upload_date"`
}

type NewImage struct {
	ImageURL    string  `json:"image_url" binding:"required"`
	Description *string `json:"description"`
}

// ImageRepository defines CRUD access to the images table.
type ImageRepository interface {
	Find(ctx context.Context, id int) (*Image, error)
	FindMultiple(ctx context.Context, limit int) ([]Image, error)
	Create(ctx context.Context, newImage NewImage) (*Image, error)
	Update(ctx context.Context, id int, image Image) (*Image, error)
	Delete(ctx context.Context, id int) error
}
