package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/battlegear/api-server/internal/core/domain"
)

// PgxImageRepository implements domain.ImageRepository using pgx.
type PgxImageRepository struct {
	db DB
}

func NewImageRepository(db DB) *PgxImageRepository {
	return &PgxImageRepository{db: db}
}

func scanImage(row pgx.Row) (*domain.Image, error) {
	var img domain.Image
	err := row.Scan(&img.ImageID, &img.ImageURL, &img.Description, &img.UploadDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

func (r *PgxImageRepository) Find(ctx context.Context, id int) (*domain.Image, error) {
	query := `SELECT image_id, image_url, description, upload_date FROM images WHERE image_id = $1`
	return scanImage(r.db.QueryRow(ctx, query, id))
}

func (r *PgxImageRepository) FindMultiple(ctx context.Context, limit int) ([]domain.Image, error) {
	query := `SELECT image_id, image_url, description, upload_date FROM images ORDER BY image_id LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []domain.Image{}
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, *img)
	}
	return images, rows.Err()
}

func (r *PgxImageRepository) Create(ctx context.Context, newImage domain.NewImage) (*domain.Image, error) {
	query := `
		INSERT INTO images (image_url, description) VALUES ($1, $2)
		RETURNING image_id, image_url, description, upload_date
	`
	return scanImage(r.db.QueryRow(ctx, query, newImage.ImageURL, newImage.Description))
}

func (r *PgxImageRepository) Update(ctx context.Context, id int, image domain.Image) (*domain.Image, error) {
	query := `
		UPDATE images SET image_url = $2, description = $3 WHERE image_id = $1
		RETURNING image_id, image_url, description, upload_date
	`
	return scanImage(r.db.QueryRow(ctx, query, id, image.ImageURL, image.Description))
}

func (r *PgxImageRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM images WHERE image_id = $1`, id)
	return err
}
