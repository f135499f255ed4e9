package menu

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) RecordUpload(
	ctx context.Context,
	restaurantID string,
	imageURL string,
) (*Upload, error) {

	query := `
		INSERT INTO menu_uploads (restaurant_id, image_url)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	upload := &Upload{
		RestaurantID: restaurantID,
		ImageURL:     imageURL,
	}

	err := r.db.QueryRow(ctx, query, restaurantID, imageURL).
		Scan(&upload.ID, &upload.CreatedAt)
	if err != nil {
		return nil, err
	}

	return upload, nil
}

func (r *PostgresRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]*Upload, error) {

	query := `
		SELECT id, restaurant_id, image_url, created_at
		FROM menu_uploads
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []*Upload
	for rows.Next() {
		upload := &Upload{}
		if err := rows.Scan(
			&upload.ID,
			&upload.RestaurantID,
			&upload.ImageURL,
			&upload.CreatedAt,
		); err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, rows.Err()
}
