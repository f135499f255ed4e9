package restaurant

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, restaurant *SavedRestaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}

	features, err := json.Marshal(restaurant.Features)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO saved_restaurants (id, user_id, place_id, name, address, features)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, place_id) DO UPDATE SET
			name     = EXCLUDED.name,
			address  = EXCLUDED.address,
			features = EXCLUDED.features
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		restaurant.ID, restaurant.UserID, restaurant.PlaceID,
		restaurant.Name, restaurant.Address, features,
	).Scan(&restaurant.ID, &restaurant.CreatedAt)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*SavedRestaurant, error) {
	query := `
		SELECT id, place_id, name, address, features, created_at
		FROM saved_restaurants
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*SavedRestaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows, userID)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string, userID string) (*SavedRestaurant, error) {
	query := `
		SELECT id, place_id, name, address, features, created_at
		FROM saved_restaurants
		WHERE id = $1 AND user_id = $2
	`

	row := r.db.QueryRow(ctx, query, id, userID)
	restaurant, err := scanRestaurant(row, userID)
	if err == pgx.ErrNoRows {
		return nil, errors.New("restaurant not found")
	}
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

func scanRestaurant(row pgx.Row, userID string) (*SavedRestaurant, error) {
	restaurant := &SavedRestaurant{UserID: userID}
	var features []byte

	err := row.Scan(
		&restaurant.ID, &restaurant.PlaceID, &restaurant.Name,
		&restaurant.Address, &features, &restaurant.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(features, &restaurant.Features); err != nil {
		return nil, err
	}
	return restaurant, nil
}
