package preferences

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	query := `
		SELECT cuisine_preferences, dietary_restrictions, foods_to_avoid,
		       atmosphere_preferences, favorite_proteins, spice_level,
		       price_range, special_considerations, updated_at
		FROM preference_profiles
		WHERE user_id = $1
	`

	var (
		cuisines   []byte
		dietary    []byte
		avoid      []byte
		atmosphere []byte
		proteins   []byte
	)

	profile := &Profile{UserID: userID}

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&cuisines, &dietary, &avoid, &atmosphere, &proteins,
		&profile.SpiceLevel, &profile.PriceRange,
		&profile.SpecialConsiderations, &profile.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(cuisines, &profile.CuisinePreferences); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(dietary, &profile.DietaryRestrictions); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(avoid, &profile.FoodsToAvoid); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(atmosphere, &profile.AtmospherePreferences); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(proteins, &profile.FavoriteProteins); err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, profile *Profile) error {
	cuisines, err := json.Marshal(profile.CuisinePreferences)
	if err != nil {
		return err
	}
	dietary, err := json.Marshal(profile.DietaryRestrictions)
	if err != nil {
		return err
	}
	avoid, err := json.Marshal(profile.FoodsToAvoid)
	if err != nil {
		return err
	}
	atmosphere, err := json.Marshal(profile.AtmospherePreferences)
	if err != nil {
		return err
	}
	proteins, err := json.Marshal(profile.FavoriteProteins)
	if err != nil {
		return err
	}

	profile.UpdatedAt = time.Now()

	query := `
		INSERT INTO preference_profiles (
			user_id, cuisine_preferences, dietary_restrictions,
			foods_to_avoid, atmosphere_preferences, favorite_proteins,
			spice_level, price_range, special_considerations, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			cuisine_preferences    = EXCLUDED.cuisine_preferences,
			dietary_restrictions   = EXCLUDED.dietary_restrictions,
			foods_to_avoid         = EXCLUDED.foods_to_avoid,
			atmosphere_preferences = EXCLUDED.atmosphere_preferences,
			favorite_proteins      = EXCLUDED.favorite_proteins,
			spice_level            = EXCLUDED.spice_level,
			price_range            = EXCLUDED.price_range,
			special_considerations = EXCLUDED.special_considerations,
			updated_at             = EXCLUDED.updated_at
	`

	_, err = r.db.Exec(ctx, query,
		profile.UserID, cuisines, dietary, avoid, atmosphere, proteins,
		profile.SpiceLevel, profile.PriceRange,
		profile.SpecialConsiderations, profile.UpdatedAt,
	)
	return err
}
