package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			onboarding_status VARCHAR(50) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// PREFERENCE PROFILES (one row per user, upsert-only)
	// -------------------------------
	preferencesSQL := `
		CREATE TABLE IF NOT EXISTS preference_profiles (
			user_id UUID PRIMARY KEY REFERENCES users(id),
			cuisine_preferences JSONB NOT NULL DEFAULT 'null',
			dietary_restrictions JSONB NOT NULL DEFAULT '{}',
			foods_to_avoid JSONB NOT NULL DEFAULT '{}',
			atmosphere_preferences JSONB NOT NULL DEFAULT 'null',
			favorite_proteins JSONB NOT NULL DEFAULT '{}',
			spice_level INT NOT NULL DEFAULT 3,
			price_range VARCHAR(20) NOT NULL DEFAULT '',
			special_considerations TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, preferencesSQL); err != nil {
		return err
	}

	// -------------------------------
	// SAVED RESTAURANTS
	// -------------------------------
	savedRestaurantsSQL := `
		CREATE TABLE IF NOT EXISTS saved_restaurants (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			place_id VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			address VARCHAR(500) NOT NULL DEFAULT '',
			features JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, place_id)
		)
	`
	if _, err := db.Exec(ctx, savedRestaurantsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU PHOTO UPLOADS
	// -------------------------------
	menuUploadsSQL := `
		CREATE TABLE IF NOT EXISTS menu_uploads (
			id SERIAL PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES saved_restaurants(id),
			image_url VARCHAR(500) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuUploadsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
