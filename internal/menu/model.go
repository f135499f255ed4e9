package menu

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"foodielink/internal/matching"
)

// Upload is one stored menu photo for a saved restaurant.
type Upload struct {
	ID           int       `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Report is the personalized analysis of a full menu.
type Report struct {
	Analysis matching.MenuAnalysis `json:"analysis"`
	Verdict  matching.MenuVerdict  `json:"verdict"`
}

var allowedPhotoExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
}

func ValidatePhotoExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedPhotoExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}
