package menu

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"foodielink/internal/llm"
	"foodielink/internal/matching"
	"foodielink/internal/preferences"
	"foodielink/internal/restaurant"
)

// ErrProfileRequired mirrors the restaurant import precondition: menu
// analysis never runs without a stored preference profile.
var ErrProfileRequired = errors.New("complete your taste profile first")

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error)
}

// RestaurantReader is the slice of the restaurant repository needed for
// the ownership check on photo uploads.
type RestaurantReader interface {
	GetByID(ctx context.Context, id string, userID string) (*restaurant.SavedRestaurant, error)
}

type PreferenceReader interface {
	Get(ctx context.Context, userID string) (*preferences.Profile, error)
}

type Service struct {
	repo        Repository
	storage     Storage
	restaurants RestaurantReader
	prefs       PreferenceReader
	llm         llm.Client
}

func NewService(
	repo Repository,
	storage Storage,
	restaurants RestaurantReader,
	prefs PreferenceReader,
	llmClient llm.Client,
) *Service {
	return &Service{
		repo:        repo,
		storage:     storage,
		restaurants: restaurants,
		prefs:       prefs,
		llm:         llmClient,
	}
}

// --------------------------------------------------
// Upload menu photo
// --------------------------------------------------
func (s *Service) UploadPhoto(
	ctx context.Context,
	userID string,
	restaurantID string,
	file multipart.File,
	filename string,
	contentType string,
) (*Upload, error) {

	// Uploads attach only to the caller's own saved restaurants.
	if _, err := s.restaurants.GetByID(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return nil, errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"menu-photos/%s/%s%s",
		restaurantID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, file, contentType)
	if err != nil {
		return nil, err
	}

	return s.repo.RecordUpload(ctx, restaurantID, url)
}

// --------------------------------------------------
// Extract menu items from pasted text
// --------------------------------------------------
func (s *Service) Extract(ctx context.Context, menuText string) ([]matching.MenuItem, error) {
	if strings.TrimSpace(menuText) == "" {
		return nil, errors.New("menu text is required")
	}
	return llm.ExtractMenuItems(ctx, s.llm, menuText)
}

// ItemInput is a menu item on the wire; IDs are optional and generated
// when absent.
type ItemInput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// --------------------------------------------------
// Analyze menu against the caller's profile
// --------------------------------------------------
func (s *Service) Analyze(ctx context.Context, userID string, inputs []ItemInput) (*Report, error) {
	profile, err := s.prefs.Get(ctx, userID)
	if err == preferences.ErrNotFound {
		return nil, ErrProfileRequired
	}
	if err != nil {
		return nil, err
	}

	items := make([]matching.MenuItem, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Name) == "" {
			continue
		}
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, matching.MenuItem{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Category:    in.Category,
		})
	}
	if len(items) == 0 {
		return nil, errors.New("no menu items to analyze")
	}

	analysis := matching.AnalyzeMenu(items, *profile)

	return &Report{
		Analysis: analysis,
		Verdict:  matching.ResolveMenuVerdict(menuScore(analysis)),
	}, nil
}

// menuScore summarizes a menu as the rounded mean of its item scores.
func menuScore(analysis matching.MenuAnalysis) int {
	if len(analysis.DetailsByID) == 0 {
		return 0
	}
	total := 0
	for _, detail := range analysis.DetailsByID {
		total += detail.Score
	}
	return int(math.Round(float64(total) / float64(len(analysis.DetailsByID))))
}
