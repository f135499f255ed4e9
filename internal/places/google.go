package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"foodielink/internal/matching"
)

const defaultBaseURL = "https://maps.googleapis.com"

// detailsFields is the field mask requested from the details endpoint.
var detailsFields = strings.Join([]string{
	"place_id", "name", "formatted_address", "types", "price_level",
	"rating", "user_ratings_total", "serves_vegetarian_food",
	"serves_beer", "serves_wine", "serves_breakfast", "serves_brunch",
	"serves_lunch", "serves_dinner", "delivery", "dine_in", "takeout",
	"reservable", "wheelchair_accessible_entrance", "curbside_pickup",
}, ",")

type GoogleClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGoogleClient() *GoogleClient {
	return &GoogleClient{
		apiKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// placeResult is the subset of the Places API response we consume.
// Absent fields stay at their zero value and are treated as unknown.
type placeResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Types            []string `json:"types"`
	PriceLevel       int      `json:"price_level"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`

	ServesVegetarianFood         bool `json:"serves_vegetarian_food"`
	ServesBeer                   bool `json:"serves_beer"`
	ServesWine                   bool `json:"serves_wine"`
	ServesBreakfast              bool `json:"serves_breakfast"`
	ServesBrunch                 bool `json:"serves_brunch"`
	ServesLunch                  bool `json:"serves_lunch"`
	ServesDinner                 bool `json:"serves_dinner"`
	Delivery                     bool `json:"delivery"`
	DineIn                       bool `json:"dine_in"`
	Takeout                      bool `json:"takeout"`
	Reservable                   bool `json:"reservable"`
	WheelchairAccessibleEntrance bool `json:"wheelchair_accessible_entrance"`
	CurbsidePickup               bool `json:"curbside_pickup"`
}

func (g *GoogleClient) Details(ctx context.Context, placeID string) (*Place, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing GOOGLE_PLACES_API_KEY")
	}
	if placeID == "" {
		return nil, errors.New("empty place id")
	}

	endpoint := fmt.Sprintf(
		"%s/maps/api/place/details/json?place_id=%s&fields=%s&key=%s",
		g.baseURL,
		url.QueryEscape(placeID),
		url.QueryEscape(detailsFields),
		g.apiKey,
	)

	var response struct {
		Status string      `json:"status"`
		Result placeResult `json:"result"`
	}
	if err := g.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}
	if response.Status != "OK" {
		return nil, fmt.Errorf("places api status: %s", response.Status)
	}

	return toPlace(response.Result), nil
}

// Search resolves a free-text query to the single best candidate.
func (g *GoogleClient) Search(ctx context.Context, query string) (*Place, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing GOOGLE_PLACES_API_KEY")
	}
	if query == "" {
		return nil, errors.New("empty search query")
	}

	endpoint := fmt.Sprintf(
		"%s/maps/api/place/textsearch/json?query=%s&type=restaurant&key=%s",
		g.baseURL,
		url.QueryEscape(query),
		g.apiKey,
	)

	var response struct {
		Status  string        `json:"status"`
		Results []placeResult `json:"results"`
	}
	if err := g.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}
	if response.Status != "OK" || len(response.Results) == 0 {
		return nil, errors.New("no restaurant found for query")
	}

	// Text search results carry few detail fields; refetch the top
	// candidate so service flags are populated.
	return g.Details(ctx, response.Results[0].PlaceID)
}

func (g *GoogleClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places api error: %s", string(raw))
	}

	return json.Unmarshal(raw, out)
}

func toPlace(r placeResult) *Place {
	return &Place{
		PlaceID: r.PlaceID,
		Address: r.FormattedAddress,
		Features: matching.Features{
			Name:                 r.Name,
			CuisineTypes:         r.Types,
			PriceLevel:           r.PriceLevel,
			Rating:               r.Rating,
			ReviewCount:          r.UserRatingsTotal,
			ServesVegetarianFood: r.ServesVegetarianFood,
			ServesBeer:           r.ServesBeer,
			ServesWine:           r.ServesWine,
			ServesBreakfast:      r.ServesBreakfast,
			ServesBrunch:         r.ServesBrunch,
			ServesLunch:          r.ServesLunch,
			ServesDinner:         r.ServesDinner,
			Delivery:             r.Delivery,
			DineIn:               r.DineIn,
			Takeout:              r.Takeout,
			Reservable:           r.Reservable,
			WheelchairAccessible: r.WheelchairAccessibleEntrance,
			CurbsidePickup:       r.CurbsidePickup,
		},
	}
}
