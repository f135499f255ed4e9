package matching

// Features is the normalized restaurant attribute set consumed by
// scoring. It is filled from the places provider; absent fields stay at
// their zero value and are treated as unknown, never as a violation.
type Features struct {
	Name         string   `json:"name"`
	CuisineTypes []string `json:"cuisine_types"`

	// PriceLevel is 0-4 where 0 means unknown. The price matcher
	// defaults an unknown level to 2 (moderate).
	PriceLevel  int     `json:"price_level"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`

	ServesVegetarianFood bool `json:"serves_vegetarian_food"`
	ServesBeer           bool `json:"serves_beer"`
	ServesWine           bool `json:"serves_wine"`
	ServesBreakfast      bool `json:"serves_breakfast"`
	ServesBrunch         bool `json:"serves_brunch"`
	ServesLunch          bool `json:"serves_lunch"`
	ServesDinner         bool `json:"serves_dinner"`
	Delivery             bool `json:"delivery"`
	DineIn               bool `json:"dine_in"`
	Takeout              bool `json:"takeout"`
	Reservable           bool `json:"reservable"`
	WheelchairAccessible bool `json:"wheelchair_accessible"`
	OutdoorSeating       bool `json:"outdoor_seating"`
	HasWifi              bool `json:"has_wifi"`
	HasParking           bool `json:"has_parking"`
	HasLiveMusic         bool `json:"has_live_music"`
	SmokingAllowed       bool `json:"smoking_allowed"`
	CurbsidePickup       bool `json:"curbside_pickup"`
	ServesDessert        bool `json:"serves_dessert"`
	ServesCocktails      bool `json:"serves_cocktails"`
	ServesCoffee         bool `json:"serves_coffee"`
	HasHappyHour         bool `json:"has_happy_hour"`
}
