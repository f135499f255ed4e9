package matching

import "strings"

// forbiddenByRestriction maps a normalized restriction name to the item
// keywords that conflict with it. Lookup is case-insensitive with
// spaces and underscores folded to hyphens, so "Gluten Free",
// "gluten_free" and "Gluten-Free" all resolve to the same entry.
var forbiddenByRestriction = map[string][]string{
	"vegetarian": {
		"chicken", "beef", "pork", "fish", "seafood", "meat",
	},
	"vegan": {
		"chicken", "beef", "pork", "fish", "seafood", "meat",
		"cheese", "milk", "cream", "butter", "egg", "yogurt", "honey",
	},
	"gluten-free": {
		"wheat", "bread", "pasta", "flour",
	},
	"dairy-free": {
		"cheese", "milk", "cream", "butter", "yogurt",
	},
	"nut-free": {
		"peanut", "almond", "cashew", "walnut", "pecan", "hazelnut",
	},
	"pescatarian": {
		"chicken", "beef", "pork", "meat",
	},
	"halal": {
		"pork", "bacon", "ham", "alcohol", "wine", "beer",
	},
	"kosher": {
		"pork", "bacon", "ham", "shellfish", "shrimp", "lobster", "crab",
	},
}

func forbiddenKeywords(restriction string) []string {
	key := strings.ToLower(strings.TrimSpace(restriction))
	key = strings.ReplaceAll(key, " ", "-")
	key = strings.ReplaceAll(key, "_", "-")
	return forbiddenByRestriction[key]
}
