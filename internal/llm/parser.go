package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"foodielink/internal/matching"
)

type extractedMenu struct {
	Items []extractedItem `json:"items"`
}

type extractedItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ExtractMenuItems runs the extraction and normalizes the output into
// scorable menu items. Each item gets a fresh opaque id.
func ExtractMenuItems(
	ctx context.Context,
	client Client,
	menuText string,
) ([]matching.MenuItem, error) {

	rawJSON, err := client.ExtractMenu(ctx, menuText)
	if err != nil {
		return nil, err
	}

	var parsed extractedMenu
	if err := json.Unmarshal([]byte(rawJSON), &parsed); err != nil {
		return nil, errors.New("invalid LLM JSON output")
	}

	items := make([]matching.MenuItem, 0, len(parsed.Items))
	for _, raw := range parsed.Items {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			continue
		}

		description := strings.TrimSpace(raw.Description)

		// Some menus embed the description in the name after a " - "
		// delimiter; split it out so scoring sees both parts.
		if description == "" {
			if idx := strings.Index(name, " - "); idx > 0 {
				description = strings.TrimSpace(name[idx+3:])
				name = strings.TrimSpace(name[:idx])
			}
		}

		items = append(items, matching.MenuItem{
			ID:          uuid.New().String(),
			Name:        name,
			Description: description,
			Category:    strings.TrimSpace(raw.Category),
		})
	}

	return items, nil
}
