package llm

import (
	"context"
)

// Client extracts structured menu items from pasted menu text. The
// returned string is guaranteed JSON-only.
type Client interface {
	ExtractMenu(ctx context.Context, menuText string) (string, error)
}
