package places

import (
	"errors"
	"net/url"
	"strings"
)

// ErrShortLink means the URL is a maps.app.goo.gl shortener that has to
// be expanded by the browser before import.
var ErrShortLink = errors.New("shortened maps link: open it in a browser and share the full URL")

// LinkTarget is what a Google Maps share link resolves to: either a
// concrete place id or a free-text search query.
type LinkTarget struct {
	PlaceID string
	Query   string
}

// ResolveMapsLink extracts an import target from a Google Maps URL.
// Supported forms:
//
//	https://www.google.com/maps/place/<name>/...
//	https://www.google.com/maps/search/?api=1&query=...&query_place_id=...
//	https://www.google.com/maps?q=<name>
func ResolveMapsLink(raw string) (*LinkTarget, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.New("invalid url")
	}

	host := strings.ToLower(parsed.Hostname())
	switch {
	case host == "maps.app.goo.gl" || host == "goo.gl":
		return nil, ErrShortLink
	case !strings.Contains(host, "google."):
		return nil, errors.New("not a google maps link")
	}

	query := parsed.Query()

	if placeID := query.Get("query_place_id"); placeID != "" {
		return &LinkTarget{PlaceID: placeID}, nil
	}
	if placeID := query.Get("place_id"); placeID != "" {
		return &LinkTarget{PlaceID: placeID}, nil
	}

	// /maps/place/<name>/@lat,lng,...
	if idx := strings.Index(parsed.Path, "/maps/place/"); idx >= 0 {
		rest := parsed.Path[idx+len("/maps/place/"):]
		name := strings.SplitN(rest, "/", 2)[0]
		name = strings.ReplaceAll(name, "+", " ")
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}
		if name != "" {
			return &LinkTarget{Query: name}, nil
		}
	}

	if q := query.Get("q"); q != "" {
		return &LinkTarget{Query: q}, nil
	}
	if q := query.Get("query"); q != "" {
		return &LinkTarget{Query: q}, nil
	}

	return nil, errors.New("could not extract a place from the link")
}
