// Package navigation builds mapping-service deep links. The engine
// only supplies (origin, destination) pairs; the URL format lives
// entirely at this boundary.
package navigation

import (
	"fmt"
	"net/url"

	"github.com/vincenthsieh/tokyosync/internal/domain"
)

const (
	searchBase     = "https://www.google.com/maps/search/?api=1"
	directionsBase = "https://www.google.com/maps/dir/?api=1"
)

// SearchURL returns a map search link for a single location.
func SearchURL(loc domain.Location) string {
	query := loc.Name
	if loc.Address != "" {
		query = fmt.Sprintf("%s %s", loc.Name, loc.Address)
	}
	return searchBase + "&query=" + url.QueryEscape(query)
}

// DirectionsURL returns a transit-mode A-to-B directions link. Each
// endpoint uses its most specific available address.
func DirectionsURL(origin, destination domain.Location) string {
	return directionsBase +
		"&origin=" + url.QueryEscape(origin.PreferredAddress()) +
		"&destination=" + url.QueryEscape(destination.PreferredAddress()) +
		"&travelmode=transit"
}
