package reservation

import "strings"

// VenueQuery is the parsed form of whatever the user typed at the prompt:
// either a free-text restaurant name or a resy.com venue URL reduced to its
// url slug.
type VenueQuery struct {
	Text   string
	IsSlug bool
}

// ParseVenueQuery reduces resy.com URLs like
// https://resy.com/cities/orlando-fl/venues/edoboy?date=... to the "edoboy"
// slug. Anything that does not look like a resy.com URL passes through as a
// search query.
func ParseVenueQuery(input string) VenueQuery {
	s := strings.TrimSpace(input)
	if !strings.Contains(strings.ToLower(s), "resy.com") {
		return VenueQuery{Text: s}
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(strings.Trim(s, "/"), "/")
	slug := parts[len(parts)-1]
	for i, p := range parts {
		if p == "venues" && i+1 < len(parts) {
			slug = parts[i+1]
			break
		}
	}
	return VenueQuery{Text: slug, IsSlug: true}
}
