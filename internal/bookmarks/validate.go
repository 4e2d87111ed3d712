package bookmarks

import (
	"math"
	"regexp"
)

const (
	MinRating = 0
	MaxRating = 5
)

// urlPattern is a permissive URL shape: optional http(s) scheme, a host with at
// least one dot, then at least one path/query/fragment character. Bare hosts
// like "https://xm" fail the dot requirement.
var urlPattern = regexp.MustCompile(`^(?:http(s)?://)?[\w.-]+(?:\.[\w.-]+)+[\w\-._~:/?#\[\]@!$&'()*+,;=.]+$`)

// validURL reports whether raw matches the accepted URL shape.
func validURL(raw string) bool {
	return urlPattern.MatchString(raw)
}

// validRating reports whether rating is an integer within [MinRating, MaxRating].
// Ratings arrive as JSON numbers, so a fractional value must be rejected rather
// than truncated.
func validRating(rating float64) bool {
	return rating == math.Trunc(rating) && rating >= MinRating && rating <= MaxRating
}
