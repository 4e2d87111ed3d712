package bookmarks

import "github.com/microcosm-cc/bluemonday"

// sanitizer strips executable markup from user-supplied text before it leaves
// the service. The UGC policy keeps harmless formatting (strong, em, images
// with safe URLs) while removing script elements and event-handler attributes.
// Safe for concurrent use once constructed.
var sanitizer = bluemonday.UGCPolicy()

// sanitizeText strips dangerous markup from a free-text field. Applying it to
// already-sanitized text is a no-op.
func sanitizeText(s string) string {
	return sanitizer.Sanitize(s)
}

// sanitized returns a copy of b with its free-text fields cleaned. URL, ID and
// rating pass through unchanged.
func sanitized(b Bookmark) Bookmark {
	b.Title = sanitizeText(b.Title)
	b.Description = sanitizeText(b.Description)
	return b
}
