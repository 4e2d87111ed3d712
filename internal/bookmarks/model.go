package bookmarks

// Bookmark is a saved link as stored in the bookmarks table.
// ID is assigned by the database on insert and immutable afterwards.
type Bookmark struct {
	ID          int64
	Title       string
	URL         string
	Description string
	Rating      int
}

// Patch is a partial field set for an update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	URL         *string
	Description *string
	Rating      *int
}

// IsEmpty reports whether the patch carries no fields at all.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.URL == nil && p.Description == nil && p.Rating == nil
}
