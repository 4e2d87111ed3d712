package bookmarks

import "context"

// Repository defines the persistence operations for Bookmark entities.
// Implementations issue single-statement operations against one table and add
// no validation or transformation of their own. Update and Delete do not error
// when zero rows match; absence is only signalled by GetByID.
type Repository interface {
	List(ctx context.Context) ([]Bookmark, error)
	GetByID(ctx context.Context, id int64) (Bookmark, error)
	Insert(ctx context.Context, b Bookmark) (Bookmark, error)
	Update(ctx context.Context, id int64, patch Patch) error
	Delete(ctx context.Context, id int64) error
}
