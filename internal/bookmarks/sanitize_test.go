package bookmarks

import (
	"strings"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		in := "Think outside the classroom"
		if got := sanitizeText(in); got != in {
			t.Errorf("sanitizeText(%q) = %q", in, got)
		}
	})

	t.Run("script element is removed entirely", func(t *testing.T) {
		got := sanitizeText(`Naughty <script>alert("xss");</script>`)

		if strings.Contains(got, "<script") {
			t.Errorf("script tag survived: %q", got)
		}
		if strings.Contains(got, "alert") {
			t.Errorf("script content survived: %q", got)
		}
		if !strings.Contains(got, "Naughty") {
			t.Errorf("surrounding text lost: %q", got)
		}
	})

	t.Run("event handler attributes are stripped, safe markup kept", func(t *testing.T) {
		in := `Bad image <img src="https://url.to.file.which/does-not.exist" onerror="alert(document.cookie);">. But not <strong>all</strong> bad.`
		got := sanitizeText(in)

		if strings.Contains(got, "onerror") {
			t.Errorf("onerror attribute survived: %q", got)
		}
		if !strings.Contains(got, "<img") {
			t.Errorf("img element lost: %q", got)
		}
		if !strings.Contains(got, "<strong>all</strong>") {
			t.Errorf("strong element lost: %q", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			`Naughty <script>alert("xss");</script>`,
			`<img src="https://x.example/a.png" onerror="alert(1)">`,
			"plain text",
		}
		for _, in := range inputs {
			once := sanitizeText(in)
			twice := sanitizeText(once)
			if once != twice {
				t.Errorf("sanitize not idempotent for %q: %q != %q", in, once, twice)
			}
		}
	})
}

func TestSanitized(t *testing.T) {
	b := Bookmark{
		ID:          911,
		Title:       `Naughty <script>alert("xss");</script>`,
		URL:         "https://reference.com",
		Description: `<strong>fine</strong>`,
		Rating:      4,
	}

	got := sanitized(b)

	if strings.Contains(got.Title, "<script") {
		t.Errorf("title not sanitized: %q", got.Title)
	}
	if got.Description != "<strong>fine</strong>" {
		t.Errorf("description = %q, want safe markup kept", got.Description)
	}
	// url, id and rating pass through untouched
	if got.URL != b.URL || got.ID != b.ID || got.Rating != b.Rating {
		t.Errorf("non-text fields changed: %+v", got)
	}
}
