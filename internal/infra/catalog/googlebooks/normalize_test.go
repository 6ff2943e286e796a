package googlebooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	books "google.golang.org/api/books/v1"
)

func TestPickISBN(t *testing.T) {
	tests := []struct {
		name string
		ids  []*books.VolumeVolumeInfoIndustryIdentifiers
		want string
	}{
		{name: "none", ids: nil, want: ""},
		{
			name: "isbn13 wins regardless of order",
			ids: []*books.VolumeVolumeInfoIndustryIdentifiers{
				{Type: "ISBN_10", Identifier: "0123456789"},
				{Type: "ISBN_13", Identifier: "9780123456786"},
			},
			want: "9780123456786",
		},
		{
			name: "falls back to isbn10",
			ids: []*books.VolumeVolumeInfoIndustryIdentifiers{
				{Type: "OTHER", Identifier: "OCLC:1"},
				{Type: "ISBN_10", Identifier: "0123456789"},
			},
			want: "0123456789",
		},
		{
			name: "other identifiers only",
			ids:  []*books.VolumeVolumeInfoIndustryIdentifiers{{Type: "OTHER", Identifier: "X"}, nil},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickISBN(tt.ids))
		})
	}
}

func TestCoverImage(t *testing.T) {
	assert.Equal(t, "", coverImage(nil))
	assert.Equal(t, "https://x/a.jpg", coverImage(&books.VolumeVolumeInfoImageLinks{Thumbnail: "http://x/a.jpg"}))
	assert.Equal(t, "https://x/s.jpg", coverImage(&books.VolumeVolumeInfoImageLinks{SmallThumbnail: "http://x/s.jpg"}))
	assert.Equal(t, "https://x/a.jpg", coverImage(&books.VolumeVolumeInfoImageLinks{Thumbnail: "https://x/a.jpg"}))
}

func TestToCatalogBook_MultipleAuthorsAndNilInfo(t *testing.T) {
	book := toCatalogBook(&books.Volume{
		Id: "v",
		VolumeInfo: &books.VolumeVolumeInfo{
			Title:   "Good Omens",
			Authors: []string{"Terry Pratchett", "Neil Gaiman"},
		},
	})
	assert.Equal(t, "Terry Pratchett, Neil Gaiman", book.Author)
	assert.Equal(t, []string{"Terry Pratchett", "Neil Gaiman"}, book.Authors)

	bare := toCatalogBook(&books.Volume{Id: "bare"})
	assert.Equal(t, "Untitled", bare.Title)
	assert.Equal(t, "Unknown", bare.Author)
	assert.NotNil(t, bare.Authors)
}

func TestNormalizeISBN(t *testing.T) {
	assert.Equal(t, "9780441478125", NormalizeISBN("978-0-441-47812-5"))
	assert.Equal(t, "080442957X", NormalizeISBN("0 8044 2957 x"))
	assert.Equal(t, "", NormalizeISBN("---"))
}

func TestClampResults(t *testing.T) {
	assert.Equal(t, 1, clampResults(0))
	assert.Equal(t, 10, clampResults(10))
	assert.Equal(t, 40, clampResults(99))
}
