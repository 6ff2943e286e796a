package googlebooks

import (
	"strings"

	"shelf/internal/domain/entity"

	books "google.golang.org/api/books/v1"
)

const (
	defaultTitle  = "Untitled"
	defaultAuthor = "Unknown"

	identifierISBN13 = "ISBN_13"
	identifierISBN10 = "ISBN_10"
)

func toCatalogBooks(volumes *books.Volumes) []*entity.CatalogBook {
	if volumes == nil {
		return []*entity.CatalogBook{}
	}

	out := make([]*entity.CatalogBook, 0, len(volumes.Items))
	for _, v := range volumes.Items {
		if v == nil {
			continue
		}
		out = append(out, toCatalogBook(v))
	}

	return out
}

// toCatalogBook maps a volume to the canonical shape. Absent fields fall back to defaults.
func toCatalogBook(v *books.Volume) *entity.CatalogBook {
	info := v.VolumeInfo
	if info == nil {
		info = &books.VolumeVolumeInfo{}
	}

	book := &entity.CatalogBook{
		ExternalID:    v.Id,
		Title:         strings.TrimSpace(info.Title),
		Authors:       nonNil(info.Authors),
		Description:   info.Description,
		ISBN:          pickISBN(info.IndustryIdentifiers),
		CoverImage:    coverImage(info.ImageLinks),
		Categories:    nonNil(info.Categories),
		RatingsCount:  int(info.RatingsCount),
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		Language:      info.Language,
	}

	if book.Title == "" {
		book.Title = defaultTitle
	}
	if len(book.Authors) > 0 {
		book.Author = strings.Join(book.Authors, ", ")
	} else {
		book.Author = defaultAuthor
	}
	if info.PageCount > 0 {
		pages := int(info.PageCount)
		book.PageCount = &pages
	}
	if info.AverageRating > 0 {
		rating := info.AverageRating
		book.AverageRating = &rating
	}

	return book
}

func pickISBN(ids []*books.VolumeVolumeInfoIndustryIdentifiers) string {
	var isbn10 string
	for _, id := range ids {
		if id == nil {
			continue
		}
		switch id.Type {
		case identifierISBN13:
			return id.Identifier
		case identifierISBN10:
			if isbn10 == "" {
				isbn10 = id.Identifier
			}
		}
	}

	return isbn10
}

func coverImage(links *books.VolumeVolumeInfoImageLinks) string {
	if links == nil {
		return ""
	}

	url := links.Thumbnail
	if url == "" {
		url = links.SmallThumbnail
	}

	return forceHTTPS(url)
}

func forceHTTPS(url string) string {
	if rest, ok := strings.CutPrefix(url, "http://"); ok {
		return "https://" + rest
	}

	return url
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

// NormalizeISBN strips separators and keeps digits and a trailing X.
func NormalizeISBN(isbn string) string {
	var b strings.Builder
	b.Grow(len(isbn))

	for _, r := range strings.ToUpper(isbn) {
		if (r >= '0' && r <= '9') || r == 'X' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
