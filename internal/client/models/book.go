// Package models defines the client-side view of the storefront API:
// books, cart lines, users and search queries, plus the normalization that
// turns loosely shaped server payloads into values the views can trust.
package models

import "strings"

// Defaults applied by NormalizeBook to missing fields.
const (
	DefaultTitle       = "Untitled Book"
	DefaultAuthor      = "Unknown Author"
	DefaultImage       = "/images/Fiction.jpg"
	DefaultCategory    = "General"
	DefaultDescription = "No description available for this book."
)

// Book is a normalized catalog entry. ID is always non-empty.
type Book struct {
	ID          string
	Title       string
	Author      string
	Price       float64
	Image       string
	Category    string
	Rating      float64
	Description string
}

// BookPayload is the wire shape of a book. Every field is optional; the
// identity arrives as "_id" and, from some deployments, as "id".
type BookPayload struct {
	MongoID     string   `json:"_id,omitempty"`
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Author      string   `json:"author,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Identity returns the payload's id, preferring "_id".
func (p BookPayload) Identity() string {
	if id := strings.TrimSpace(p.MongoID); id != "" {
		return id
	}
	return strings.TrimSpace(p.ID)
}

// NormalizeBook fills defaults for missing fields. It reports ok=false when
// the payload has no identity; such entities must not be rendered.
func NormalizeBook(p BookPayload) (Book, bool) {
	id := p.Identity()
	if id == "" {
		return Book{}, false
	}

	b := Book{
		ID:          id,
		Title:       orDefault(p.Title, DefaultTitle),
		Author:      orDefault(p.Author, DefaultAuthor),
		Image:       orDefault(p.Image, DefaultImage),
		Category:    orDefault(p.Category, DefaultCategory),
		Description: orDefault(p.Description, DefaultDescription),
	}
	if p.Price != nil && *p.Price > 0 {
		b.Price = *p.Price
	}
	if p.Rating != nil && *p.Rating > 0 {
		b.Rating = *p.Rating
	}
	return b, true
}

// NormalizeBooks normalizes a page of results, keeping server order and
// dropping entries without identity.
func NormalizeBooks(payloads []BookPayload) []Book {
	books := make([]Book, 0, len(payloads))
	for _, p := range payloads {
		if b, ok := NormalizeBook(p); ok {
			books = append(books, b)
		}
	}
	return books
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
