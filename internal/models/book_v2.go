package models

// BookV2 is the structured record served by the v2 store. IDs are assigned
// by the store, never by clients.
type BookV2 struct {
	ID            int    `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	Author        string `json:"author" db:"author"`
	Description   string `json:"description" db:"description"`
	Rating        int    `json:"rating" db:"rating"`
	PublishedDate int    `json:"published_date" db:"published_date"`
}

// BookRequest is the create/update payload. Pointers let validation tell a
// missing field from a zero value.
type BookRequest struct {
	ID            *int    `json:"id,omitempty"`
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Description   *string `json:"description"`
	Rating        *int    `json:"rating"`
	PublishedDate *int    `json:"published_date"`
}

// Book converts a validated request. Missing fields become zero values and
// a missing id becomes 0, which never matches a stored book.
func (r BookRequest) Book() BookV2 {
	var b BookV2
	if r.ID != nil {
		b.ID = *r.ID
	}
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.Description != nil {
		b.Description = *r.Description
	}
	if r.Rating != nil {
		b.Rating = *r.Rating
	}
	if r.PublishedDate != nil {
		b.PublishedDate = *r.PublishedDate
	}
	return b
}
