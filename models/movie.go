package models

import "time"

// Sentinel values used by the confirm flow when the external search result
// omits a field.
const (
	UnknownYear   = 9999
	NoPoster      = "no_pic_available"
	PendingReview = "ADD REVIEW"
)

type Movie struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Year        int       `json:"year"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Review      string    `json:"review"`
	ImgURL      string    `json:"img_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieUpdate carries the fields of a partial edit. A nil field means
// "leave the stored value alone".
type MovieUpdate struct {
	Title       *string
	Year        *int
	Description *string
	Rating      *float64
	Review      *string
	ImgURL      *string
}

// IsEmpty reports whether the update would change nothing.
func (u MovieUpdate) IsEmpty() bool {
	return u.Title == nil && u.Year == nil && u.Description == nil &&
		u.Rating == nil && u.Review == nil && u.ImgURL == nil
}
