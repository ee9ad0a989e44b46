package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrPostExists = errors.New("post already exists")

// Post is a record owned by the post service. CreatedByUserID references a
// user in the sibling service; there is no foreign key, only the principal
// resolved by the authentication gate at write time.
type Post struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	ImageURL        string       `json:"image_url,omitempty"`
	CreatedByUserID int64        `json:"created_by_user_id"`
	Status          RecordStatus `json:"-"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
