package models

import "time"

// Event is a campus event listing entry
type Event struct {
	Title            string    `json:"title"`
	Date             time.Time `json:"date"`
	Description      *string   `json:"description"`
	RegistrationLink *string   `json:"registration_link"`
}

// Teacher is a teacher directory entry. Profile fields are null when the
// teacher has no teacher_info row.
type Teacher struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	Qualification *string `json:"qualification"`
	ClassHandling *string `json:"classHandling"`
	Achievements  *string `json:"achievements"`
	Picture       *string `json:"picture"`
}

// Row is a raw result row keyed by column name, used for listings whose
// column set is owned by the table (books, association members)
type Row = map[string]any
