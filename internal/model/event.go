package model

import "time"

// Event is an organizer-authored event. Title and description are
// immutable original content in OriginalLanguage; derived translations
// live in Translation rows.
type Event struct {
	ID               int64
	OriginalLanguage string
	Title            string
	Description      string
	Location         *string
	StartsAt         time.Time
	EndsAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TranslatableFields returns the event content subject to translation.
func (e Event) TranslatableFields() map[string]string {
	return map[string]string{
		"title":       e.Title,
		"description": e.Description,
	}
}
