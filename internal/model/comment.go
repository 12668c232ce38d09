package model

import "time"

// Comment is a discussion entry under an event.
type Comment struct {
	ID               int64
	EventID          int64
	OriginalLanguage string
	Body             string
	CreatedAt        time.Time
}

// TranslatableFields returns the comment content subject to translation.
func (c Comment) TranslatableFields() map[string]string {
	return map[string]string{
		"body": c.Body,
	}
}
