package model

import "time"

// Setting is a key-value configuration entry.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
