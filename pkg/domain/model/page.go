package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DirectoryFilter selects the records the directory search returns
type DirectoryFilter struct {
	Status         string
	LastMarkedFrom time.Time
	LastMarkedTo   time.Time
}

// NewLastMarkedFilter returns the filter for users flagged between the start of
// the previous UTC calendar day and now
func NewLastMarkedFilter(now time.Time) DirectoryFilter {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return DirectoryFilter{
		Status:         NotMyUserStatus,
		LastMarkedFrom: today.AddDate(0, 0, -1),
		LastMarkedTo:   now,
	}
}

// PageRequest is one directory search request
type PageRequest struct {
	Offset int
	Limit  int
	Filter DirectoryFilter
}

// Validate validates the page request
func (p *PageRequest) Validate() error {
	if p.Offset < 0 {
		return goerr.Wrap(ErrInvalidPage, "offset must not be negative", goerr.V("offset", p.Offset))
	}
	if p.Limit <= 0 {
		return goerr.Wrap(ErrInvalidPage, "limit must be positive", goerr.V("limit", p.Limit))
	}
	if p.Filter.LastMarkedTo.Before(p.Filter.LastMarkedFrom) {
		return goerr.Wrap(ErrInvalidPage, "window ends before it starts",
			goerr.V("from", p.Filter.LastMarkedFrom),
			goerr.V("to", p.Filter.LastMarkedTo))
	}
	return nil
}
