package domain

import "time"

// Election groups candidates. StartDate and EndDate are free-form strings
// supplied by the admin; they are stored and echoed but never checked against
// vote timing.
type Election struct {
	ID          string
	Title       string
	Description string
	StartDate   *string
	EndDate     *string
	CreatedAt   time.Time
}

type Candidate struct {
	ID         string
	ElectionID string
	Name       string
	CreatedAt  time.Time
}
