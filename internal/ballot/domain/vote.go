package domain

import "time"

// Vote is one ballot. The store guarantees at most one per (VoterID,
// ElectionID).
type Vote struct {
	ID          string
	VoterID     string
	ElectionID  string
	CandidateID string
	CreatedAt   time.Time
}

// Tally is the vote count for one candidate of an election.
type Tally struct {
	CandidateID   string
	CandidateName string
	TotalVotes    int64
}
