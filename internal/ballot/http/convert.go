package http

import (
	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/pkg/ballotsdk"
)

func toUser(u domain.User) ballotsdk.User {
	return ballotsdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toElection(e domain.Election) ballotsdk.Election {
	return ballotsdk.Election{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		CreatedAt:   e.CreatedAt,
	}
}

func toCandidate(c domain.Candidate) ballotsdk.Candidate {
	return ballotsdk.Candidate{
		ID:         c.ID,
		ElectionID: c.ElectionID,
		Name:       c.Name,
		CreatedAt:  c.CreatedAt,
	}
}

func toVote(v domain.Vote) ballotsdk.Vote {
	return ballotsdk.Vote{
		ID:          v.ID,
		VoterID:     v.VoterID,
		ElectionID:  v.ElectionID,
		CandidateID: v.CandidateID,
		CreatedAt:   v.CreatedAt,
	}
}

// mapSlice always returns a non-nil slice so empty lists encode as [].
func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
