package ballotsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is a signed in user. It is safe for concurrent use.
type Session struct {
	client *Client
	token  string
	user   User
}

// NewSession wraps a token obtained elsewhere.
func (c *Client) NewSession(token string, user User) *Session {
	return &Session{client: c, token: token, user: user}
}

// Token returns the bearer token.
func (s *Session) Token() string { return s.token }

// User returns the account as it was when the session was opened.
func (s *Session) User() User { return s.user }

func (s *Session) call(ctx context.Context, method, path string, body, target any, expected int) error {
	return s.client.call(ctx, method, path, s.token, body, target, expected)
}

// ============================================================================
// Voting
// ============================================================================

func (s *Session) ListElections(ctx context.Context) ([]Election, error) {
	var out []Election
	if err := s.call(ctx, http.MethodGet, "/elections", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) ListCandidates(ctx context.Context, electionID string) ([]Candidate, error) {
	var out []Candidate
	if err := s.call(ctx, http.MethodGet, "/candidates/"+url.PathEscape(electionID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CastVote records the session user's ballot and returns the vote id.
func (s *Session) CastVote(ctx context.Context, electionID, candidateID string) (string, error) {
	var out CastVoteResponse
	req := CastVoteRequest{ElectionID: electionID, CandidateID: candidateID}
	if err := s.call(ctx, http.MethodPost, "/vote", req, &out, http.StatusCreated); err != nil {
		return "", err
	}
	return out.VoteID, nil
}

func (s *Session) AllVotes(ctx context.Context) ([]Vote, error) {
	var out []Vote
	if err := s.call(ctx, http.MethodGet, "/all-votes", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Results(ctx context.Context, electionID string) (*ResultsResponse, error) {
	var out ResultsResponse
	if err := s.call(ctx, http.MethodGet, "/results/"+url.PathEscape(electionID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Administration (admin role)
// ============================================================================

func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := s.call(ctx, http.MethodGet, "/users", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateElection returns the new election's id.
func (s *Session) CreateElection(ctx context.Context, req CreateElectionRequest) (string, error) {
	var out CreatedResponse
	if err := s.call(ctx, http.MethodPost, "/elections/create", req, &out, http.StatusCreated); err != nil {
		return "", err
	}
	return out.ID, nil
}

// AddCandidate returns the new candidate's id.
func (s *Session) AddCandidate(ctx context.Context, electionID, name string) (string, error) {
	var out CreatedResponse
	req := AddCandidateRequest{ElectionID: electionID, Name: name}
	if err := s.call(ctx, http.MethodPost, "/candidates/add", req, &out, http.StatusCreated); err != nil {
		return "", err
	}
	return out.ID, nil
}

// DeleteElection removes the election with its candidates and votes.
func (s *Session) DeleteElection(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/election/"+url.PathEscape(id), nil, nil, http.StatusOK)
}

// DeleteCandidate removes the candidate and the votes cast for them.
func (s *Session) DeleteCandidate(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/candidate/"+url.PathEscape(id), nil, nil, http.StatusOK)
}

// DeleteUser removes the account and its votes.
func (s *Session) DeleteUser(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/user/"+url.PathEscape(id), nil, nil, http.StatusOK)
}

func (s *Session) MakeAdmin(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodPost, "/make-admin", UserIDRequest{ID: id}, nil, http.StatusOK)
}

func (s *Session) MakeVoter(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodPost, "/make-voter", UserIDRequest{ID: id}, nil, http.StatusOK)
}
