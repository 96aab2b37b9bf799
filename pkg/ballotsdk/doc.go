/*
Package ballotsdk is a Go client for the BallotBox voting service, and the
home of the request and response types the service itself speaks.

# Client vs Session

Client covers the public endpoints: registration, sign in, password reset
and health. Signing in yields a Session that carries the bearer token for
everything else:

	client := ballotsdk.NewClient("http://localhost:8080")

	session, err := client.Login(ctx, "alice@example.com", "correct horse")
	if err != nil {
		return err
	}

	elections, err := session.ListElections(ctx)
	voteID, err := session.CastVote(ctx, elections[0].ID, candidateID)

Admin operations (creating elections, managing users) live on Session too;
the server answers 403 when the signed in user is not an admin.

# Errors

Any non-success response is returned as *APIError carrying the HTTP status
and the server's message:

	var apiErr *ballotsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		// already voted
	}

Sessions do not refresh. When the token expires, sign in again.
*/
package ballotsdk
