// Package authapi is the transport client for the authentication backend.
// It submits login and registration payloads as JSON over POST and
// normalizes whatever comes back into a SubmissionResult.
//
// # Result Model
//
// The client deliberately separates two failure planes:
//
//   - HTTP failure statuses (4xx, 5xx) are ordinary results. The status code
//     and the parsed body travel back in SubmissionResult with OK=false, and
//     interpreting them is the error mapper's job.
//   - Transport failures are Go errors. A request that exceeded the
//     configured time budget wraps ErrTimeout; a request that never produced
//     a response (DNS, refused connection, TLS) wraps ErrNetwork.
//
// Response bodies are parsed best-effort: an empty or unrecognizable body
// leaves SubmissionResult.Payload nil and is never an error by itself.
//
// # Usage
//
//	client, err := authapi.NewClient(authapi.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 10 * time.Second,
//	})
//	if err != nil {
//	    return err
//	}
//
//	result, err := client.Login(ctx, authapi.Credentials{
//	    Email:    "user@example.com",
//	    Password: "ValidPass1",
//	})
//	switch {
//	case errors.Is(err, authapi.ErrTimeout):
//	    // took too long
//	case errors.Is(err, authapi.ErrNetwork):
//	    // never reached the server
//	case err == nil && result.OK:
//	    // signed in; result.Payload may carry a message and token
//	}
//
// Every request carries a generated X-Request-ID header, echoed in the
// result for log correlation. Exactly one attempt is made per call; retry
// policy, if any, belongs to the user pressing the button again.
//
// The subdirectory authapitest provides an in-process stub backend that
// speaks this package's wire format for tests and demos.
package authapi
