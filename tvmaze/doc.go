// Package tvmaze provides a typed client for the TVMaze REST API.
//
// Every method issues exactly one GET request, decodes the JSON response into
// the matching record type and returns it. There is no caching, no retrying
// and no rate limiting; callers that need those wrap the client.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tvmaze.NewClient(tvmaze.Config{
//		Product: tvmaze.ProductInfo{Name: "myapp", Version: "1.0.0"},
//	}, logger, tvmaze.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	show, err := client.GetShow(ctx, 82, "cast", "nextepisode")
//
// The Config passed to NewClient is copied, so changing it afterwards does not
// affect the client.
//
// # Query strings
//
// Parameters are written in the order the operation adds them. When an API key
// is configured it is always the last parameter. A single embed selector is
// sent as embed=<name>; several are each sent as embed[]=<name>.
//
// # Error Handling
//
// Failures are reported as one of:
//
//   - ErrInvalidArgument: the call was rejected before any request was made
//   - *TransportError: no response was received
//   - *APIError: TVMaze answered with a non-2xx status; errors.Is matches
//     ErrNotFound for 404 and ErrRateLimited for 429
//   - *DecodeError: the body was not the expected JSON
//
// For example, an episode that does not exist:
//
//	ep, err := client.GetEpisodeByNumber(ctx, 1, 1, 99)
//	if errors.Is(err, tvmaze.ErrNotFound) {
//		// no such episode
//	}
package tvmaze
