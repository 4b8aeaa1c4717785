// Package transport is the HTTP collaborator behind the call dispatcher. It
// owns everything protocol-shaped: verbs, base URL resolution, headers,
// timeouts, redirect policy, authentication, retries, and an interceptor
// chain for cross-cutting behavior.
//
//	client, err := transport.New(transport.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 10 * time.Second,
//	    Auth:    transport.BearerAuth("token"),
//	}, transport.WithInterceptors(transport.RequestID(), transport.Logging(log)))
//
//	resp, err := client.Get(ctx, "/users/42", transport.WithQuery(map[string]string{"expand": "roles"}))
//
// Unlike most HTTP clients, a non-2xx status code is not an error here.
// Deciding what a status means belongs to the caller's resolver, so Do
// returns every well-formed response untouched and reserves errors for
// operational failures: timeouts, connection problems, and body
// encoding/decoding.
package transport
