// Package github provides a persistent-connection client for the GitHub
// REST API (and compatible JSON APIs).
//
// The package centers on the Connection type: one Connection owns one
// persistent session to the API host and exposes Get, Post, and Patch
// with relative paths and JSON payloads. Authentication, header
// injection, status interpretation, and transparent aggregation of
// paginated list responses are handled internally so callers never
// touch transport details.
//
// # Features
//
//   - Base URL and protocol validation at connect time
//   - Basic auth or bearer token authentication per request
//   - Transparent Link-header pagination for GET, with ordered merging
//   - Tagged errors callers can branch on without parsing messages
//   - Context-aware operations for graceful cancellation
//
// # Usage
//
//	conn, err := github.Connect(github.Config{OAuthToken: token}, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Fetch all pages of a list endpoint as one slice.
//	repos, err := conn.Get(ctx, "/user/repos")
//
//	// Create a resource.
//	issue, err := conn.Post(ctx, "/repos/owner/repo/issues", body)
//
// A Connection performs requests strictly sequentially; callers that
// need parallel fetches should open one Connection per goroutine.
package github
