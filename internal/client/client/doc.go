// Package client talks to the customer REST API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     List, Create, Update and Delete over customer records.
//  2. An HTTP/JSON implementation (see HTTPClient) for the /users resource.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses become an
// *APIError carrying the status and the messages of the error envelope
// {"message": string | string[]}; bodies of any other shape leave Messages
// empty so callers fall back to their own wording (see UserMessage).
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
