// Package api serves the enumeration operations over HTTP.
//
// Every operation has one endpoint, POST /api/v1/rpc/{Operation}. The body
// is the operation's request record as JSON, or CBOR when the request sets
// Content-Type: application/cbor; an empty body is the zero request.
// Responses use JSON unless Accept asks for application/cbor. Failures use
// the {status, code, message} envelope in the same encoding:
//
//	not found        404 not_found
//	not implemented  501 not_implemented
//	invalid argument 400 bad_request
//	anything else    500 internal_error
//
// A WebSocket hub at /api/v1/ws pushes a snapshot.updated event on connect
// and again whenever the store installs a new snapshot. When security.jwt.secret is set every
// route except /health requires an HS256 bearer token; WebSocket clients
// may pass it as the access_token query parameter instead.
package api
