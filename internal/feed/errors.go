package feed

import "errors"

var (
	// ErrNoTopic is returned by Start when no snapshot topic is configured.
	ErrNoTopic = errors.New("feed: snapshot topic not configured")

	// ErrRejected wraps decode failures. The store keeps its previous
	// snapshot when a document is rejected.
	ErrRejected = errors.New("feed: snapshot rejected")
)
