// Package service holds the application use cases. It validates requests at
// the boundary, runs the numerology engine and decorates its results with
// text from the content resolver. Delivery mechanisms (the HTTP API and the
// CLI) depend on the interfaces here, never on the engine directly.
package service
