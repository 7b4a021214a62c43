// Package api assembles the HTTP service: it maps the loaded configuration
// onto the server, registers the item routes over an in-memory store, and
// runs until the context is cancelled or a termination signal arrives.
//
// Endpoints:
//
//	GET    /                 service banner and route list
//	GET    /health           liveness
//	GET    /ready            readiness
//	GET    /version          version, build time, commit hash, environment
//	GET    /metrics          Prometheus metrics
//	GET    /api/items        list items
//	POST   /api/items        create an item
//	GET    /api/items/{id}   get an item
//	PUT    /api/items/{id}   partially update an item
//	DELETE /api/items/{id}   delete an item
//
// Every 4xx and 5xx response carries the same JSON error envelope:
//
//	{
//	  "error": "HTTP_404",
//	  "message": "Item ID 999 not found",
//	  "detail": "Item ID 999 not found",
//	  "requestId": "5f0c...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// Validation failures use "VALIDATION_ERROR" with status 422 and carry the
// field-level errors in "detail". Unexpected faults use
// "INTERNAL_SERVER_ERROR" with a fixed message.
package api
