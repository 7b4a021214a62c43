// Package item implements the item resource: the record type, payload
// decoding and validation, the in-memory store, and the HTTP handlers.
//
// Names and descriptions are trimmed before storage. Length limits apply to
// the submitted value, before trimming, and count characters rather than
// bytes. Ids are assigned from a counter that only moves forward, so a
// deleted id is never handed out again by the same store.
//
// The handlers register on Go 1.22 method-less patterns and dispatch on
// the request method themselves so that an unsupported method gets a 405
// with an Allow header instead of falling through to a 404:
//
//	h := item.NewHandler(item.NewMemoryStore())
//	srv := server.New(server.WithHandler(h.Routes()))
package item
