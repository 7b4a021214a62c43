// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Domain packages return *StructuredError values and the HTTP boundary in
// pkg/server is the only place that turns them into status codes.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    fmt.Sprintf("Item ID %d not found", id),
//	    item.ErrNotFound,
//	    map[string]any{"id": id},
//	)
//
// Validation failures carry one FieldError per offending field:
//
//	err := errors.NewValidation(errors.ErrCodeValidationFailed, []errors.FieldError{
//	    {Type: "missing", Loc: []string{"body", "name"}, Msg: "Field required"},
//	})
package errors
