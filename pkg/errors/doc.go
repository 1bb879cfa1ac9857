// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to sample cpu usage",
//	    ctx.Err(),
//	    map[string]any{
//	        "collector": "cpu",
//	        "interval":  interval.String(),
//	    },
//	)
package errors
