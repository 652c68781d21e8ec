package errors

import "errors"

// Custom application errors
var (
	ErrInvalidArgument   = errors.New("invalid argument")               // Malformed request parameters (pagination bounds, ids)
	ErrPageOutOfRange    = errors.New("page index out of range")        // Valid bounds but beyond the available data
	ErrBerryNotFound     = errors.New("berry not found")                // Berry missing or not owned by the caller
	ErrTodoNotFound      = errors.New("todo not found")                 // Todo missing or not owned by the caller
	ErrDatabaseOperation = errors.New("database operation failed")      // Generic database error
	ErrNotification      = errors.New("notification failed")            // Push or log notifier failure
	ErrScheduling        = errors.New("scheduling failed")              // Generic scheduling error
	ErrUnauthorized      = errors.New("unauthorized")                   // Missing or invalid bearer token
	ErrInternalServer    = errors.New("internal server error occurred") // Generic internal error
)
