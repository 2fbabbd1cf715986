package errs

// Error categories shared by every layer. Specific errors are marked with one
// of these so the transport can map them without knowing each sentinel.
var (
	ErrNotFound          = New("not found")
	ErrPermissionDenied  = New("permission denied")
	ErrInsufficientFunds = New("insufficient funds")
	ErrValidation        = New("validation failed")

	ErrIdempotencyConflict     = New("idempotency key reused with a different request")
	ErrDatabaseOperationFailed = New("database operation failed")
)

// Category marks a fresh sentinel with a category.
func Category(msg string, category error) error {
	return Mark(New(msg), category)
}
