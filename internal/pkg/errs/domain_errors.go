package errs

// Sentinels shared by every service's use case layer
var (
	// Input failed validation before any storage access
	ErrValidation = New("validation failed")

	// Storage failed; the unit of work was rolled back and the call may be retried
	ErrDatabaseOperationFailed = New("database operation failed")
)
