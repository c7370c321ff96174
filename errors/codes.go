package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Configuration errors
const (
	// ErrCodeConfigParse indicates a configuration source could not be parsed.
	ErrCodeConfigParse ErrorCode = "CONFIG_PARSE"
	// ErrCodeIO indicates a file could not be read or written.
	ErrCodeIO ErrorCode = "IO_ERROR"
)
