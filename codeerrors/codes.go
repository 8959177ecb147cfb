package codeerrors

// codes
const (
	CodeEmptyCollection = "empty_collection"
	CodeInvalidState    = "invalid_state"
	CodeNotFound        = "not_found"
	CodeDuplicateKey    = "duplicate_key"
	CodeBadRecord       = "bad_record"
)

// predefined errors
var (
	// ErrEmptyCollection is returned when an operation needs at least one element
	ErrEmptyCollection = Error{Code: CodeEmptyCollection, Message: "collection is empty"}
	// ErrInvalidState is returned when cursor or traversal preconditions are not met
	ErrInvalidState = Error{Code: CodeInvalidState, Message: "invalid state"}
	// ErrNotFound is returned when a key is absent
	ErrNotFound = Error{Code: CodeNotFound, Message: "not found"}
	// ErrDuplicateKey is returned on insert of an existing key
	ErrDuplicateKey = Error{Code: CodeDuplicateKey, Message: "duplicate key"}
	// ErrBadRecord is returned for malformed delimited records
	ErrBadRecord = Error{Code: CodeBadRecord, Message: "bad record"}
)
