package vocab

import "errors"

var (
	// ErrVocabularyNotFound is returned when no vocabulary exists for a column.
	ErrVocabularyNotFound = errors.New("vocabulary not found")
	// ErrInvalidColumn is returned for empty column names or names that would escape the loader root.
	ErrInvalidColumn = errors.New("invalid column name")
	// ErrInvalidConfig is returned when a loader is created with incomplete configuration.
	ErrInvalidConfig = errors.New("invalid loader configuration")
	// ErrAccessDenied is returned when the backing store rejects the credentials.
	ErrAccessDenied = errors.New("vocabulary access denied")
	// ErrDuplicateTokens is returned by LoadAll with WithRejectDuplicates for
	// vocabularies whose source repeats a token.
	ErrDuplicateTokens = errors.New("vocabulary repeats tokens")
)
