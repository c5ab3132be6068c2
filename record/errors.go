package record

import "errors"

// ErrMalformedRecord is returned by Reader for input lines that are not JSON objects.
var ErrMalformedRecord = errors.New("malformed record")
