package frame

import "errors"

var (
	ErrSourceNotFound    = errors.New("frame source not found")
	ErrTruncatedSource   = errors.New("frame source truncated")
	ErrInvalidDimensions = errors.New("invalid frame dimensions")
	ErrInvalidHeader     = errors.New("invalid bitmap header")
)

func isKnown(err error) bool {
	return errors.Is(err, ErrSourceNotFound) ||
		errors.Is(err, ErrTruncatedSource) ||
		errors.Is(err, ErrInvalidDimensions) ||
		errors.Is(err, ErrInvalidHeader)
}
