package transfer

import (
	"errors"

	"github.com/thenoetrevino/doable/internal/models"
)

// Transfer errors
var (
	// ErrMalformedSnapshot wraps every decode or validation failure of an
	// imported document. Nothing is written when it is returned.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	ErrInvalidMode       = errors.New("invalid import mode (must be: merge, replace)")
	ErrUnsupportedFormat = errors.New("unsupported format (must be: json, yaml)")
)

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
