package messages

import "errors"

var (
	ErrFailedToOpenCatalog  = errors.New("failed to open messages catalog")
	ErrFailedToParseCatalog = errors.New("failed to parse messages catalog")
)
