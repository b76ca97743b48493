package studyindex

import "errors"

// Sentinel errors for library operations.
var (
	ErrNotDirectory  = errors.New("not a directory")
	ErrListAssets    = errors.New("failed to list assets root")
	ErrListFolder    = errors.New("failed to list category folder")
	ErrWriteIndex    = errors.New("failed to write index page")
	ErrRenderIndex   = errors.New("failed to render index page")
	ErrReadPage      = errors.New("failed to read index page")
	ErrParsePage     = errors.New("failed to parse index page")
	ErrNilCatalog    = errors.New("catalog cannot be nil")
	ErrNilFilesystem = errors.New("filesystem cannot be nil")
)
