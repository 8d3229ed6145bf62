package txt2html

import (
	"errors"

	"github.com/alnah/go-txt2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyModel = errors.New("model template cannot be empty")

	// Article errors.
	ErrMalformedArticle = pipeline.ErrMalformedArticle
	ErrEmptySlug        = errors.New("title produces an empty slug")

	// Settings validation errors.
	ErrInvalidPolicy = errors.New("invalid diacritics policy")
	ErrInvalidSite   = errors.New("invalid site settings")
	ErrInvalidStyles = errors.New("invalid paragraph styles")
)
