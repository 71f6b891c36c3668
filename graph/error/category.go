package grapherror

import "github.com/camilacod/DataVizVastProject/errors"

// Category represents the main error category for pipeline operations
type Category string

const (
	// CategoryParse indicates the input document could not be read or decoded
	CategoryParse Category = "parse"

	// CategoryIntegrity indicates an edge referencing an undeclared node
	CategoryIntegrity Category = "integrity"

	// CategoryDataQuality indicates an unusable per-record value (recovered by exclusion)
	CategoryDataQuality Category = "data_quality"

	// CategoryIO indicates an output artifact could not be written
	CategoryIO Category = "io"

	// CategoryConfig indicates invalid configuration
	CategoryConfig Category = "config"

	// CategoryInternal indicates internal errors
	CategoryInternal Category = "internal"
)

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// sentinel maps a category onto the errors package taxonomy so callers can
// use errors.Is(err, errors.ErrParse) without knowing about GraphError.
func (c Category) sentinel() error {
	switch c {
	case CategoryParse:
		return errors.ErrParse
	case CategoryIntegrity:
		return errors.ErrReferentialIntegrity
	case CategoryDataQuality:
		return errors.ErrDataQuality
	case CategoryIO:
		return errors.ErrIO
	case CategoryConfig:
		return errors.ErrInvalidConfig
	default:
		return nil
	}
}

// Stage names the pipeline stage an error originated from
type Stage string

const (
	StageLoad      Stage = "load"
	StageExtract   Stage = "extract"
	StageAggregate Stage = "aggregate"
	StageEmit      Stage = "emit"
)

// Parse Subcategories
const (
	// SubcategoryParseOpen indicates the input file could not be opened
	SubcategoryParseOpen = "open"

	// SubcategoryParseSyntax indicates the input is not valid JSON
	SubcategoryParseSyntax = "invalid_syntax"

	// SubcategoryParseSchema indicates the JSON is not a node-link document
	SubcategoryParseSchema = "schema"
)

// IO Subcategories
const (
	// SubcategoryIOCreate indicates the destination could not be created
	SubcategoryIOCreate = "create"

	// SubcategoryIOWrite indicates writing or flushing failed
	SubcategoryIOWrite = "write"
)
