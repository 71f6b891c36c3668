package grapherror

import (
	"fmt"
	"time"

	"github.com/camilacod/DataVizVastProject/errors"
)

// GraphError represents an error in the analysis pipeline with structured context
type GraphError struct {
	Err         error                  // Underlying error
	Category    Category               // Main category
	Subcategory string                 // Optional subcategory
	Stage       Stage                  // Pipeline stage that failed
	Path        string                 // File the stage was reading or writing
	UserMessage string                 // User-friendly message for CLI display
	Context     map[string]interface{} // Additional context for debugging
	Timestamp   time.Time              // When the error occurred
}

// Error implements the error interface.
// The stage and path prefix the message so a failure always names both.
func (e *GraphError) Error() string {
	msg := e.UserMessage
	if e.Err != nil {
		msg = e.Err.Error()
	}

	switch {
	case e.Stage != "" && e.Path != "":
		return fmt.Sprintf("%s %s: %s", e.Stage, e.Path, msg)
	case e.Stage != "":
		return fmt.Sprintf("%s: %s", e.Stage, msg)
	default:
		return msg
	}
}

// Unwrap returns the underlying error for errors.Is/As compatibility
func (e *GraphError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's category
func (e *GraphError) Is(target error) bool {
	s := e.Category.sentinel()
	return s != nil && target == s
}

// New creates a new GraphError with the specified category and messages
func New(category Category, err error, userMsg string) *GraphError {
	return &GraphError{
		Err:         err,
		Category:    category,
		UserMessage: userMsg,
		Context:     make(map[string]interface{}),
		Timestamp:   time.Now(),
	}
}

// Newf creates a new GraphError with a formatted error message
func Newf(category Category, userMsg, format string, args ...interface{}) *GraphError {
	return &GraphError{
		Err:         errors.Newf(format, args...),
		Category:    category,
		UserMessage: userMsg,
		Context:     make(map[string]interface{}),
		Timestamp:   time.Now(),
	}
}

// WithSubcategory adds a subcategory to the error
func (e *GraphError) WithSubcategory(sub string) *GraphError {
	e.Subcategory = sub
	return e
}

// WithStage records the pipeline stage
func (e *GraphError) WithStage(stage Stage) *GraphError {
	e.Stage = stage
	return e
}

// WithPath records the file involved
func (e *GraphError) WithPath(path string) *GraphError {
	e.Path = path
	return e
}

// WithContext adds a context key-value pair for debugging
func (e *GraphError) WithContext(key string, value interface{}) *GraphError {
	e.Context[key] = value
	return e
}
