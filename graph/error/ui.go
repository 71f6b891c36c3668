package grapherror

import "github.com/camilacod/DataVizVastProject/errors"

// defaultMessages provides user-friendly error messages for each category
var defaultMessages = map[Category]string{
	CategoryParse:       "Could not read the input graph - check that it is node-link JSON",
	CategoryIntegrity:   "An edge references a node that is not declared in the node list",
	CategoryDataQuality: "Some records carry unusable values and were excluded",
	CategoryIO:          "Could not write an output file - check the output directory",
	CategoryConfig:      "Invalid configuration",
	CategoryInternal:    "An internal error occurred",
}

// hints are attached for the CLI when a category has an obvious next step
var hints = map[Category]string{
	CategoryIntegrity: "rerun with --missing-nodes create to add undeclared nodes without attributes",
	CategoryIO:        "check that --out points to a writable directory",
}

// ToUIMessage converts the error to a user-friendly message suitable for CLI display
func (e *GraphError) ToUIMessage() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	return e.defaultMessageForCategory()
}

func (e *GraphError) defaultMessageForCategory() string {
	if msg, ok := defaultMessages[e.Category]; ok {
		return msg
	}
	return "An error occurred"
}

// Hint returns a suggested next step, or "" if the category has none
func (e *GraphError) Hint() string {
	return hints[e.Category]
}

// ToLogFields converts error to structured log fields
// This is useful for passing to logger.Errorw()
func (e *GraphError) ToLogFields() []interface{} {
	fields := []interface{}{
		"error_category", e.Category,
		"error_message", e.Error(),
		"user_message", e.ToUIMessage(),
	}

	if e.Subcategory != "" {
		fields = append(fields, "error_subcategory", e.Subcategory)
	}
	if e.Stage != "" {
		fields = append(fields, "stage", e.Stage)
	}
	if e.Path != "" {
		fields = append(fields, "path", e.Path)
	}

	for k, v := range e.Context {
		fields = append(fields, k, v)
	}

	return fields
}

// IsCategory checks if the error matches a specific category
func (e *GraphError) IsCategory(cat Category) bool {
	return e.Category == cat
}

// As extracts a *GraphError from an error chain
func As(err error) (*GraphError, bool) {
	var ge *GraphError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
