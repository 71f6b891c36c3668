package grapherror

import (
	"errors"
	"testing"
	"time"

	qerrors "github.com/camilacod/DataVizVastProject/errors"
)

func TestGraphError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *GraphError
		want string
	}{
		{
			name: "returns underlying error message when Err is not nil",
			err: &GraphError{
				Err:         errors.New("unexpected end of JSON input"),
				UserMessage: "Could not read graph",
			},
			want: "unexpected end of JSON input",
		},
		{
			name: "returns UserMessage when Err is nil",
			err: &GraphError{
				UserMessage: "Could not read graph",
			},
			want: "Could not read graph",
		},
		{
			name: "prefixes stage and path",
			err: &GraphError{
				Err:   errors.New("permission denied"),
				Stage: StageEmit,
				Path:  "out/network_metrics.json",
			},
			want: "emit out/network_metrics.json: permission denied",
		},
		{
			name: "prefixes stage without path",
			err: &GraphError{
				Err:   errors.New("boom"),
				Stage: StageAggregate,
			},
			want: "aggregate: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("GraphError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGraphError_Unwrap(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	err := &GraphError{Err: underlyingErr}

	if got := err.Unwrap(); got != underlyingErr {
		t.Errorf("GraphError.Unwrap() = %v, want %v", got, underlyingErr)
	}
	if !errors.Is(err, underlyingErr) {
		t.Error("errors.Is should find the underlying error")
	}
}

func TestGraphError_IsSentinel(t *testing.T) {
	tests := []struct {
		category Category
		sentinel error
	}{
		{CategoryParse, qerrors.ErrParse},
		{CategoryIntegrity, qerrors.ErrReferentialIntegrity},
		{CategoryDataQuality, qerrors.ErrDataQuality},
		{CategoryIO, qerrors.ErrIO},
		{CategoryConfig, qerrors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			err := New(tt.category, errors.New("x"), "")
			wrapped := qerrors.Wrap(err, "pipeline")

			if !qerrors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%s error, sentinel) = false, want true", tt.category)
			}
			if tt.category != CategoryIO && qerrors.Is(wrapped, qerrors.ErrIO) {
				t.Errorf("%s error should not match ErrIO", tt.category)
			}
		})
	}

	internal := New(CategoryInternal, errors.New("x"), "")
	if qerrors.Is(internal, qerrors.ErrParse) {
		t.Error("internal error should not match ErrParse")
	}
}

func TestNew(t *testing.T) {
	underlyingErr := errors.New("open MC1_graph.json: no such file")
	err := New(CategoryParse, underlyingErr, "Input missing")

	if err.Err != underlyingErr {
		t.Errorf("New().Err = %v, want %v", err.Err, underlyingErr)
	}
	if err.Category != CategoryParse {
		t.Errorf("New().Category = %v, want %v", err.Category, CategoryParse)
	}
	if err.Context == nil || len(err.Context) != 0 {
		t.Errorf("New().Context should be initialized and empty, got %v", err.Context)
	}
	if time.Since(err.Timestamp) > time.Second {
		t.Errorf("New().Timestamp is too old: %v", err.Timestamp)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryIntegrity, "", "edge %d references unknown node %q", 7, "99")

	if err.Err == nil {
		t.Fatal("Newf().Err should not be nil")
	}
	want := `edge 7 references unknown node "99"`
	if err.Err.Error() != want {
		t.Errorf("Newf().Err.Error() = %q, want %q", err.Err.Error(), want)
	}
}

func TestGraphError_Chaining(t *testing.T) {
	err := New(CategoryParse, nil, "bad input")
	result := err.WithSubcategory(SubcategoryParseSchema).
		WithStage(StageLoad).
		WithPath("MC1_graph.json").
		WithContext("node_count", 3)

	if result != err {
		t.Error("builder methods should return the same instance for method chaining")
	}
	if err.Subcategory != SubcategoryParseSchema || err.Stage != StageLoad || err.Path != "MC1_graph.json" {
		t.Errorf("unexpected fields: %+v", err)
	}
	if err.Context["node_count"] != 3 {
		t.Errorf("Context[node_count] = %v, want 3", err.Context["node_count"])
	}
}
