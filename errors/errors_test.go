package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
		check    func(error) bool
	}{
		{"parse", ErrParse, IsParseError},
		{"data quality", ErrDataQuality, IsDataQualityError},
		{"io", ErrIO, IsIOError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.sentinel, "MC1_graph.json")
			err = Wrap(err, "load")

			assert.True(t, Is(err, tt.sentinel))
			assert.True(t, tt.check(err))
			assert.Contains(t, err.Error(), "MC1_graph.json")
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	err := Wrap(ErrParse, "bad json")

	assert.False(t, Is(err, ErrIO))
	assert.False(t, Is(err, ErrReferentialIntegrity))
	assert.False(t, IsDataQualityError(err))
	assert.False(t, IsParseError(nil))
}

func TestNewDataQualityError(t *testing.T) {
	err := NewDataQualityError("release_date %q is not numeric", "unknown")

	require.Error(t, err)
	assert.True(t, IsDataQualityError(err))
	assert.Contains(t, err.Error(), `release_date "unknown" is not numeric`)
}

func TestNewInvalidConfigError(t *testing.T) {
	err := NewInvalidConfigError("analysis.top_n must be > 0, got %d", -1)

	assert.True(t, Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "got -1")
}

func TestWithHint(t *testing.T) {
	err := WithHint(Wrap(ErrReferentialIntegrity, "edge 3 -> 99"), "rerun with --missing-nodes create")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "rerun with --missing-nodes create", hints[0])
	assert.True(t, Is(err, ErrReferentialIntegrity))
}

func TestWithDetailf(t *testing.T) {
	err := WithDetailf(New("write failed"), "path=%s", "out/network_metrics.json")

	details := GetAllDetails(err)
	require.Len(t, details, 1)
	assert.Equal(t, "path=out/network_metrics.json", details[0])
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleWrap() {
	err := Wrap(ErrIO, "write edge_analysis.json")
	fmt.Println(err)
	// Output: write edge_analysis.json: io error
}
