package metrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCounts_Order(t *testing.T) {
	c := NewCounts()
	for _, k := range []string{"Song", "Person", "Song", "Album", "Person", "Song", "Label"} {
		c.Add(k)
	}

	assert.Equal(t, 7, c.Total())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"Song", "Person", "Album", "Label"}, c.Keys())

	common := c.MostCommon()
	keys := make([]string, len(common))
	for i, e := range common {
		keys[i] = e.Key
	}
	assert.Equal(t, []string{"Song", "Person", "Album", "Label"}, keys, "ties keep first-seen order")
	assert.InDelta(t, 3.0/7*100, common[0].Percent, 1e-9)

	assert.Len(t, c.Top(2), 2)
	assert.Len(t, c.Top(10), 4)
	assert.Equal(t, 0, c.Get("missing"))
}

func TestCounts_JSON(t *testing.T) {
	c := NewCounts()
	c.AddN("zeta", 2)
	c.Add("alpha")
	c.Add(`quote"d`)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":2,"alpha":1,"quote\"d":1}`, string(data))

	var decoded Counts
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c.Ordered(), decoded.Ordered())

	assert.Error(t, json.Unmarshal([]byte(`[1]`), &decoded))

	empty, err := json.Marshal(NewCounts())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestCounts_YAML(t *testing.T) {
	c := NewCounts()
	c.AddN("b", 2)
	c.Add("a")

	data, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "b: 2\na: 1\n", string(data))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Summary
	}{
		{"empty", nil, Summary{}},
		{"single", []float64{4}, Summary{Mean: 4, Median: 4, Max: 4}},
		{"odd", []float64{3, 1, 2}, Summary{Mean: 2, Median: 2, Max: 3}},
		{"even averages middle pair", []float64{1, 2, 3, 10}, Summary{Mean: 4, Median: 2.5, Max: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarize(tt.values))
		})
	}
}
