package metrics

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/camilacod/DataVizVastProject/errors"
)

// Count is one labelled tally
type Count struct {
	Key     string  `json:"key" yaml:"key"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Counts is a tally that remembers first-seen key order. Read methods
// treat a nil *Counts as empty.
// It encodes as a JSON/YAML object whose keys keep that order.
type Counts struct {
	keys   []string
	counts map[string]int
	total  int
}

// NewCounts returns an empty tally
func NewCounts() *Counts {
	return &Counts{counts: make(map[string]int)}
}

// Add increments key by one
func (c *Counts) Add(key string) {
	c.AddN(key, 1)
}

// AddN increments key by n
func (c *Counts) AddN(key string, n int) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key] += n
	c.total += n
}

// Get returns the tally for key
func (c *Counts) Get(key string) int {
	if c == nil {
		return 0
	}
	return c.counts[key]
}

// Total is the sum of all tallies
func (c *Counts) Total() int {
	if c == nil {
		return 0
	}
	return c.total
}

// Len is the number of distinct keys
func (c *Counts) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns keys in first-seen order
func (c *Counts) Keys() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.keys...)
}

// MostCommon returns tallies by descending count; ties keep first-seen order
func (c *Counts) MostCommon() []Count {
	if c == nil {
		return nil
	}
	result := make([]Count, len(c.keys))
	for i, k := range c.keys {
		result[i] = c.entry(k)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// Top returns at most n entries of MostCommon
func (c *Counts) Top(n int) []Count {
	all := c.MostCommon()
	if n >= 0 && n < len(all) {
		return all[:n]
	}
	return all
}

// Ordered returns tallies in first-seen order
func (c *Counts) Ordered() []Count {
	if c == nil {
		return nil
	}
	result := make([]Count, len(c.keys))
	for i, k := range c.keys {
		result[i] = c.entry(k)
	}
	return result
}

func (c *Counts) entry(key string) Count {
	n := c.counts[key]
	pct := 0.0
	if c.total > 0 {
		pct = float64(n) / float64(c.total) * 100
	}
	return Count{Key: key, Count: n, Percent: pct}
}

// MarshalJSON encodes the tally as an object in first-seen key order
func (c *Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c.counts[k]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, keeping the document's key order
func (c *Counts) UnmarshalJSON(data []byte) error {
	*c = *NewCounts()
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Newf("counts: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var n int
		if err := dec.Decode(&n); err != nil {
			return err
		}
		c.AddN(key, n)
	}
	_, err = dec.Token()
	return err
}

// MarshalYAML encodes the tally as a mapping in first-seen key order
func (c *Counts) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range c.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(c.counts[k])},
		)
	}
	return node, nil
}

