package extract

// WorkRecord is one row of the Songs/Albums table.
// Optional text fields are "" when the attribute is absent.
type WorkRecord struct {
	ID            string `json:"id" yaml:"id"`
	Type          string `json:"type" yaml:"type"`
	Genre         string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Notable       bool   `json:"notable" yaml:"notable"`
	ReleaseDate   string `json:"release_date,omitempty" yaml:"release_date,omitempty"`
	NotorietyDate string `json:"notoriety_date,omitempty" yaml:"notoriety_date,omitempty"`
	WrittenDate   string `json:"written_date,omitempty" yaml:"written_date,omitempty"`
	Single        *bool  `json:"single,omitempty" yaml:"single,omitempty"` // set iff Type is Song
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
}

// ReleaseYear coerces ReleaseDate to a numeric year
func (w WorkRecord) ReleaseYear() (float64, error) {
	return ParseYear(w.ReleaseDate)
}

// NotorietyYear coerces NotorietyDate to a numeric year
func (w WorkRecord) NotorietyYear() (float64, error) {
	return ParseYear(w.NotorietyDate)
}

// EdgeRecord is one row of the flat edge table
type EdgeRecord struct {
	Source   string `json:"source" yaml:"source"`
	Target   string `json:"target" yaml:"target"`
	EdgeType string `json:"edge_type" yaml:"edge_type"`
}

// Tables holds everything the extractor produces, in graph iteration order
type Tables struct {
	Works []WorkRecord
	Edges []EdgeRecord
}

// Partition splits work ids by the notable flag
func (t Tables) Partition() (notable, nonNotable map[string]bool) {
	notable = make(map[string]bool)
	nonNotable = make(map[string]bool)
	for _, w := range t.Works {
		if w.Notable {
			notable[w.ID] = true
		} else {
			nonNotable[w.ID] = true
		}
	}
	return notable, nonNotable
}

// WorksOfType returns the works with the given type
func (t Tables) WorksOfType(workType string) []WorkRecord {
	var result []WorkRecord
	for _, w := range t.Works {
		if w.Type == workType {
			result = append(result, w)
		}
	}
	return result
}
