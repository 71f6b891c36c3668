package report

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	grapherr "github.com/camilacod/DataVizVastProject/graph/error"
	"github.com/camilacod/DataVizVastProject/metrics"
)

// Summary is the full aggregate report with run metadata
type Summary struct {
	RunID       string          `json:"run_id" yaml:"run_id"`
	Input       string          `json:"input" yaml:"input"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Version     string          `json:"version,omitempty" yaml:"version,omitempty"`
	Report      *metrics.Report `json:"report" yaml:"report"`
}

// WriteSummary writes the full report. A .yaml or .yml extension selects
// YAML; anything else is written as indented JSON.
func WriteSummary(path string, s Summary) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	default:
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return ioError(err, grapherr.SubcategoryIOWrite, path)
	}
	return writeFile(path, data)
}
