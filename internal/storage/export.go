package storage

import (
	"encoding/json"
	"os"

	"github.com/san-kum/mathkit/internal/numeric"
)

type exportPayload struct {
	Meta RunMetadata `json:"meta"`
	Xs   []float64   `json:"xs,omitempty"`
	Ys   []float64   `json:"ys,omitempty"`
}

// ExportJSONStdout writes a run's metadata and samples as indented JSON
// to standard output.
func ExportJSONStdout(meta *RunMetadata, series numeric.Series) error {
	payload := exportPayload{
		Meta: *meta,
		Xs:   series.Xs,
		Ys:   series.Ys,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
