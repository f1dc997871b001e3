package store

import (
	"encoding/json"
	"io"
	"os"
)

type runExport struct {
	RunMetadata
	Results Results `json:"results"`
}

// ExportJSON writes a run's metadata and solved quantities as a single
// JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, res *Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{RunMetadata: *meta, Results: *res})
}

// ExportJSONStdout is ExportJSON to standard output.
func ExportJSONStdout(meta *RunMetadata, res *Results) error {
	return ExportJSON(os.Stdout, meta, res)
}
