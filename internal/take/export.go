package take

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the full take in one JSON document.
type ExportData struct {
	Metadata Metadata  `json:"metadata"`
	Ticks    []int     `json:"ticks"`
	Revealed []int     `json:"revealed"`
	Elapsed  []float64 `json:"elapsed"`
}

// ExportJSON writes a take with its timeline to w.
func ExportJSON(w io.Writer, meta *Metadata, points []Point) error {
	data := ExportData{
		Metadata: *meta,
		Ticks:    make([]int, len(points)),
		Revealed: make([]int, len(points)),
		Elapsed:  make([]float64, len(points)),
	}
	for i, p := range points {
		data.Ticks[i] = p.Tick
		data.Revealed[i] = p.Revealed
		data.Elapsed[i] = p.Elapsed
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSONFile writes the export document to path.
func ExportJSONFile(path string, meta *Metadata, points []Point) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, meta, points)
}
