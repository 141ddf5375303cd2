// Package take records finished demo runs. A take is a host-level
// artifact: the engine itself never persists anything, but the TUI keeps a
// timeline of each reveal (tick index, revealed graphemes, elapsed
// seconds) and saves it here when the run completes.
package take

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// Point is one sampled moment of a reveal.
type Point struct {
	Tick     int
	Revealed int
	Elapsed  float64
}

// Metadata describes a saved take.
type Metadata struct {
	ID             string    `json:"id"`
	Scene          string    `json:"scene"`
	Timestamp      time.Time `json:"timestamp"`
	TickIntervalMs int       `json:"tick_interval_ms"`
	Graphemes      int       `json:"graphemes"`
	FinalElapsed   float64   `json:"final_elapsed"`
	Points         int       `json:"points"`
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Save writes one take as a directory holding metadata.json and
// timeline.csv, returning the take id.
func (s *Store) Save(scene string, tickIntervalMs, graphemes int, finalElapsed float64, points []Point) (string, error) {
	takeID := fmt.Sprintf("%s_%d", scene, time.Now().Unix())
	takeDir := filepath.Join(s.baseDir, takeID)

	if err := os.MkdirAll(takeDir, 0755); err != nil {
		return "", err
	}

	meta := Metadata{
		ID:             takeID,
		Scene:          scene,
		Timestamp:      time.Now(),
		TickIntervalMs: tickIntervalMs,
		Graphemes:      graphemes,
		FinalElapsed:   finalElapsed,
		Points:         len(points),
	}

	metaFile, err := os.Create(filepath.Join(takeDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(takeDir, "timeline.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"tick", "revealed", "elapsed"}); err != nil {
		return "", err
	}
	for _, p := range points {
		row := []string{
			strconv.Itoa(p.Tick),
			strconv.Itoa(p.Revealed),
			strconv.FormatFloat(p.Elapsed, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return takeID, nil
}

// List returns metadata for every saved take, newest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	takes := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		takes = append(takes, meta)
	}

	sort.Slice(takes, func(i, j int) bool {
		return takes[i].Timestamp.After(takes[j].Timestamp)
	})
	return takes, nil
}

func (s *Store) Load(takeID string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, takeID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTimeline reads the sampled points back; rows that fail to parse are
// skipped rather than failing the whole take.
func (s *Store) LoadTimeline(takeID string) ([]Point, error) {
	file, err := os.Open(filepath.Join(s.baseDir, takeID, "timeline.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(records))
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 3 {
			continue
		}
		tick, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		revealed, err := strconv.Atoi(rec[1])
		if err != nil {
			continue
		}
		elapsed, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			continue
		}
		points = append(points, Point{Tick: tick, Revealed: revealed, Elapsed: elapsed})
	}
	return points, nil
}
