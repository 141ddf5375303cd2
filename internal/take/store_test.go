package take

import (
	"bytes"
	"encoding/json"
	"testing"
)

func samplePoints() []Point {
	return []Point{
		{Tick: 1, Revealed: 1, Elapsed: 0.03},
		{Tick: 2, Revealed: 2, Elapsed: 0.06},
		{Tick: 3, Revealed: 3, Elapsed: 0.09},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	id, err := s.Save("quantum", 30, 3, 0.09, samplePoints())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := s.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Scene != "quantum" || meta.Graphemes != 3 || meta.Points != 3 {
		t.Errorf("metadata mismatch: %+v", meta)
	}

	points, err := s.LoadTimeline(id)
	if err != nil {
		t.Fatalf("load timeline failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[2].Revealed != 3 || points[2].Elapsed != 0.09 {
		t.Errorf("timeline mismatch: %+v", points[2])
	}
}

func TestStoreList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	takes, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(takes) != 0 {
		t.Fatalf("expected empty store, got %d takes", len(takes))
	}

	if _, err := s.Save("pulse", 30, 10, 0.3, samplePoints()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	takes, err = s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(takes) != 1 || takes[0].Scene != "pulse" {
		t.Errorf("unexpected listing: %+v", takes)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	s := New("/nonexistent/stagecraft-test")
	takes, err := s.List()
	if err != nil {
		t.Fatalf("missing dir should list empty, got error: %v", err)
	}
	if len(takes) != 0 {
		t.Errorf("expected no takes, got %d", len(takes))
	}
}

func TestExportJSON(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	id, err := s.Save("horizon", 35, 3, 0.09, samplePoints())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	meta, err := s.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, samplePoints()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var out ExportData
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if out.Metadata.Scene != "horizon" || len(out.Revealed) != 3 {
		t.Errorf("export mismatch: %+v", out.Metadata)
	}
}
