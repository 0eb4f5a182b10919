package uitest

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"gopkg.in/yaml.v3"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing test
// doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a serializable record of one frame's drawing primitives.
type Snapshot struct {
	Ops []OpRecord `yaml:"ops"`
}

// OpRecord is the YAML form of a recorded primitive.
type OpRecord struct {
	Kind     string    `yaml:"kind"`
	Bounds   []float64 `yaml:"bounds,omitempty"`
	Color    []float64 `yaml:"color,omitempty"`
	Text     string    `yaml:"text,omitempty"`
	TextSize float64   `yaml:"textSize,omitempty"`
	Position []float64 `yaml:"position,omitempty"`
}

// CaptureSnapshot converts recorded ops to their serializable form.
func CaptureSnapshot(ops []Op) *Snapshot {
	snap := &Snapshot{Ops: make([]OpRecord, 0, len(ops))}
	for _, op := range ops {
		switch op := op.(type) {
		case QuadOp:
			b := op.Quad.Bounds
			snap.Ops = append(snap.Ops, OpRecord{
				Kind:   "quad",
				Bounds: []float64{b.Left, b.Top, b.Right, b.Bottom},
				Color:  []float64{op.Background.R, op.Background.G, op.Background.B, op.Background.A},
			})
		case TextOp:
			snap.Ops = append(snap.Ops, OpRecord{
				Kind:     "text",
				Text:     op.Text.Content,
				TextSize: op.Text.Size,
				Position: []float64{op.Position.X, op.Position.Y},
				Color:    []float64{op.Color.R, op.Color.G, op.Color.B, op.Color.A},
			})
		case PushLayerOp:
			b := op.Bounds
			snap.Ops = append(snap.Ops, OpRecord{
				Kind:   "pushLayer",
				Bounds: []float64{b.Left, b.Top, b.Right, b.Bottom},
			})
		case PopLayerOp:
			snap.Ops = append(snap.Ops, OpRecord{Kind: "popLayer"})
		}
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports both serializations. When QUILL_UPDATE_SNAPSHOTS=1 is set, the
// file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("QUILL_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: QUILL_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot %s: %v", path, err)
		return
	}

	if !reflect.DeepEqual(expected, s) {
		want, _ := yaml.Marshal(expected)
		got, _ := yaml.Marshal(s)
		t.Errorf("snapshot mismatch for %s\n--- want\n%s--- got\n%s\nTo update: QUILL_UPDATE_SNAPSHOTS=1 go test -run %s",
			path, want, got, t.Name())
	}
}

// UpdateFile writes the snapshot to the golden file, creating directories as
// needed.
func (s *Snapshot) UpdateFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot %s: %w", path, err)
	}
	return &snap, nil
}
