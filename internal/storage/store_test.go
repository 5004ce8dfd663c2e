package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/galileo/internal/motion"
	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/vector"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New("demo")
	if err := s.Define("v", vector.V3(2.0, 3, 5)); err != nil {
		t.Fatal(err)
	}
	if err := s.Define("w", vector.V3(3.0, 2, 1)); err != nil {
		t.Fatal(err)
	}
	black, _ := scene.ParseColor("black")
	red, _ := scene.ParseColor("red")
	_ = s.Connect(scene.Origin, "v", black)
	_ = s.Connect("v", "w", red)
	return s
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	id, err := st.Save(testScene(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty snapshot id")
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Scene != "demo" {
		t.Errorf("expected scene 'demo', got '%s'", meta.Scene)
	}
	if meta.Vectors != 2 {
		t.Errorf("expected 2 vectors, got %d", meta.Vectors)
	}
	if len(meta.Arrows) != 2 {
		t.Errorf("expected 2 arrows, got %d", len(meta.Arrows))
	}

	vecs, err := st.LoadVectors(id)
	if err != nil {
		t.Fatalf("load vectors failed: %v", err)
	}
	if len(vecs) != 2 || vecs[0].Name != "v" || vecs[0].Value != vector.V3(2.0, 3, 5) {
		t.Errorf("unexpected vectors %+v", vecs)
	}
}

func TestStoreLoadScene(t *testing.T) {
	st := New(t.TempDir())
	orig := testScene(t)
	id, err := st.Save(orig)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := st.LoadScene(id)
	if err != nil {
		t.Fatalf("load scene failed: %v", err)
	}
	if len(got.Arrows) != len(orig.Arrows) {
		t.Fatalf("expected %d arrows, got %d", len(orig.Arrows), len(got.Arrows))
	}
	for i := range got.Arrows {
		if got.Arrows[i] != orig.Arrows[i] {
			t.Errorf("arrow %d: expected %+v, got %+v", i, orig.Arrows[i], got.Arrows[i])
		}
	}
	w, err := got.Lookup("w")
	if err != nil || w != vector.V3(3.0, 2, 1) {
		t.Errorf("w = %v, %v", w, err)
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	snaps, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected 0 snapshots, got %d", len(snaps))
	}

	if _, err := st.Save(testScene(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	snaps, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(snaps) != 1 {
		t.Errorf("expected 1 snapshot, got %d", len(snaps))
	}
}

func TestStoreSaveFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	at := time.Unix(1700000000, 0)
	st.now = func() time.Time { return at }

	// A directory where the CSV file should go makes the second write fail.
	snap := filepath.Join(dir, "demo_1700000000")
	if err := os.MkdirAll(filepath.Join(snap, "vectors.csv"), 0755); err != nil {
		t.Fatal(err)
	}

	id, err := st.Save(testScene(t))
	if err == nil {
		t.Fatal("expected save to fail")
	}
	if id != "" {
		t.Errorf("expected empty id on failure, got %q", id)
	}
	if _, err := os.Stat(snap); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("partial snapshot left behind: %v", err)
	}
	if snaps, _ := st.List(); len(snaps) != 0 {
		t.Errorf("expected no snapshots, got %d", len(snaps))
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestWriteTrajectory(t *testing.T) {
	result := &motion.Result{
		States: []vector.Vec3d{vector.V3(1.0, 0, 0), vector.V3(0.99, 0.01, 0)},
		Times:  []float64{0, 0.01},
		Drift:  1e-4,
	}

	var buf bytes.Buffer
	cfg := motion.Config{Dt: 0.01, Duration: 0.01}
	if err := WriteTrajectory(&buf, "v", "rk4", cfg, result); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data TrajectoryData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if data.Steps != 2 || data.States[1] != [3]float64{0.99, 0.01, 0} {
		t.Errorf("unexpected trajectory %+v", data)
	}
}
