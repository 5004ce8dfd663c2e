package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/vector"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type ArrowMetadata struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Color string `json:"color"`
}

type SnapshotMetadata struct {
	ID        string          `json:"id"`
	Scene     string          `json:"scene"`
	Timestamp time.Time       `json:"timestamp"`
	Vectors   int             `json:"vectors"`
	Arrows    []ArrowMetadata `json:"arrows"`
}

// Save writes the user-defined vectors of sc and its arrows under a new
// snapshot directory and returns the snapshot id. A failed save leaves no
// directory behind.
func (s *Store) Save(sc *scene.Scene) (id string, err error) {
	now := s.now()
	id = fmt.Sprintf("%s_%d", sc.Name, now.Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(dir)
			id = ""
		}
	}()

	named := make([]scene.Named, 0)
	for _, n := range sc.Vectors() {
		if !scene.IsBuiltin(n.Name) {
			named = append(named, n)
		}
	}

	meta := SnapshotMetadata{
		ID:        id,
		Scene:     sc.Name,
		Timestamp: now,
		Vectors:   len(named),
		Arrows:    make([]ArrowMetadata, 0, len(sc.Arrows)),
	}
	for _, a := range sc.Arrows {
		meta.Arrows = append(meta.Arrows, ArrowMetadata{From: a.From, To: a.To, Color: a.Color.Hex()})
	}

	if err := writeMetadata(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return "", fmt.Errorf("save %s: %w", id, err)
	}
	if err := writeVectors(filepath.Join(dir, "vectors.csv"), named); err != nil {
		return "", fmt.Errorf("save %s: %w", id, err)
	}
	return id, nil
}

func writeMetadata(path string, meta SnapshotMetadata) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeVectors(path string, named []scene.Named) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "x", "y", "z"}); err != nil {
		return err
	}
	for _, n := range named {
		row := []string{
			n.Name,
			strconv.FormatFloat(n.Value.X, 'g', -1, 64),
			strconv.FormatFloat(n.Value.Y, 'g', -1, 64),
			strconv.FormatFloat(n.Value.Z, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable snapshot, newest first.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotMetadata{}, nil
		}
		return nil, err
	}

	snaps := make([]SnapshotMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}

	sort.SliceStable(snaps, func(i, j int) bool {
		return snaps[i].Timestamp.After(snaps[j].Timestamp)
	})
	return snaps, nil
}

func (s *Store) Load(id string) (*SnapshotMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadVectors(id string) ([]scene.Named, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "vectors.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 4

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []scene.Named{}, nil
	}

	out := make([]scene.Named, 0, len(records)-1)
	for i, record := range records[1:] {
		var c [3]float64
		for j := range c {
			c[j], err = strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("vectors.csv row %d: %w", i+2, err)
			}
		}
		out = append(out, scene.Named{Name: record[0], Value: vector.V3(c[0], c[1], c[2])})
	}

	return out, nil
}

// LoadScene rebuilds the scene stored under id.
func (s *Store) LoadScene(id string) (*scene.Scene, error) {
	meta, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	vecs, err := s.LoadVectors(id)
	if err != nil {
		return nil, err
	}

	sc := scene.New(meta.Scene)
	for _, n := range vecs {
		if err := sc.Define(n.Name, n.Value); err != nil {
			return nil, err
		}
	}
	for _, a := range meta.Arrows {
		col, err := scene.ParseColor(a.Color)
		if err != nil {
			return nil, err
		}
		if err := sc.Connect(a.From, a.To, col); err != nil {
			return nil, err
		}
	}
	return sc, nil
}
