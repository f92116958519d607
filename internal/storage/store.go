package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/bitleak/internal/script"
)

const (
	metadataFile = "metadata.json"
	scriptFile   = "script.yaml"
	framesFile   = "frames.csv"
)

var ErrNotFound = errors.New("storage: recording not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RecordingMetadata struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	FPS       int       `json:"fps"`
	Events    int       `json:"events"`
	Duration  float64   `json:"duration_ms"`
	Summary   *Summary  `json:"summary,omitempty"`
}

// Summary is filled in once a recording has been replayed and saved.
type Summary struct {
	Frames  int `json:"frames"`
	Spawned int `json:"spawned"`
	Peak    int `json:"peak"`
	Leaked  int `json:"leaked"`
}

// Save stores a recording under a fresh ID.
func (s *Store) Save(sc *script.Script) (string, error) {
	id := uuid.NewString()
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	if err := script.Save(filepath.Join(dir, scriptFile), sc); err != nil {
		return "", err
	}

	meta := RecordingMetadata{
		ID:        id,
		Name:      sc.Name,
		Timestamp: time.Now(),
		Seed:      sc.Seed,
		FPS:       sc.FPS,
		Events:    len(sc.Events),
		Duration:  sc.Duration(),
	}
	if err := s.writeMeta(&meta); err != nil {
		return "", err
	}
	return id, nil
}

// SaveReport attaches a replay report to an existing recording.
func (s *Store) SaveReport(id string, rep *script.Report) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(s.baseDir, id, framesFile))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"frame", "time_ms", "live"}); err != nil {
		return err
	}
	for i, live := range rep.Live {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(float64(i)*rep.Step, 'f', 3, 64),
			strconv.FormatFloat(live, 'f', 0, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	meta.Summary = &Summary{
		Frames:  rep.Frames,
		Spawned: rep.Spawned,
		Peak:    rep.Peak,
		Leaked:  rep.Leaked,
	}
	return s.writeMeta(meta)
}

// List returns every readable recording, newest first.
func (s *Store) List() ([]RecordingMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RecordingMetadata{}, nil
		}
		return nil, err
	}

	recs := make([]RecordingMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		recs = append(recs, *meta)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Timestamp.After(recs[j].Timestamp)
	})
	return recs, nil
}

func (s *Store) Load(id string) (*RecordingMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta RecordingMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadScript(id string) (*script.Script, error) {
	if _, err := s.Load(id); err != nil {
		return nil, err
	}
	return script.Load(filepath.Join(s.baseDir, id, scriptFile))
}

// LoadLive reads the per-frame live counts written by SaveReport.
func (s *Store) LoadLive(id string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no replay saved for %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	live := make([]float64, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 3 {
			continue
		}
		v, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		live = append(live, v)
	}
	return live, nil
}

func (s *Store) writeMeta(meta *RecordingMetadata) error {
	file, err := os.Create(filepath.Join(s.baseDir, meta.ID, metadataFile))
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
