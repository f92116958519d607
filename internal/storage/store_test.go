package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/bitleak/internal/script"
	"github.com/san-kum/bitleak/internal/trail"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	sc := script.Orbit(40, trail.Point{X: 200, Y: 200}, 50, 10)
	id, err := st.Save(sc)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Events != 40 {
		t.Errorf("expected 40 events, got %d", meta.Events)
	}
	if meta.Duration != 390 {
		t.Errorf("expected duration 390, got %v", meta.Duration)
	}
	if meta.Summary != nil {
		t.Error("expected no summary before replay")
	}

	got, err := st.LoadScript(id)
	if err != nil {
		t.Fatalf("load script failed: %v", err)
	}
	if len(got.Events) != len(sc.Events) || got.Name != sc.Name {
		t.Errorf("script mismatch: %d events named %s", len(got.Events), got.Name)
	}
}

func TestStoreReport(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	sc := script.Orbit(20, trail.Point{X: 100, Y: 100}, 20, 16)
	id, err := st.Save(sc)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := st.LoadLive(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound before replay, got %v", err)
	}

	rep, err := script.Play(context.Background(), sc, trail.DefaultTuning())
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SaveReport(id, rep); err != nil {
		t.Fatalf("save report failed: %v", err)
	}

	live, err := st.LoadLive(id)
	if err != nil {
		t.Fatalf("load live failed: %v", err)
	}
	if len(live) != len(rep.Live) {
		t.Fatalf("expected %d frames, got %d", len(rep.Live), len(live))
	}
	for i := range live {
		if live[i] != rep.Live[i] {
			t.Fatalf("frame %d: expected %v, got %v", i, rep.Live[i], live[i])
		}
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Summary == nil || meta.Summary.Peak != rep.Peak {
		t.Errorf("expected summary with peak %d, got %+v", rep.Peak, meta.Summary)
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	recs, err := st.List()
	if err != nil {
		t.Fatalf("list on empty store failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no recordings, got %d", len(recs))
	}

	for i := 0; i < 3; i++ {
		if _, err := st.Save(&script.Script{Name: "r"}); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	recs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Errorf("expected 3 recordings, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Timestamp.After(recs[i-1].Timestamp) {
			t.Error("expected newest first")
		}
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := st.LoadScript("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
