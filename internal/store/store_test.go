package store

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/san-kum/springlab/internal/chain"
	"github.com/san-kum/springlab/internal/solve"
)

func solvedChain(t *testing.T) (chain.Chain, *solve.Solution) {
	t.Helper()
	ch, err := chain.New([]float64{1, 1, 1, 1}, []float64{1, 1, 1}, true, true)
	if err != nil {
		t.Fatal(err)
	}
	sol, err := solve.Solve(ch, solve.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return ch, sol
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	ch, sol := solvedChain(t)
	runID, err := st.Save(ch, 9.80665, sol)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.NumSprings != 4 || meta.NumMasses != 3 {
		t.Errorf("got %d springs, %d masses", meta.NumSprings, meta.NumMasses)
	}
	if !meta.FixTop || !meta.FixBottom {
		t.Error("anchor flags not persisted")
	}
	if meta.CondA != sol.CondA {
		t.Errorf("cond(A) not persisted: %v vs %v", meta.CondA, sol.CondA)
	}

	res, err := st.LoadResults(runID)
	if err != nil {
		t.Fatalf("LoadResults: %v", err)
	}
	if len(res.Displacements) != 3 {
		t.Fatalf("got %d displacements, want 3", len(res.Displacements))
	}
	if len(res.Tensions) != 4 || len(res.Elongations) != 4 {
		t.Errorf("got %d tensions, %d elongations, want 4 each",
			len(res.Tensions), len(res.Elongations))
	}
	for i := range res.Displacements {
		if math.Abs(res.Displacements[i]-sol.Displacements.AtVec(i)) > 1e-5 {
			t.Errorf("displacement %d not round-tripped: %v vs %v",
				i, res.Displacements[i], sol.Displacements.AtVec(i))
		}
	}
}

func TestStore_List(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	ch, sol := solvedChain(t)
	if _, err := st.Save(ch, 9.80665, sol); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestStore_BackToBackSavesDoNotCollide(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	ch, sol := solvedChain(t)

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		id, err := st.Save(ch, 9.80665, sol)
		if err != nil {
			t.Fatal(err)
		}
		if ids[id] {
			t.Fatalf("run id %s issued twice", id)
		}
		ids[id] = true
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 5 {
		t.Errorf("expected 5 runs, got %d", len(runs))
	}
}

func TestStore_ListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d", len(runs))
	}
}

func TestStore_LoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	ch, sol := solvedChain(t)
	runID, err := st.Save(ch, 9.80665, sol)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	res, err := st.LoadResults(runID)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, res); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded["id"] != runID {
		t.Errorf("exported id = %v, want %s", decoded["id"], runID)
	}
	if _, ok := decoded["results"]; !ok {
		t.Error("export missing results")
	}
}
