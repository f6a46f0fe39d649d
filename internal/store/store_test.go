package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mpelletier/liaison/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProgressRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p := progress.NewUserProgress()
	p.Level = 3
	p.Experience = 450
	p.TotalQuizzes = 12
	p.TotalCorrect = 9
	p.StreakDays = 4
	p.RulesMastery["contraction-au"] = &progress.RuleMasteryRecord{
		RuleID:      "contraction-au",
		Attempts:    6,
		Correct:     5,
		Level:       2,
		TotalPoints: 60,
	}

	if err := repo.Save(ctx, DefaultProgressKey, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Load(ctx, DefaultProgressKey)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil for a saved document")
	}
	if got.Level != 3 || got.Experience != 450 {
		t.Errorf("level/xp = %d/%d, want 3/450", got.Level, got.Experience)
	}
	if got.TotalQuizzes != 12 || got.TotalCorrect != 9 {
		t.Errorf("totals = %d/%d, want 12/9", got.TotalQuizzes, got.TotalCorrect)
	}
	rec, ok := got.RulesMastery["contraction-au"]
	if !ok {
		t.Fatal("rule record missing after round trip")
	}
	if rec.Attempts != 6 || rec.Correct != 5 || rec.Level != 2 || rec.TotalPoints != 60 {
		t.Errorf("record = %+v, want 6/5 level 2, 60 points", rec)
	}
}

func TestProgressRepo_SaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	first := progress.NewUserProgress()
	first.TotalQuizzes = 1
	if err := repo.Save(ctx, DefaultProgressKey, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := progress.NewUserProgress()
	second.TotalQuizzes = 2
	if err := repo.Save(ctx, DefaultProgressKey, second); err != nil {
		t.Fatalf("Save (overwrite): %v", err)
	}

	got, err := repo.Load(ctx, DefaultProgressKey)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.TotalQuizzes != 2 {
		t.Errorf("TotalQuizzes = %d, want 2", got.TotalQuizzes)
	}
}

func TestProgressRepo_LoadMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.ProgressRepo().Load(context.Background(), "no-such-key")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("Load = %+v, want nil for a missing key", got)
	}
}

func TestProgressRepo_LoadCorrupt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cases := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"wrong shape", `{"rulesMastery": "not an object"}`},
		{"missing required fields", `{"rulesMastery": {}}`},
		{"negative counter", `{"rulesMastery": {}, "totalQuizzes": -1, "totalCorrect": 0, "level": 1, "experience": 0}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.DB().ExecContext(ctx,
				`INSERT INTO progress (key, data) VALUES (?, ?)
				 ON CONFLICT(key) DO UPDATE SET data = excluded.data`,
				"corrupt", c.data)
			if err != nil {
				t.Fatalf("seed corrupt row: %v", err)
			}

			got, err := s.ProgressRepo().Load(ctx, "corrupt")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got != nil {
				t.Errorf("Load = %+v, want nil for corrupt data", got)
			}
		})
	}
}

func TestProgressRepo_Delete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, DefaultProgressKey, progress.NewUserProgress()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, DefaultProgressKey); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := repo.Load(ctx, DefaultProgressKey)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("Load after Delete = %+v, want nil", got)
	}

	// Deleting a missing key is not an error.
	if err := repo.Delete(ctx, "no-such-key"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestDecodeProgress_Valid(t *testing.T) {
	raw := []byte(`{
		"rulesMastery": {
			"verb-aller": {"ruleId": "verb-aller", "attempts": 3, "correct": 2, "level": 1}
		},
		"totalQuizzes": 3, "totalCorrect": 2, "streakDays": 1, "level": 1, "experience": 20
	}`)
	p, err := decodeProgress(raw)
	if err != nil {
		t.Fatalf("decodeProgress: %v", err)
	}
	if p.RulesMastery["verb-aller"].Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", p.RulesMastery["verb-aller"].Attempts)
	}
}
