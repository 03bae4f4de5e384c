package gamecatalog

import "testing"

func TestCatalogShape(t *testing.T) {
	all := Games()
	if len(all) < 4 || len(all) > 8 {
		t.Fatalf("catalog has %d games, expected between 4 and 8", len(all))
	}
	if RequiredCount() == 0 {
		t.Fatal("catalog must mark at least one game required")
	}
	if LearnCount() == 0 {
		t.Fatal("catalog must have a learn section")
	}
	seen := map[string]bool{}
	for _, g := range all {
		if seen[g.ID] {
			t.Errorf("duplicate game id %q", g.ID)
		}
		seen[g.ID] = true
		if g.Section != SectionLearn && g.Section != SectionChallenge {
			t.Errorf("game %q has unknown section %q", g.ID, g.Section)
		}
		if g.CompleteOn != CompleteOnPerfect && g.CompleteOn != CompleteOnFinish {
			t.Errorf("game %q has unknown completion criterion %q", g.ID, g.CompleteOn)
		}
	}
}

func TestRequiredGamesAreLearnSection(t *testing.T) {
	// Sequence unlock reads the learn section; a required challenge game
	// would deadlock units behind its own section gate.
	for _, g := range Games() {
		if g.Required && g.Section != SectionLearn {
			t.Errorf("required game %q must be in the learn section", g.ID)
		}
	}
}

func TestAttemptCompletes(t *testing.T) {
	perfect, _ := Get(GameMatching)
	finish, _ := Get(GameFlashcards)

	tests := []struct {
		name     string
		game     Game
		score    int
		finished bool
		want     bool
	}{
		{name: "perfect criterion met", game: perfect, score: 100, finished: true, want: true},
		{name: "perfect criterion missed", game: perfect, score: 99, finished: true, want: false},
		{name: "finish criterion met", game: finish, score: 0, finished: true, want: true},
		{name: "finish criterion abandoned", game: finish, score: 100, finished: false, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttemptCompletes(tt.game, tt.score, tt.finished); got != tt.want {
				t.Errorf("AttemptCompletes(%s, %d, %v) = %v, want %v",
					tt.game.ID, tt.score, tt.finished, got, tt.want)
			}
		})
	}
}

func TestGetUnknownGame(t *testing.T) {
	if _, ok := Get("tetris"); ok {
		t.Error("Get should reject unknown game ids")
	}
}
