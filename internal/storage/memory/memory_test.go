package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/samdwyer/minesweeper/internal/engine"
)

func TestGamesSaveFindRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewGames()
	g := engine.NewGame("g1", 3, 3, 2, time.Now())

	if err := repo.Save(ctx, g); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := repo.FindByID(ctx, "g1")
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	if got.Rows != 3 || got.Cols != 3 || got.MinesCount != 2 {
		t.Errorf("unexpected game: %+v", got)
	}
}

func TestGamesReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewGames()
	g := engine.NewGame("g1", 2, 2, 1, time.Now())
	if err := repo.Save(ctx, g); err != nil {
		t.Fatalf("save: %v", err)
	}

	g.Board.Cells[0][0].IsFlagged = true
	got, _, _ := repo.FindByID(ctx, "g1")
	if got.Board.Cells[0][0].IsFlagged {
		t.Fatal("mutating the saved game leaked into the repository")
	}

	got.Board.Cells[1][1].IsRevealed = true
	again, _, _ := repo.FindByID(ctx, "g1")
	if again.Board.Cells[1][1].IsRevealed {
		t.Fatal("mutating a found game leaked into the repository")
	}
}

func TestGamesFindMissing(t *testing.T) {
	_, ok, err := NewGames().FindByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected not found")
	}
}

func TestGamesSaveRequiresID(t *testing.T) {
	if err := NewGames().Save(context.Background(), &engine.Game{}); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestGamesConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewGames()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%26))
			_ = repo.Save(ctx, engine.NewGame(id, 2, 2, 1, time.Now()))
			_, _, _ = repo.FindByID(ctx, id)
		}(i)
	}
	wg.Wait()

	if repo.Count() != 26 {
		t.Errorf("expected 26 games, got %d", repo.Count())
	}
}

func TestResultsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewResults()

	for _, player := range []string{"ann", "bob", "cy"} {
		if _, err := repo.Save(ctx, engine.Result{Player: player, Rows: 9, Cols: 9, Mines: 10}); err != nil {
			t.Fatalf("save %s: %v", player, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 results, got %d", len(list))
	}
	if list[0].Player != "cy" || list[2].Player != "ann" {
		t.Errorf("unexpected order: %q, %q, %q", list[0].Player, list[1].Player, list[2].Player)
	}
	if list[0].ID != 3 || list[2].ID != 1 {
		t.Errorf("unexpected ids: %d..%d", list[0].ID, list[2].ID)
	}
}

func TestResultsRejectInvalid(t *testing.T) {
	if _, err := NewResults().Save(context.Background(), engine.Result{Rows: 9, Cols: 9}); err == nil {
		t.Fatal("expected error for missing player")
	}
}
