package store_test

import (
	"context"
	"errors"
	"testing"

	"cricket-live/internal/store"
	"cricket-live/internal/testutil"
)

func createFixtureMatch(t *testing.T, st *store.Store) (store.Match, []store.Player) {
	t.Helper()
	m, players, err := st.CreateMatch(context.Background(), store.CreateMatchParams{
		TeamAName:    "Lions",
		TeamBName:    "Tigers",
		TotalOvers:   20,
		Location:     "Eden Park",
		PasscodeHash: "$2a$10$fixturefixturefixturefixturefixturefix",
		TossWinner:   "a",
		TossDecision: "BAT",
		PlayersA:     []string{"Asha", "Bea", "Cleo"},
		PlayersB:     []string{"Dev", "Eli", "Finn"},
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	return m, players
}

func TestCreateAndGetMatch(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()

	m, players := createFixtureMatch(t, st)
	if m.Status != "upcoming" {
		t.Fatalf("status = %q, want upcoming", m.Status)
	}
	if len(players) != 6 {
		t.Fatalf("players = %d, want 6", len(players))
	}
	if players[0].BattingOrder != 1 || players[2].BattingOrder != 3 {
		t.Fatalf("batting order not sequential: %+v", players)
	}

	got, err := st.GetMatch(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if got.TeamAName != "Lions" || got.TossWinner != "a" {
		t.Fatalf("unexpected match row: %+v", got)
	}
}

func TestGetMatchNotFound(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()

	_, err := st.GetMatch(context.Background(), "no-such-id")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStartInningsFlipsMatchLive(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	m, _ := createFixtureMatch(t, st)

	in, err := st.StartInnings(context.Background(), m.ID, 1, "a", "b")
	if err != nil {
		t.Fatalf("start innings: %v", err)
	}
	if in.Number != 1 || in.BattingTeam != "a" {
		t.Fatalf("unexpected innings: %+v", in)
	}

	got, err := st.GetMatch(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if got.Status != "live" {
		t.Fatalf("status = %q, want live", got.Status)
	}

	open, err := st.GetOpenInnings(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("get open innings: %v", err)
	}
	if open.ID != in.ID {
		t.Fatalf("open innings %s, want %s", open.ID, in.ID)
	}
}

func TestApplyAndRevertBall(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	m, players := createFixtureMatch(t, st)

	in, err := st.StartInnings(context.Background(), m.ID, 1, "a", "b")
	if err != nil {
		t.Fatalf("start innings: %v", err)
	}
	striker, bowler := players[0], players[3]
	if err := st.UpdateParticipants(context.Background(), in.ID, &striker.ID, &players[1].ID, &bowler.ID); err != nil {
		t.Fatalf("update participants: %v", err)
	}

	ev, err := st.ApplyBall(context.Background(), store.BallEvent{
		MatchID:    m.ID,
		InningsID:  in.ID,
		OverNumber: 0,
		BallNumber: 1,
		BatsmanID:  striker.ID,
		BowlerID:   bowler.ID,
		RunsScored: 4,
		IsBoundary: true,
		TotalRuns:  4,
		Commentary: "FOUR! Asha finds the boundary off Dev",
	}, store.InningsUpdate{
		TotalRuns:        4,
		TotalBalls:       1,
		TotalOversBowled: "0.1",
		StrikerID:        striker.ID,
		NonStrikerID:     players[1].ID,
	})
	if err != nil {
		t.Fatalf("apply ball: %v", err)
	}
	if ev.ID == "" || ev.CreatedAt.IsZero() {
		t.Fatalf("event not stamped: %+v", ev)
	}

	got, err := st.GetInnings(context.Background(), in.ID)
	if err != nil {
		t.Fatalf("get innings: %v", err)
	}
	if got.TotalRuns != 4 || got.TotalBalls != 1 || got.TotalOversBowled != "0.1" {
		t.Fatalf("aggregate not applied: %+v", got)
	}

	err = st.RevertBall(context.Background(), ev.ID, in.ID, store.InningsUpdate{
		TotalOversBowled: "0.0",
		StrikerID:        striker.ID,
		NonStrikerID:     players[1].ID,
	})
	if err != nil {
		t.Fatalf("revert ball: %v", err)
	}

	active, err := st.ListActiveBallEvents(context.Background(), in.ID)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("active events = %d, want 0", len(active))
	}
	all, err := st.ListBallEvents(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 || !all[0].IsUndone {
		t.Fatalf("undone event should remain on record: %+v", all)
	}

	// A second revert of the same event must fail.
	err = st.RevertBall(context.Background(), ev.ID, in.ID, store.InningsUpdate{TotalOversBowled: "0.0"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double revert, got %v", err)
	}
}

func TestSoftDeleteHidesMatch(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	m, _ := createFixtureMatch(t, st)

	if err := st.SoftDeleteMatch(context.Background(), m.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if _, err := st.GetMatch(context.Background(), m.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	matches, err := st.ListMatches(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("deleted match still listed: %+v", matches)
	}
}

func TestCompleteMatchRecordsResult(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	m, _ := createFixtureMatch(t, st)

	if err := st.CompleteMatch(context.Background(), m.ID, "b", "Tigers won by 12 run(s)"); err != nil {
		t.Fatalf("complete match: %v", err)
	}
	got, err := st.GetMatch(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if got.Status != "completed" || got.Winner != "b" || got.ResultSummary != "Tigers won by 12 run(s)" {
		t.Fatalf("result not recorded: %+v", got)
	}
}
