package cricket

import (
	"errors"
	"testing"
)

func newTestEngine() (*Engine, Player, Player, Player) {
	striker := Player{ID: "bat1", Name: "Asha", Team: TeamA, BattingOrder: 1}
	nonStriker := Player{ID: "bat2", Name: "Binu", Team: TeamA, BattingOrder: 2}
	bowler := Player{ID: "bowl1", Name: "Chitra", Team: TeamB, BattingOrder: 1}
	e := &Engine{State: &InningsState{
		Number:      1,
		BattingTeam: TeamA,
		BowlingTeam: TeamB,
		Striker:     PlayerRef{ID: striker.ID},
		NonStriker:  PlayerRef{ID: nonStriker.ID},
		Bowler:      PlayerRef{ID: bowler.ID},
	}}
	return e, striker, nonStriker, bowler
}

func mustRecord(t *testing.T, e *Engine, d Delivery, striker, bowler Player) BallEvent {
	t.Helper()
	ev, err := e.RecordBall(d, striker, bowler)
	if err != nil {
		t.Fatalf("record ball: %v", err)
	}
	return ev
}

func currentStriker(e *Engine, players ...Player) Player {
	for _, p := range players {
		if p.ID == e.State.Striker.ID {
			return p
		}
	}
	return Player{}
}

func TestLegalBallCountAndOversFormat(t *testing.T) {
	e, s, ns, b := newTestEngine()
	for i := 0; i < 8; i++ {
		mustRecord(t, e, Delivery{Runs: 0}, currentStriker(e, s, ns), b)
	}
	if e.State.TotalBalls != 8 {
		t.Fatalf("total balls = %d, want 8", e.State.TotalBalls)
	}
	if got := FormatOvers(e.State.TotalBalls); got != "1.2" {
		t.Fatalf("overs = %q, want 1.2", got)
	}
}

func TestStrikeRotationOddRuns(t *testing.T) {
	e, s, _, b := newTestEngine()
	mustRecord(t, e, Delivery{Runs: 1}, s, b)
	if e.State.Striker.ID != "bat2" || e.State.NonStriker.ID != "bat1" {
		t.Fatalf("striker/non-striker = %s/%s, want bat2/bat1", e.State.Striker.ID, e.State.NonStriker.ID)
	}
}

func TestStrikeRotationEvenRunsNoSwap(t *testing.T) {
	e, s, _, b := newTestEngine()
	mustRecord(t, e, Delivery{Runs: 2}, s, b)
	if e.State.Striker.ID != "bat1" {
		t.Fatalf("striker = %s, want bat1", e.State.Striker.ID)
	}
}

func TestStrikeRotationOverEnd(t *testing.T) {
	e, s, ns, b := newTestEngine()
	// Five dots, then a single off the last ball: odd-run swap and over-end
	// swap cancel out.
	for i := 0; i < 5; i++ {
		mustRecord(t, e, Delivery{Runs: 0}, s, b)
	}
	mustRecord(t, e, Delivery{Runs: 1}, s, b)
	if e.State.Striker.ID != s.ID {
		t.Fatalf("striker after odd-run over end = %s, want %s", e.State.Striker.ID, s.ID)
	}

	// An even-run last ball swaps strike.
	e2, s2, _, b2 := newTestEngine()
	for i := 0; i < 5; i++ {
		mustRecord(t, e2, Delivery{Runs: 0}, s2, b2)
	}
	mustRecord(t, e2, Delivery{Runs: 0}, s2, b2)
	if e2.State.Striker.ID != ns.ID {
		t.Fatalf("striker after even-run over end = %s, want %s", e2.State.Striker.ID, ns.ID)
	}
}

func TestWicketClearsStriker(t *testing.T) {
	e, s, _, b := newTestEngine()
	ev := mustRecord(t, e, Delivery{Wicket: true, WicketKind: WicketBowled}, s, b)
	if ev.DismissedPlayerID != s.ID {
		t.Fatalf("dismissed = %s, want striker %s", ev.DismissedPlayerID, s.ID)
	}
	if e.State.Striker.Assigned() {
		t.Fatalf("striker still assigned after wicket: %s", e.State.Striker.ID)
	}
	if e.State.TotalWickets != 1 {
		t.Fatalf("wickets = %d, want 1", e.State.TotalWickets)
	}
	if _, err := e.RecordBall(Delivery{Runs: 1}, s, b); !errors.Is(err, ErrMissingParticipants) {
		t.Fatalf("record without striker = %v, want ErrMissingParticipants", err)
	}
}

func TestRunOutWithExplicitDismissed(t *testing.T) {
	e, s, ns, b := newTestEngine()
	ev := mustRecord(t, e, Delivery{Runs: 1, Wicket: true, WicketKind: WicketRunOut, DismissedID: ns.ID}, s, b)
	if ev.DismissedPlayerID != ns.ID {
		t.Fatalf("dismissed = %s, want non-striker %s", ev.DismissedPlayerID, ns.ID)
	}
}

func TestWideDelivery(t *testing.T) {
	e, s, _, b := newTestEngine()
	ev := mustRecord(t, e, Delivery{Extra: ExtraWide}, s, b)
	if ev.TotalRuns != 1 || ev.ExtraRuns != 1 {
		t.Fatalf("wide totals = %d/%d, want 1/1", ev.TotalRuns, ev.ExtraRuns)
	}
	if e.State.TotalBalls != 0 {
		t.Fatalf("wide advanced legal balls: %d", e.State.TotalBalls)
	}
	if e.State.TotalRuns != 1 || e.State.TotalExtras != 1 {
		t.Fatalf("innings totals = %d runs / %d extras, want 1/1", e.State.TotalRuns, e.State.TotalExtras)
	}
	if got := FormatBallDisplay(ev); got != "1Wd" {
		t.Fatalf("display = %q, want 1Wd", got)
	}
}

func TestSequentialWidesStayInOver(t *testing.T) {
	e, s, _, b := newTestEngine()
	mustRecord(t, e, Delivery{Runs: 0}, s, b)
	w1 := mustRecord(t, e, Delivery{Extra: ExtraWide}, s, b)
	w2 := mustRecord(t, e, Delivery{Extra: ExtraWide}, s, b)
	if w1.OverNumber != 0 || w2.OverNumber != 0 {
		t.Fatalf("wide over numbers = %d,%d, want 0,0", w1.OverNumber, w2.OverNumber)
	}
	if w2.BallNumber <= w1.BallNumber {
		t.Fatalf("wide ball indices not increasing: %d then %d", w1.BallNumber, w2.BallNumber)
	}
	next := mustRecord(t, e, Delivery{Runs: 0}, s, b)
	if next.OverNumber != 0 || next.BallNumber != 2 {
		t.Fatalf("next legal ball = %d.%d, want 0.2", next.OverNumber, next.BallNumber)
	}
}

func TestBoundaryFlag(t *testing.T) {
	e, s, _, b := newTestEngine()
	four := mustRecord(t, e, Delivery{Runs: 4}, s, b)
	if !four.Boundary {
		t.Fatalf("4 off the bat not flagged as boundary")
	}
	offExtra := mustRecord(t, e, Delivery{Runs: 4, Extra: ExtraNoBall}, s, b)
	if offExtra.Boundary {
		t.Fatalf("4 off a no-ball flagged as boundary")
	}
}

func TestUndoRestoresAggregates(t *testing.T) {
	e, s, ns, b := newTestEngine()
	mustRecord(t, e, Delivery{Runs: 2}, s, b)
	mustRecord(t, e, Delivery{Extra: ExtraWide, ExtraRuns: 1}, s, b)
	before := *e.State

	mustRecord(t, e, Delivery{Runs: 3, Wicket: true, WicketKind: WicketRunOut, DismissedID: ns.ID}, s, b)
	undone, err := e.UndoLast()
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if !undone.IsUndone {
		t.Fatalf("undone event not flagged")
	}
	after := *e.State
	if after.TotalRuns != before.TotalRuns || after.TotalWickets != before.TotalWickets ||
		after.TotalBalls != before.TotalBalls || after.TotalExtras != before.TotalExtras {
		t.Fatalf("aggregates not restored: before=%+v after=%+v", before, after)
	}
	if after.Striker.ID != s.ID {
		t.Fatalf("striker = %s, want facing batter %s", after.Striker.ID, s.ID)
	}
}

func TestUndoEmptyInnings(t *testing.T) {
	e, _, _, _ := newTestEngine()
	if _, err := e.UndoLast(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("undo on empty innings = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoIsLIFO(t *testing.T) {
	e, s, ns, b := newTestEngine()
	mustRecord(t, e, Delivery{Runs: 4}, s, b)
	second := mustRecord(t, e, Delivery{Runs: 6}, s, b)
	undone, err := e.UndoLast()
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if undone.TotalRuns != second.TotalRuns || undone.BallNumber != second.BallNumber {
		t.Fatalf("undo picked %d.%d, want most recent %d.%d", undone.OverNumber, undone.BallNumber, second.OverNumber, second.BallNumber)
	}
	if e.State.TotalRuns != 4 {
		t.Fatalf("runs after undo = %d, want 4", e.State.TotalRuns)
	}
	_ = ns
}

func TestTwelveSingles(t *testing.T) {
	e, s, ns, b := newTestEngine()
	for i := 0; i < 12; i++ {
		mustRecord(t, e, Delivery{Runs: 1}, currentStriker(e, s, ns), b)
	}
	if e.State.TotalRuns != 12 || e.State.TotalWickets != 0 || e.State.TotalBalls != 12 {
		t.Fatalf("after 12 singles: %d/%d in %d balls, want 12/0 in 12", e.State.TotalRuns, e.State.TotalWickets, e.State.TotalBalls)
	}
	if got := FormatOvers(e.State.TotalBalls); got != "2.0" {
		t.Fatalf("overs = %q, want 2.0", got)
	}
}

func TestRecordOnCompletedInnings(t *testing.T) {
	e, s, _, b := newTestEngine()
	e.State.Completed = true
	if _, err := e.RecordBall(Delivery{Runs: 1}, s, b); !errors.Is(err, ErrInningsComplete) {
		t.Fatalf("record on completed innings = %v, want ErrInningsComplete", err)
	}
}

func TestDeriveMatchesIncrementalState(t *testing.T) {
	e, s, ns, b := newTestEngine()
	deliveries := []Delivery{
		{Runs: 1},
		{Extra: ExtraWide},
		{Runs: 4},
		{Runs: 0, Extra: ExtraBye, ExtraRuns: 2},
		{Wicket: true, WicketKind: WicketCaught},
	}
	for _, d := range deliveries {
		st := currentStriker(e, s, ns)
		if st.ID == "" {
			st = s
			e.State.Striker = PlayerRef{ID: s.ID}
		}
		mustRecord(t, e, d, st, b)
	}
	agg := DeriveInnings(e.Events)
	if agg.TotalRuns != e.State.TotalRuns || agg.TotalWickets != e.State.TotalWickets ||
		agg.TotalBalls != e.State.TotalBalls || agg.TotalExtras != e.State.TotalExtras {
		t.Fatalf("fold %+v != incremental %+v", agg, *e.State)
	}
}
