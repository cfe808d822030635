package cricket

import "testing"

func TestCommentaryTexts(t *testing.T) {
	bat := Player{ID: "a1", Name: "Asha"}
	bowl := Player{ID: "b1", Name: "Chitra"}
	cases := []struct {
		ev   BallEvent
		want string
	}{
		{
			BallEvent{OverNumber: 2, BallNumber: 3, Wicket: true, WicketKind: WicketCaught},
			"2.3 - OUT! Asha caught. Chitra strikes!",
		},
		{
			BallEvent{OverNumber: 0, BallNumber: 1, Extra: ExtraWide, ExtraRuns: 2},
			"0.1 - Wide ball, 2 extra run(s)",
		},
		{
			BallEvent{OverNumber: 1, BallNumber: 4, Extra: ExtraNoBall, RunsScored: 3},
			"1.4 - No ball! 3 run(s) scored",
		},
		{
			BallEvent{OverNumber: 5, BallNumber: 6, RunsScored: 6},
			"5.6 - SIX! Asha smashes Chitra for a maximum!",
		},
		{
			BallEvent{OverNumber: 3, BallNumber: 2, RunsScored: 4},
			"3.2 - FOUR! Asha finds the boundary off Chitra",
		},
		{
			BallEvent{OverNumber: 0, BallNumber: 2},
			"0.2 - Dot ball. Chitra to Asha, no run",
		},
		{
			BallEvent{OverNumber: 4, BallNumber: 1, RunsScored: 2},
			"4.1 - Asha takes 2 run(s) off Chitra",
		},
	}
	for _, c := range cases {
		if got := Commentary(c.ev, bat, bowl); got != c.want {
			t.Fatalf("Commentary = %q, want %q", got, c.want)
		}
	}
}

func TestRecordBallCommentaryUsesRawExtras(t *testing.T) {
	e, s, _, b := newTestEngine()
	ev, err := e.RecordBall(Delivery{Extra: ExtraWide}, s, b)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	// The penalty run is folded into the event totals after the text is
	// rendered, matching what the scorer entered.
	if ev.Commentary != "0.1 - Wide ball, 0 extra run(s)" {
		t.Fatalf("commentary = %q", ev.Commentary)
	}
	if ev.ExtraRuns != 1 {
		t.Fatalf("extra runs = %d, want 1", ev.ExtraRuns)
	}
}
