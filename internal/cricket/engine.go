package cricket

import "errors"

var (
	ErrMissingParticipants = errors.New("missing_participants")
	ErrNothingToUndo       = errors.New("nothing_to_undo")
	ErrInningsComplete     = errors.New("innings_complete")
)

// Engine applies scoring actions to one innings. State is the running
// aggregate and Events the active (non-undone) deliveries in creation
// order; the two must describe the same innings.
type Engine struct {
	State  *InningsState
	Events []BallEvent
}

func (e *Engine) legalCount() int {
	n := 0
	for _, ev := range e.Events {
		if ev.Legal() {
			n++
		}
	}
	return n
}

func (e *Engine) ballsInOver(over int) int {
	n := 0
	for _, ev := range e.Events {
		if ev.OverNumber == over {
			n++
		}
	}
	return n
}

// RecordBall stamps the delivery, updates the innings aggregate and strike,
// and appends the new event. The caller persists both and then checks the
// end-of-innings conditions.
func (e *Engine) RecordBall(d Delivery, striker, bowler Player) (BallEvent, error) {
	s := e.State
	if s.Completed {
		return BallEvent{}, ErrInningsComplete
	}
	if !s.Striker.Assigned() || !s.Bowler.Assigned() {
		return BallEvent{}, ErrMissingParticipants
	}

	legal := d.Extra != ExtraWide && d.Extra != ExtraNoBall
	legalCount := e.legalCount()
	over := legalCount / BallsPerOver
	ball := legalCount%BallsPerOver + 1
	if !legal {
		// Wides and no-balls stay inside the running over; their index is a
		// display aid and never advances the legal-ball counter.
		ball = e.ballsInOver(over) + 1
	}

	dismissed := d.DismissedID
	if d.Wicket && dismissed == "" {
		dismissed = striker.ID
	}

	ev := BallEvent{
		OverNumber:        over,
		BallNumber:        ball,
		BatsmanID:         striker.ID,
		BowlerID:          bowler.ID,
		RunsScored:        d.Runs,
		Extra:             d.Extra,
		ExtraRuns:         d.ExtraRuns,
		Wicket:            d.Wicket,
		WicketKind:        d.WicketKind,
		DismissedPlayerID: dismissed,
		Boundary:          (d.Runs == 4 || d.Runs == 6) && d.Extra == ExtraNone,
		TotalRuns:         d.Runs + d.ExtraRuns,
	}
	ev.Commentary = Commentary(ev, striker, bowler)

	if d.Extra == ExtraWide || d.Extra == ExtraNoBall {
		// The conventional single penalty run.
		ev.ExtraRuns++
		ev.TotalRuns++
	}

	if legal {
		s.TotalBalls++
	}
	s.TotalRuns += ev.TotalRuns
	s.TotalExtras += ev.ExtraRuns
	if d.Wicket {
		s.TotalWickets++
	}

	if legal && !d.Wicket {
		if d.Runs%2 != 0 {
			s.Striker, s.NonStriker = s.NonStriker, s.Striker
		}
		if s.TotalBalls > 0 && s.TotalBalls%BallsPerOver == 0 {
			s.Striker, s.NonStriker = s.NonStriker, s.Striker
		}
	}
	if d.Wicket {
		// A new batter must be selected before the next delivery.
		s.Striker = PlayerRef{}
	}

	e.Events = append(e.Events, ev)
	return ev, nil
}

// UndoLast reverses the most recent active delivery: the aggregate deltas are
// inverted exactly and the striker is restored to the batter who faced that
// ball. The non-striker slot is left as-is, so an undo straight after an
// over-end rotation does not reconstruct the pre-ball non-striker.
// It returns the event with IsUndone set; the caller flags it in storage.
func (e *Engine) UndoLast() (BallEvent, error) {
	if len(e.Events) == 0 {
		return BallEvent{}, ErrNothingToUndo
	}
	s := e.State
	last := e.Events[len(e.Events)-1]

	s.TotalRuns -= last.TotalRuns
	s.TotalExtras -= last.ExtraRuns
	if last.Legal() {
		s.TotalBalls--
	}
	if last.Wicket {
		s.TotalWickets--
	}
	s.Striker = PlayerRef{ID: last.BatsmanID}

	e.Events = e.Events[:len(e.Events)-1]
	last.IsUndone = true
	return last, nil
}
