package score

import (
	"context"
	"errors"
	"fmt"

	appmatch "cricket-live/internal/app/match"
	"cricket-live/internal/cricket"
	"cricket-live/internal/store"
)

// Notifier pushes change notifications to live spectators. The scoring
// service never blocks on delivery.
type Notifier interface {
	Publish(matchID, table, op, highlight string)
}

type Service struct {
	store  *store.Store
	notify Notifier
}

func NewService(st *store.Store, notify Notifier) *Service {
	return &Service{store: st, notify: notify}
}

// Execute runs one scoring command against the match. All commands are
// scorer-only; the transport layer verifies the passcode before calling in.
func (s *Service) Execute(ctx context.Context, matchID string, cmd Command) (*Result, error) {
	switch c := cmd.(type) {
	case *StartInnings:
		return s.startInnings(ctx, matchID, c)
	case *UpdateInnings:
		return s.updateInnings(ctx, matchID, c)
	case *RecordBall:
		return s.recordBall(ctx, matchID, c)
	case *UndoBall:
		return s.undoBall(ctx, matchID)
	case *EndInnings:
		return s.endInnings(ctx, matchID)
	case *CompleteMatch:
		return s.completeMatch(ctx, matchID, c)
	case *UpdateMatchStatus:
		return s.updateMatchStatus(ctx, matchID, c)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownAction, cmd)
}

func (s *Service) startInnings(ctx context.Context, matchID string, c *StartInnings) (*Result, error) {
	m, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if m.Status == string(cricket.StatusCompleted) {
		return nil, fmt.Errorf("%w: match already completed", ErrIllegalTransition)
	}
	if _, err := s.store.GetOpenInnings(ctx, matchID); err == nil {
		return nil, fmt.Errorf("%w: an innings is already in progress", ErrIllegalTransition)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	prior, err := s.store.ListInnings(ctx, matchID)
	if err != nil {
		return nil, err
	}
	number := len(prior) + 1
	if number > 2 {
		return nil, fmt.Errorf("%w: both innings already played", ErrIllegalTransition)
	}

	batting := cricket.Team(c.BattingTeam)
	switch {
	case number == 2:
		// The second innings always swaps the sides of the first.
		batting = cricket.Team(prior[0].BattingTeam).Opponent()
	case !batting.Valid() && m.TossWinner != "":
		batting = cricket.Team(m.TossWinner)
		if m.TossDecision == "BOWL" {
			batting = batting.Opponent()
		}
	}
	if !batting.Valid() {
		return nil, fmt.Errorf("%w: batting team must be a or b", ErrValidation)
	}

	in, err := s.store.StartInnings(ctx, matchID, number, string(batting), string(batting.Opponent()))
	if err != nil {
		return nil, err
	}
	s.notify.Publish(matchID, "innings", "INSERT", "none")
	s.notify.Publish(matchID, "matches", "UPDATE", "none")

	item := toInningsItem(in)
	return &Result{OK: true, Innings: &item, MatchStatus: string(cricket.StatusLive)}, nil
}

func (s *Service) updateInnings(ctx context.Context, matchID string, c *UpdateInnings) (*Result, error) {
	in, err := s.store.GetOpenInnings(ctx, matchID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoActiveInnings
		}
		return nil, err
	}

	check := func(id *string, team string, slot string) error {
		if id == nil || *id == "" {
			return nil
		}
		p, err := s.store.GetPlayer(ctx, *id)
		if err != nil {
			return fmt.Errorf("%w: unknown %s", ErrValidation, slot)
		}
		if p.MatchID != matchID || p.Team != team {
			return fmt.Errorf("%w: %s must be on team %s", ErrValidation, slot, team)
		}
		return nil
	}
	if err := check(c.StrikerID, in.BattingTeam, "striker"); err != nil {
		return nil, err
	}
	if err := check(c.NonStrikerID, in.BattingTeam, "non-striker"); err != nil {
		return nil, err
	}
	if err := check(c.BowlerID, in.BowlingTeam, "bowler"); err != nil {
		return nil, err
	}

	striker, nonStriker := in.StrikerID, in.NonStrikerID
	if c.StrikerID != nil {
		striker = *c.StrikerID
	}
	if c.NonStrikerID != nil {
		nonStriker = *c.NonStrikerID
	}
	if striker != "" && striker == nonStriker {
		return nil, fmt.Errorf("%w: striker and non-striker must differ", ErrValidation)
	}

	if err := s.store.UpdateParticipants(ctx, in.ID, c.StrikerID, c.NonStrikerID, c.BowlerID); err != nil {
		return nil, mapStoreErr(err)
	}
	updated, err := s.store.GetInnings(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	s.notify.Publish(matchID, "innings", "UPDATE", "none")

	item := toInningsItem(updated)
	return &Result{OK: true, Innings: &item}, nil
}

func validateDelivery(c *RecordBall) (cricket.Delivery, error) {
	if c.Runs < 0 || c.Runs > 6 {
		return cricket.Delivery{}, fmt.Errorf("%w: runs must be between 0 and 6", ErrValidation)
	}
	if c.ExtraRuns < 0 {
		return cricket.Delivery{}, fmt.Errorf("%w: extra runs must not be negative", ErrValidation)
	}
	extra := cricket.ExtraType(c.ExtraType)
	if !extra.Valid() {
		return cricket.Delivery{}, fmt.Errorf("%w: unknown extra type %q", ErrValidation, c.ExtraType)
	}
	var kind cricket.WicketKind
	if c.IsWicket {
		kind = cricket.WicketKind(c.WicketType)
		if !kind.Valid() {
			return cricket.Delivery{}, fmt.Errorf("%w: unknown wicket type %q", ErrValidation, c.WicketType)
		}
	}
	return cricket.Delivery{
		Runs:        c.Runs,
		Extra:       extra,
		ExtraRuns:   c.ExtraRuns,
		Wicket:      c.IsWicket,
		WicketKind:  kind,
		DismissedID: c.DismissedID,
	}, nil
}

func (s *Service) recordBall(ctx context.Context, matchID string, c *RecordBall) (*Result, error) {
	d, err := validateDelivery(c)
	if err != nil {
		return nil, err
	}
	m, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	in, err := s.store.GetOpenInnings(ctx, matchID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoActiveInnings
		}
		return nil, err
	}
	if in.StrikerID == "" || in.CurrentBowlerID == "" {
		return nil, ErrMissingParticipants
	}
	striker, err := s.store.GetPlayer(ctx, in.StrikerID)
	if err != nil {
		return nil, err
	}
	bowler, err := s.store.GetPlayer(ctx, in.CurrentBowlerID)
	if err != nil {
		return nil, err
	}
	if d.DismissedID != "" {
		p, err := s.store.GetPlayer(ctx, d.DismissedID)
		if err != nil || p.MatchID != matchID || p.Team != in.BattingTeam {
			return nil, fmt.Errorf("%w: dismissed player must be a batter in this innings", ErrValidation)
		}
	}

	active, err := s.store.ListActiveBallEvents(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	state := in.DomainState()
	eng := &cricket.Engine{State: &state, Events: store.DomainEvents(active)}
	ev, err := eng.RecordBall(d, striker.Domain(), bowler.Domain())
	if err != nil {
		return nil, mapEngineErr(err)
	}

	saved, err := s.store.ApplyBall(ctx, store.BallEventFromDomain(matchID, in.ID, ev), store.InningsUpdate{
		TotalRuns:        state.TotalRuns,
		TotalWickets:     state.TotalWickets,
		TotalBalls:       state.TotalBalls,
		TotalOversBowled: cricket.FormatOvers(state.TotalBalls),
		TotalExtras:      state.TotalExtras,
		StrikerID:        state.Striker.ID,
		NonStrikerID:     state.NonStriker.ID,
	})
	if err != nil {
		return nil, err
	}
	s.notify.Publish(matchID, "ball_events", "INSERT", cricket.Highlight(ev))
	s.notify.Publish(matchID, "innings", "UPDATE", "none")

	res := &Result{OK: true}
	eventItem := toBallItem(saved)
	res.Event = &eventItem

	status, err := s.checkInningsEnd(ctx, m, in, state)
	if err != nil {
		return nil, err
	}
	res.MatchStatus = status

	updated, err := s.store.GetInnings(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	item := toInningsItem(updated)
	res.Innings = &item
	return res, nil
}

// checkInningsEnd closes the innings when the chase is won, the side is all
// out, or the overs run out. It returns the resulting match status, empty if
// play continues.
func (s *Service) checkInningsEnd(ctx context.Context, m store.Match, in store.Innings, state cricket.InningsState) (string, error) {
	if in.Number == 2 {
		target, err := s.chaseTarget(ctx, m.ID)
		if err != nil {
			return "", err
		}
		if target > 0 && state.TotalRuns >= target {
			return s.finishInnings(ctx, m, in, state.TotalRuns, state.TotalWickets)
		}
	}
	allOut := state.TotalWickets >= cricket.WicketsPerSide
	oversDone := state.TotalBalls >= m.TotalOvers*cricket.BallsPerOver
	if allOut || oversDone {
		return s.finishInnings(ctx, m, in, state.TotalRuns, state.TotalWickets)
	}
	return "", nil
}

// chaseTarget is first-innings runs plus one, or 0 when no first innings is
// on record.
func (s *Service) chaseTarget(ctx context.Context, matchID string) (int, error) {
	innings, err := s.store.ListInnings(ctx, matchID)
	if err != nil {
		return 0, err
	}
	for _, in := range innings {
		if in.Number == 1 {
			return in.TotalRuns + 1, nil
		}
	}
	return 0, nil
}

func (s *Service) finishInnings(ctx context.Context, m store.Match, in store.Innings, runs, wickets int) (string, error) {
	if err := s.store.CompleteInnings(ctx, in.ID); err != nil {
		return "", err
	}
	s.notify.Publish(m.ID, "innings", "UPDATE", "none")

	if in.Number == 1 {
		if err := s.store.UpdateMatchStatus(ctx, m.ID, string(cricket.StatusInningsBreak)); err != nil {
			return "", err
		}
		s.notify.Publish(m.ID, "matches", "UPDATE", "none")
		return string(cricket.StatusInningsBreak), nil
	}

	target, err := s.chaseTarget(ctx, m.ID)
	if err != nil {
		return "", err
	}
	firstRuns := target - 1
	var winner, summary string
	switch {
	case runs > firstRuns:
		winner = in.BattingTeam
		summary = fmt.Sprintf("%s won by %d wicket(s)", teamName(m, in.BattingTeam), cricket.WicketsPerSide-wickets)
	case firstRuns > runs:
		winner = in.BowlingTeam
		summary = fmt.Sprintf("%s won by %d run(s)", teamName(m, in.BowlingTeam), firstRuns-runs)
	default:
		summary = "Match Tied!"
	}
	if err := s.store.CompleteMatch(ctx, m.ID, winner, summary); err != nil {
		return "", err
	}
	s.notify.Publish(m.ID, "matches", "UPDATE", "none")
	return string(cricket.StatusCompleted), nil
}

func (s *Service) undoBall(ctx context.Context, matchID string) (*Result, error) {
	in, err := s.store.GetOpenInnings(ctx, matchID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoActiveInnings
		}
		return nil, err
	}
	active, err := s.store.ListActiveBallEvents(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	state := in.DomainState()
	eng := &cricket.Engine{State: &state, Events: store.DomainEvents(active)}
	undone, err := eng.UndoLast()
	if err != nil {
		return nil, mapEngineErr(err)
	}

	err = s.store.RevertBall(ctx, undone.ID, in.ID, store.InningsUpdate{
		TotalRuns:        state.TotalRuns,
		TotalWickets:     state.TotalWickets,
		TotalBalls:       state.TotalBalls,
		TotalOversBowled: cricket.FormatOvers(state.TotalBalls),
		TotalExtras:      state.TotalExtras,
		StrikerID:        state.Striker.ID,
		NonStrikerID:     state.NonStriker.ID,
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	s.notify.Publish(matchID, "ball_events", "UPDATE", "none")
	s.notify.Publish(matchID, "innings", "UPDATE", "none")

	updated, err := s.store.GetInnings(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	item := toInningsItem(updated)
	return &Result{OK: true, UndoneEventID: undone.ID, Innings: &item}, nil
}

func (s *Service) endInnings(ctx context.Context, matchID string) (*Result, error) {
	m, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	in, err := s.store.GetOpenInnings(ctx, matchID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoActiveInnings
		}
		return nil, err
	}
	status, err := s.finishInnings(ctx, m, in, in.TotalRuns, in.TotalWickets)
	if err != nil {
		return nil, err
	}
	res := &Result{OK: true, MatchStatus: status}
	if status == string(cricket.StatusCompleted) {
		final, err := s.store.GetMatch(ctx, matchID)
		if err != nil {
			return nil, err
		}
		res.Winner = final.Winner
		res.ResultSummary = final.ResultSummary
	}
	return res, nil
}

func (s *Service) completeMatch(ctx context.Context, matchID string, c *CompleteMatch) (*Result, error) {
	if c.Winner != "" && !cricket.Team(c.Winner).Valid() {
		return nil, fmt.Errorf("%w: winner must be a, b or empty", ErrValidation)
	}
	if in, err := s.store.GetOpenInnings(ctx, matchID); err == nil {
		if err := s.store.CompleteInnings(ctx, in.ID); err != nil {
			return nil, err
		}
		s.notify.Publish(matchID, "innings", "UPDATE", "none")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if err := s.store.CompleteMatch(ctx, matchID, c.Winner, c.ResultSummary); err != nil {
		return nil, mapStoreErr(err)
	}
	s.notify.Publish(matchID, "matches", "UPDATE", "none")
	return &Result{
		OK:            true,
		MatchStatus:   string(cricket.StatusCompleted),
		Winner:        c.Winner,
		ResultSummary: c.ResultSummary,
	}, nil
}

// statusTransitions is the forward-only lifecycle. Completed is terminal.
var statusTransitions = map[cricket.MatchStatus][]cricket.MatchStatus{
	cricket.StatusUpcoming:     {cricket.StatusLive},
	cricket.StatusLive:         {cricket.StatusInningsBreak, cricket.StatusCompleted},
	cricket.StatusInningsBreak: {cricket.StatusLive, cricket.StatusCompleted},
	cricket.StatusCompleted:    {},
}

func canTransition(from, to cricket.MatchStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *Service) updateMatchStatus(ctx context.Context, matchID string, c *UpdateMatchStatus) (*Result, error) {
	to := cricket.MatchStatus(c.Status)
	switch to {
	case cricket.StatusUpcoming, cricket.StatusLive, cricket.StatusInningsBreak, cricket.StatusCompleted:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, c.Status)
	}
	m, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !canTransition(cricket.MatchStatus(m.Status), to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, m.Status, c.Status)
	}
	if err := s.store.UpdateMatchStatus(ctx, matchID, c.Status); err != nil {
		return nil, mapStoreErr(err)
	}
	s.notify.Publish(matchID, "matches", "UPDATE", "none")
	return &Result{OK: true, MatchStatus: c.Status}, nil
}

func teamName(m store.Match, team string) string {
	if team == string(cricket.TeamA) {
		return m.TeamAName
	}
	return m.TeamBName
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func mapEngineErr(err error) error {
	switch {
	case errors.Is(err, cricket.ErrMissingParticipants):
		return ErrMissingParticipants
	case errors.Is(err, cricket.ErrInningsComplete):
		return fmt.Errorf("%w: innings already completed", ErrIllegalTransition)
	case errors.Is(err, cricket.ErrNothingToUndo):
		return ErrNothingToUndo
	}
	return err
}

func toInningsItem(in store.Innings) appmatch.InningsItem {
	return appmatch.InningsItem{
		ID:               in.ID,
		MatchID:          in.MatchID,
		InningsNumber:    in.Number,
		BattingTeam:      in.BattingTeam,
		BowlingTeam:      in.BowlingTeam,
		TotalRuns:        in.TotalRuns,
		TotalWickets:     in.TotalWickets,
		TotalBalls:       in.TotalBalls,
		TotalOversBowled: in.TotalOversBowled,
		TotalExtras:      in.TotalExtras,
		IsCompleted:      in.IsCompleted,
		StrikerID:        in.StrikerID,
		NonStrikerID:     in.NonStrikerID,
		CurrentBowlerID:  in.CurrentBowlerID,
	}
}

func toBallItem(b store.BallEvent) appmatch.BallEventItem {
	return appmatch.BallEventItem{
		ID:                b.ID,
		InningsID:         b.InningsID,
		OverNumber:        b.OverNumber,
		BallNumber:        b.BallNumber,
		BatsmanID:         b.BatsmanID,
		BowlerID:          b.BowlerID,
		RunsScored:        b.RunsScored,
		ExtraType:         b.ExtraType,
		ExtraRuns:         b.ExtraRuns,
		IsWicket:          b.IsWicket,
		WicketType:        b.WicketType,
		DismissedPlayerID: b.DismissedPlayerID,
		IsBoundary:        b.IsBoundary,
		TotalRuns:         b.TotalRuns,
		Commentary:        b.Commentary,
		IsUndone:          b.IsUndone,
		Display:           cricket.FormatBallDisplay(b.Domain()),
		CreatedAt:         b.CreatedAt,
	}
}
