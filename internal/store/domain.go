package store

import "cricket-live/internal/cricket"

// Domain maps the stored ball event onto the scoring engine's form.
func (e BallEvent) Domain() cricket.BallEvent {
	return cricket.BallEvent{
		ID:                e.ID,
		InningsID:         e.InningsID,
		OverNumber:        e.OverNumber,
		BallNumber:        e.BallNumber,
		BatsmanID:         e.BatsmanID,
		BowlerID:          e.BowlerID,
		RunsScored:        e.RunsScored,
		Extra:             cricket.ExtraType(e.ExtraType),
		ExtraRuns:         e.ExtraRuns,
		Wicket:            e.IsWicket,
		WicketKind:        cricket.WicketKind(e.WicketType),
		DismissedPlayerID: e.DismissedPlayerID,
		Boundary:          e.IsBoundary,
		TotalRuns:         e.TotalRuns,
		Commentary:        e.Commentary,
		IsUndone:          e.IsUndone,
		CreatedAt:         e.CreatedAt,
	}
}

func DomainEvents(events []BallEvent) []cricket.BallEvent {
	out := make([]cricket.BallEvent, 0, len(events))
	for _, e := range events {
		out = append(out, e.Domain())
	}
	return out
}

func BallEventFromDomain(matchID, inningsID string, ev cricket.BallEvent) BallEvent {
	return BallEvent{
		MatchID:           matchID,
		InningsID:         inningsID,
		OverNumber:        ev.OverNumber,
		BallNumber:        ev.BallNumber,
		BatsmanID:         ev.BatsmanID,
		BowlerID:          ev.BowlerID,
		RunsScored:        ev.RunsScored,
		ExtraType:         string(ev.Extra),
		ExtraRuns:         ev.ExtraRuns,
		IsWicket:          ev.Wicket,
		WicketType:        string(ev.WicketKind),
		DismissedPlayerID: ev.DismissedPlayerID,
		IsBoundary:        ev.Boundary,
		TotalRuns:         ev.TotalRuns,
		Commentary:        ev.Commentary,
		IsUndone:          ev.IsUndone,
	}
}

// DomainState maps the stored innings row onto the engine's running state.
func (in Innings) DomainState() cricket.InningsState {
	return cricket.InningsState{
		Number:       in.Number,
		BattingTeam:  cricket.Team(in.BattingTeam),
		BowlingTeam:  cricket.Team(in.BowlingTeam),
		TotalRuns:    in.TotalRuns,
		TotalWickets: in.TotalWickets,
		TotalBalls:   in.TotalBalls,
		TotalExtras:  in.TotalExtras,
		Completed:    in.IsCompleted,
		Striker:      cricket.PlayerRef{ID: in.StrikerID},
		NonStriker:   cricket.PlayerRef{ID: in.NonStrikerID},
		Bowler:       cricket.PlayerRef{ID: in.CurrentBowlerID},
	}
}

func (p Player) Domain() cricket.Player {
	return cricket.Player{ID: p.ID, Name: p.Name, Team: cricket.Team(p.Team), BattingOrder: p.BattingOrder}
}

func DomainPlayers(players []Player) []cricket.Player {
	out := make([]cricket.Player, 0, len(players))
	for _, p := range players {
		out = append(out, p.Domain())
	}
	return out
}
