package match

import (
	"context"
	"errors"
	"fmt"

	"cricket-live/internal/cricket"
	"cricket-live/internal/passcode"
	"cricket-live/internal/store"
)

type Service struct {
	store        *store.Store
	defaultOvers int
}

func NewService(st *store.Store, defaultOvers int) *Service {
	if defaultOvers <= 0 {
		defaultOvers = 20
	}
	return &Service{store: st, defaultOvers: defaultOvers}
}

func validateCreate(req *CreateRequest, defaultOvers int) error {
	if req.TeamAName == "" || req.TeamBName == "" || req.Passcode == "" {
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if err := passcode.Validate(req.Passcode); err != nil {
		return fmt.Errorf("%w: passcode must be 4-6 digits", ErrValidation)
	}
	if len(req.PlayersA) < 2 || len(req.PlayersB) < 2 {
		return fmt.Errorf("%w: each side needs at least 2 named players", ErrValidation)
	}
	for _, name := range append(append([]string{}, req.PlayersA...), req.PlayersB...) {
		if name == "" {
			return fmt.Errorf("%w: player names must not be empty", ErrValidation)
		}
	}
	if req.TotalOvers <= 0 {
		req.TotalOvers = defaultOvers
	}
	if req.TossWinner != "" && !cricket.Team(req.TossWinner).Valid() {
		return fmt.Errorf("%w: toss winner must be side a or b", ErrValidation)
	}
	if req.TossDecision != "" && req.TossDecision != "BAT" && req.TossDecision != "BOWL" {
		return fmt.Errorf("%w: toss decision must be BAT or BOWL", ErrValidation)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*DetailResponse, error) {
	if err := validateCreate(&req, s.defaultOvers); err != nil {
		return nil, err
	}
	hash, err := passcode.Hash(req.Passcode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	m, players, err := s.store.CreateMatch(ctx, store.CreateMatchParams{
		TeamAName:    req.TeamAName,
		TeamBName:    req.TeamBName,
		TotalOvers:   req.TotalOvers,
		Location:     req.Location,
		PasscodeHash: hash,
		TossWinner:   req.TossWinner,
		TossDecision: req.TossDecision,
		PlayersA:     req.PlayersA,
		PlayersB:     req.PlayersB,
	})
	if err != nil {
		return nil, err
	}
	return &DetailResponse{
		Match:      toMatchItem(m),
		Players:    toPlayerItems(players),
		Innings:    []InningsItem{},
		BallEvents: []BallEventItem{},
		Scorecards: []Scorecard{},
	}, nil
}

func (s *Service) List(ctx context.Context) (*ListResponse, error) {
	matches, err := s.store.ListMatches(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]MatchItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, toMatchItem(m))
	}
	return &ListResponse{Matches: items}, nil
}

// Detail assembles the full spectator snapshot: match, rosters, innings,
// every ball event, and the derived scorecards.
func (s *Service) Detail(ctx context.Context, matchID string) (*DetailResponse, error) {
	m, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	players, err := s.store.ListPlayers(ctx, matchID)
	if err != nil {
		return nil, err
	}
	innings, err := s.store.ListInnings(ctx, matchID)
	if err != nil {
		return nil, err
	}
	balls, err := s.store.ListBallEvents(ctx, matchID)
	if err != nil {
		return nil, err
	}

	resp := &DetailResponse{
		Match:      toMatchItem(m),
		Players:    toPlayerItems(players),
		Innings:    make([]InningsItem, 0, len(innings)),
		BallEvents: make([]BallEventItem, 0, len(balls)),
		Scorecards: make([]Scorecard, 0, len(innings)),
	}
	for _, in := range innings {
		resp.Innings = append(resp.Innings, toInningsItem(in))
	}
	for _, b := range balls {
		resp.BallEvents = append(resp.BallEvents, toBallItem(b))
	}

	roster := store.DomainPlayers(players)
	var firstInningsRuns int
	for _, in := range innings {
		events := make([]cricket.BallEvent, 0, len(balls))
		for _, b := range balls {
			if b.InningsID == in.ID {
				events = append(events, b.Domain())
			}
		}
		card := Scorecard{
			InningsNumber:  in.Number,
			Batting:        toBattingLines(cricket.ComputeBatsmanStats(events, roster, cricket.Team(in.BattingTeam))),
			Bowling:        toBowlingLines(cricket.ComputeBowlerStats(events, roster, cricket.Team(in.BowlingTeam))),
			CurrentRunRate: cricket.CurrentRunRate(in.TotalRuns, in.TotalBalls),
		}
		if in.Number == 2 {
			card.Target = firstInningsRuns + 1
			remaining := m.TotalOvers*cricket.BallsPerOver - in.TotalBalls
			card.RequiredRunRate = cricket.RequiredRunRate(card.Target, in.TotalRuns, remaining)
		}
		if in.Number == 1 {
			firstInningsRuns = in.TotalRuns
		}
		resp.Scorecards = append(resp.Scorecards, card)
	}
	return resp, nil
}

func (s *Service) VerifyPasscode(ctx context.Context, matchID, code string) (*VerifyResponse, error) {
	hash, err := s.store.GetPasscodeHash(ctx, matchID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &VerifyResponse{Valid: passcode.Verify(code, hash)}, nil
}

// Delete soft-deletes the match after checking the passcode.
func (s *Service) Delete(ctx context.Context, matchID, code string) error {
	hash, err := s.store.GetPasscodeHash(ctx, matchID)
	if err != nil {
		return mapStoreErr(err)
	}
	if !passcode.Verify(code, hash) {
		return ErrInvalidPasscode
	}
	return s.store.SoftDeleteMatch(ctx, matchID)
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func toMatchItem(m store.Match) MatchItem {
	return MatchItem{
		ID:            m.ID,
		TeamAName:     m.TeamAName,
		TeamBName:     m.TeamBName,
		TotalOvers:    m.TotalOvers,
		Location:      m.Location,
		Status:        m.Status,
		TossWinner:    m.TossWinner,
		TossDecision:  m.TossDecision,
		Winner:        m.Winner,
		ResultSummary: m.ResultSummary,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toPlayerItems(players []store.Player) []PlayerItem {
	out := make([]PlayerItem, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerItem{ID: p.ID, MatchID: p.MatchID, Name: p.Name, Team: p.Team, BattingOrder: p.BattingOrder})
	}
	return out
}

func toInningsItem(in store.Innings) InningsItem {
	return InningsItem{
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

func toBallItem(b store.BallEvent) BallEventItem {
	return BallEventItem{
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

func toBattingLines(stats []cricket.BatsmanStats) []BatsmanLine {
	out := make([]BatsmanLine, 0, len(stats))
	for _, st := range stats {
		out = append(out, BatsmanLine{
			PlayerID:      st.Player.ID,
			Name:          st.Player.Name,
			Runs:          st.Runs,
			Balls:         st.Balls,
			Fours:         st.Fours,
			Sixes:         st.Sixes,
			StrikeRate:    st.StrikeRate,
			IsOut:         st.Out,
			DismissalText: st.DismissalText,
		})
	}
	return out
}

func toBowlingLines(stats []cricket.BowlerStats) []BowlerLine {
	out := make([]BowlerLine, 0, len(stats))
	for _, st := range stats {
		out = append(out, BowlerLine{
			PlayerID: st.Player.ID,
			Name:     st.Player.Name,
			Overs:    st.Overs,
			Balls:    st.Balls,
			Maidens:  st.Maidens,
			Runs:     st.Runs,
			Wickets:  st.Wickets,
			Economy:  st.Economy,
		})
	}
	return out
}
