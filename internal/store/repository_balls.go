package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const ballColumns = `id, match_id, innings_id, over_number, ball_number, batsman_id, bowler_id,
	runs_scored, extra_type, extra_runs, is_wicket, wicket_type, dismissed_player_id,
	is_boundary, total_runs, commentary, is_undone, created_at`

func scanBall(row matchRow) (BallEvent, error) {
	var ev BallEvent
	var extraType, wicketType, dismissed pgtype.Text
	err := row.Scan(&ev.ID, &ev.MatchID, &ev.InningsID, &ev.OverNumber, &ev.BallNumber,
		&ev.BatsmanID, &ev.BowlerID, &ev.RunsScored, &extraType, &ev.ExtraRuns,
		&ev.IsWicket, &wicketType, &dismissed, &ev.IsBoundary, &ev.TotalRuns,
		&ev.Commentary, &ev.IsUndone, &ev.CreatedAt)
	if err != nil {
		return BallEvent{}, mapNotFound(err)
	}
	ev.ExtraType = textVal(extraType)
	ev.WicketType = textVal(wicketType)
	ev.DismissedPlayerID = textVal(dismissed)
	return ev, nil
}

func (s *Store) listBalls(ctx context.Context, query string, arg string) ([]BallEvent, error) {
	rows, err := s.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []BallEvent{}
	for rows.Next() {
		ev, err := scanBall(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// ListActiveBallEvents returns the innings' non-undone deliveries in
// creation order; ULIDs break created_at ties.
func (s *Store) ListActiveBallEvents(ctx context.Context, inningsID string) ([]BallEvent, error) {
	return s.listBalls(ctx, `
		SELECT `+ballColumns+` FROM ball_events
		WHERE innings_id = $1 AND is_undone = FALSE ORDER BY created_at, id`, inningsID)
}

func (s *Store) ListBallEvents(ctx context.Context, matchID string) ([]BallEvent, error) {
	return s.listBalls(ctx, `
		SELECT `+ballColumns+` FROM ball_events
		WHERE match_id = $1 ORDER BY created_at, id`, matchID)
}
