package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const inningsColumns = `id, match_id, innings_number, batting_team, bowling_team,
	total_runs, total_wickets, total_balls, total_overs_bowled, total_extras,
	is_completed, striker_id, non_striker_id, current_bowler_id, created_at, updated_at`

func scanInnings(row matchRow) (Innings, error) {
	var in Innings
	var striker, nonStriker, bowler pgtype.Text
	err := row.Scan(&in.ID, &in.MatchID, &in.Number, &in.BattingTeam, &in.BowlingTeam,
		&in.TotalRuns, &in.TotalWickets, &in.TotalBalls, &in.TotalOversBowled, &in.TotalExtras,
		&in.IsCompleted, &striker, &nonStriker, &bowler, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return Innings{}, mapNotFound(err)
	}
	in.StrikerID = textVal(striker)
	in.NonStrikerID = textVal(nonStriker)
	in.CurrentBowlerID = textVal(bowler)
	return in, nil
}

// StartInnings creates the innings and flips the match live in one
// transaction.
func (s *Store) StartInnings(ctx context.Context, matchID string, number int, battingTeam, bowlingTeam string) (Innings, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return Innings{}, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO innings (id, match_id, innings_number, batting_team, bowling_team)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING `+inningsColumns,
		NewID(), matchID, number, battingTeam, bowlingTeam)
	in, err := scanInnings(row)
	if err != nil {
		return Innings{}, err
	}
	if _, err := tx.Exec(ctx, `UPDATE matches SET status = 'live', updated_at = now() WHERE id = $1`, matchID); err != nil {
		return Innings{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Innings{}, err
	}
	return in, nil
}

func (s *Store) GetInnings(ctx context.Context, id string) (Innings, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+inningsColumns+` FROM innings WHERE id = $1`, id)
	return scanInnings(row)
}

func (s *Store) ListInnings(ctx context.Context, matchID string) ([]Innings, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT `+inningsColumns+` FROM innings WHERE match_id = $1 ORDER BY innings_number`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Innings{}
	for rows.Next() {
		in, err := scanInnings(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

// GetOpenInnings returns the single incomplete innings of the match.
func (s *Store) GetOpenInnings(ctx context.Context, matchID string) (Innings, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT `+inningsColumns+` FROM innings WHERE match_id = $1 AND is_completed = FALSE
		ORDER BY innings_number DESC LIMIT 1`, matchID)
	return scanInnings(row)
}

// UpdateParticipants patches participant slots; nil leaves a slot unchanged
// and an empty string clears it.
func (s *Store) UpdateParticipants(ctx context.Context, inningsID string, striker, nonStriker, bowler *string) error {
	tag, err := s.Pool.Exec(ctx, `
		UPDATE innings SET
			striker_id = CASE WHEN $1::bool THEN NULLIF($2,'') ELSE striker_id END,
			non_striker_id = CASE WHEN $3::bool THEN NULLIF($4,'') ELSE non_striker_id END,
			current_bowler_id = CASE WHEN $5::bool THEN NULLIF($6,'') ELSE current_bowler_id END,
			updated_at = now()
		WHERE id = $7`,
		striker != nil, deref(striker), nonStriker != nil, deref(nonStriker), bowler != nil, deref(bowler), inningsID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// InningsUpdate carries the post-ball aggregate snapshot.
type InningsUpdate struct {
	TotalRuns        int
	TotalWickets     int
	TotalBalls       int
	TotalOversBowled string
	TotalExtras      int
	StrikerID        string
	NonStrikerID     string
}

func applyInningsUpdate(ctx context.Context, tx pgx.Tx, inningsID string, u InningsUpdate) error {
	_, err := tx.Exec(ctx, `
		UPDATE innings SET
			total_runs = $1, total_wickets = $2, total_balls = $3,
			total_overs_bowled = $4, total_extras = $5,
			striker_id = NULLIF($6,''), non_striker_id = NULLIF($7,''),
			updated_at = now()
		WHERE id = $8`,
		u.TotalRuns, u.TotalWickets, u.TotalBalls, u.TotalOversBowled, u.TotalExtras,
		u.StrikerID, u.NonStrikerID, inningsID)
	return err
}

// ApplyBall inserts the ball event and patches the innings aggregate in one
// transaction, so a crash cannot leave the event recorded with a stale
// aggregate.
func (s *Store) ApplyBall(ctx context.Context, ev BallEvent, u InningsUpdate) (BallEvent, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return BallEvent{}, err
	}
	defer tx.Rollback(ctx)

	ev.ID = NewID()
	row := tx.QueryRow(ctx, `
		INSERT INTO ball_events (id, match_id, innings_id, over_number, ball_number,
			batsman_id, bowler_id, runs_scored, extra_type, extra_runs,
			is_wicket, wicket_type, dismissed_player_id, is_boundary, total_runs, commentary)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING created_at`,
		ev.ID, ev.MatchID, ev.InningsID, ev.OverNumber, ev.BallNumber,
		ev.BatsmanID, ev.BowlerID, ev.RunsScored, textParam(ev.ExtraType), ev.ExtraRuns,
		ev.IsWicket, textParam(ev.WicketType), textParam(ev.DismissedPlayerID), ev.IsBoundary,
		ev.TotalRuns, ev.Commentary)
	if err := row.Scan(&ev.CreatedAt); err != nil {
		return BallEvent{}, err
	}
	if err := applyInningsUpdate(ctx, tx, ev.InningsID, u); err != nil {
		return BallEvent{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return BallEvent{}, err
	}
	return ev, nil
}

// RevertBall flags the event undone and restores the aggregate in one
// transaction. The event row itself is never deleted.
func (s *Store) RevertBall(ctx context.Context, ballID, inningsID string, u InningsUpdate) error {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE ball_events SET is_undone = TRUE WHERE id = $1 AND is_undone = FALSE`, ballID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	if err := applyInningsUpdate(ctx, tx, inningsID, u); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) CompleteInnings(ctx context.Context, inningsID string) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE innings SET is_completed = TRUE, updated_at = now() WHERE id = $1`, inningsID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
