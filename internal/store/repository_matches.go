package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type CreateMatchParams struct {
	TeamAName    string
	TeamBName    string
	TotalOvers   int
	Location     string
	PasscodeHash string
	TossWinner   string
	TossDecision string
	PlayersA     []string
	PlayersB     []string
}

// CreateMatch inserts the match and both rosters in one transaction.
func (s *Store) CreateMatch(ctx context.Context, p CreateMatchParams) (Match, []Player, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return Match{}, nil, err
	}
	defer tx.Rollback(ctx)

	matchID := NewID()
	row := tx.QueryRow(ctx, `
		INSERT INTO matches (id, team_a_name, team_b_name, total_overs, location, passcode_hash, status, toss_winner, toss_decision)
		VALUES ($1,$2,$3,$4,$5,$6,'upcoming',$7,$8)
		RETURNING id, team_a_name, team_b_name, total_overs, location, passcode_hash, status,
			toss_winner, toss_decision, winner, result_summary, is_deleted, deleted_at, created_at, updated_at`,
		matchID, p.TeamAName, p.TeamBName, p.TotalOvers, textParam(p.Location), p.PasscodeHash,
		textParam(p.TossWinner), textParam(p.TossDecision))
	m, err := scanMatch(row)
	if err != nil {
		return Match{}, nil, err
	}

	players := make([]Player, 0, len(p.PlayersA)+len(p.PlayersB))
	insert := func(names []string, team string) error {
		for i, name := range names {
			id := NewID()
			_, err := tx.Exec(ctx, `
				INSERT INTO players (id, match_id, name, team, batting_order)
				VALUES ($1,$2,$3,$4,$5)`, id, matchID, name, team, i+1)
			if err != nil {
				return err
			}
			players = append(players, Player{ID: id, MatchID: matchID, Name: name, Team: team, BattingOrder: i + 1})
		}
		return nil
	}
	if err := insert(p.PlayersA, "a"); err != nil {
		return Match{}, nil, err
	}
	if err := insert(p.PlayersB, "b"); err != nil {
		return Match{}, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Match{}, nil, err
	}
	return m, players, nil
}

type matchRow interface {
	Scan(dest ...any) error
}

func scanMatch(row matchRow) (Match, error) {
	var m Match
	var location, tossWinner, tossDecision, winner, summary pgtype.Text
	var deletedAt pgtype.Timestamptz
	err := row.Scan(&m.ID, &m.TeamAName, &m.TeamBName, &m.TotalOvers, &location, &m.PasscodeHash,
		&m.Status, &tossWinner, &tossDecision, &winner, &summary, &m.IsDeleted, &deletedAt,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return Match{}, mapNotFound(err)
	}
	m.Location = textVal(location)
	m.TossWinner = textVal(tossWinner)
	m.TossDecision = textVal(tossDecision)
	m.Winner = textVal(winner)
	m.ResultSummary = textVal(summary)
	m.DeletedAt = timePtrVal(deletedAt)
	return m, nil
}

const matchColumns = `id, team_a_name, team_b_name, total_overs, location, passcode_hash, status,
	toss_winner, toss_decision, winner, result_summary, is_deleted, deleted_at, created_at, updated_at`

func (s *Store) GetMatch(ctx context.Context, id string) (Match, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1 AND is_deleted = FALSE`, id)
	return scanMatch(row)
}

func (s *Store) ListMatches(ctx context.Context) ([]Match, error) {
	rows, err := s.Pool.Query(ctx, `SELECT `+matchColumns+` FROM matches WHERE is_deleted = FALSE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) GetPasscodeHash(ctx context.Context, matchID string) (string, error) {
	var hash string
	err := s.Pool.QueryRow(ctx, `SELECT passcode_hash FROM matches WHERE id = $1 AND is_deleted = FALSE`, matchID).Scan(&hash)
	if err != nil {
		return "", mapNotFound(err)
	}
	return hash, nil
}

func (s *Store) UpdateMatchStatus(ctx context.Context, matchID, status string) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE matches SET status = $1, updated_at = now() WHERE id = $2 AND is_deleted = FALSE`, status, matchID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CompleteMatch(ctx context.Context, matchID, winner, resultSummary string) error {
	tag, err := s.Pool.Exec(ctx, `
		UPDATE matches SET status = 'completed', winner = $1, result_summary = $2, updated_at = now()
		WHERE id = $3 AND is_deleted = FALSE`, textParam(winner), resultSummary, matchID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SoftDeleteMatch(ctx context.Context, matchID string) error {
	tag, err := s.Pool.Exec(ctx, `
		UPDATE matches SET is_deleted = TRUE, deleted_at = now(), updated_at = now()
		WHERE id = $1 AND is_deleted = FALSE`, matchID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
