package store

import "context"

const playerColumns = `id, match_id, name, team, batting_order, created_at`

func (s *Store) GetPlayer(ctx context.Context, id string) (Player, error) {
	var p Player
	err := s.Pool.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id).
		Scan(&p.ID, &p.MatchID, &p.Name, &p.Team, &p.BattingOrder, &p.CreatedAt)
	if err != nil {
		return Player{}, mapNotFound(err)
	}
	return p, nil
}

func (s *Store) ListPlayers(ctx context.Context, matchID string) ([]Player, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT `+playerColumns+` FROM players WHERE match_id = $1 ORDER BY team, batting_order`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Player{}
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.MatchID, &p.Name, &p.Team, &p.BattingOrder, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
