package match

import "time"

type CreateRequest struct {
	TeamAName    string   `json:"teamAName"`
	TeamBName    string   `json:"teamBName"`
	TotalOvers   int      `json:"totalOvers"`
	Location     string   `json:"location"`
	Passcode     string   `json:"passcode"`
	TossWinner   string   `json:"tossWinner"`
	TossDecision string   `json:"tossDecision"`
	PlayersA     []string `json:"playersA"`
	PlayersB     []string `json:"playersB"`
}

type MatchItem struct {
	ID            string     `json:"id"`
	TeamAName     string     `json:"team_a_name"`
	TeamBName     string     `json:"team_b_name"`
	TotalOvers    int        `json:"total_overs"`
	Location      string     `json:"location,omitempty"`
	Status        string     `json:"status"`
	TossWinner    string     `json:"toss_winner,omitempty"`
	TossDecision  string     `json:"toss_decision,omitempty"`
	Winner        string     `json:"winner,omitempty"`
	ResultSummary string     `json:"result_summary,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type PlayerItem struct {
	ID           string `json:"id"`
	MatchID      string `json:"match_id"`
	Name         string `json:"name"`
	Team         string `json:"team"`
	BattingOrder int    `json:"batting_order"`
}

type InningsItem struct {
	ID               string `json:"id"`
	MatchID          string `json:"match_id"`
	InningsNumber    int    `json:"innings_number"`
	BattingTeam      string `json:"batting_team"`
	BowlingTeam      string `json:"bowling_team"`
	TotalRuns        int    `json:"total_runs"`
	TotalWickets     int    `json:"total_wickets"`
	TotalBalls       int    `json:"total_balls"`
	TotalOversBowled string `json:"total_overs_bowled"`
	TotalExtras      int    `json:"total_extras"`
	IsCompleted      bool   `json:"is_completed"`
	StrikerID        string `json:"striker_id,omitempty"`
	NonStrikerID     string `json:"non_striker_id,omitempty"`
	CurrentBowlerID  string `json:"current_bowler_id,omitempty"`
}

type BallEventItem struct {
	ID                string    `json:"id"`
	InningsID         string    `json:"innings_id"`
	OverNumber        int       `json:"over_number"`
	BallNumber        int       `json:"ball_number"`
	BatsmanID         string    `json:"batsman_id"`
	BowlerID          string    `json:"bowler_id"`
	RunsScored        int       `json:"runs_scored"`
	ExtraType         string    `json:"extra_type,omitempty"`
	ExtraRuns         int       `json:"extra_runs"`
	IsWicket          bool      `json:"is_wicket"`
	WicketType        string    `json:"wicket_type,omitempty"`
	DismissedPlayerID string    `json:"dismissed_player_id,omitempty"`
	IsBoundary        bool      `json:"is_boundary"`
	TotalRuns         int       `json:"total_runs"`
	Commentary        string    `json:"commentary"`
	IsUndone          bool      `json:"is_undone"`
	Display           string    `json:"display"`
	CreatedAt         time.Time `json:"created_at"`
}

type BatsmanLine struct {
	PlayerID      string  `json:"player_id"`
	Name          string  `json:"name"`
	Runs          int     `json:"runs"`
	Balls         int     `json:"balls"`
	Fours         int     `json:"fours"`
	Sixes         int     `json:"sixes"`
	StrikeRate    float64 `json:"strike_rate"`
	IsOut         bool    `json:"is_out"`
	DismissalText string  `json:"dismissal_text,omitempty"`
}

type BowlerLine struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Overs    string  `json:"overs"`
	Balls    int     `json:"balls"`
	Maidens  int     `json:"maidens"`
	Runs     int     `json:"runs"`
	Wickets  int     `json:"wickets"`
	Economy  float64 `json:"economy"`
}

type Scorecard struct {
	InningsNumber   int           `json:"innings_number"`
	Batting         []BatsmanLine `json:"batting"`
	Bowling         []BowlerLine  `json:"bowling"`
	CurrentRunRate  string        `json:"current_run_rate"`
	RequiredRunRate string        `json:"required_run_rate,omitempty"`
	Target          int           `json:"target,omitempty"`
}

type DetailResponse struct {
	Match      MatchItem       `json:"match"`
	Players    []PlayerItem    `json:"players"`
	Innings    []InningsItem   `json:"innings"`
	BallEvents []BallEventItem `json:"ball_events"`
	Scorecards []Scorecard     `json:"scorecards"`
}

type ListResponse struct {
	Matches []MatchItem `json:"matches"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}
