package store

import "time"

type Match struct {
	ID            string
	TeamAName     string
	TeamBName     string
	TotalOvers    int
	Location      string
	PasscodeHash  string
	Status        string
	TossWinner    string
	TossDecision  string
	Winner        string
	ResultSummary string
	IsDeleted     bool
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Player struct {
	ID           string
	MatchID      string
	Name         string
	Team         string
	BattingOrder int
	CreatedAt    time.Time
}

type Innings struct {
	ID               string
	MatchID          string
	Number           int
	BattingTeam      string
	BowlingTeam      string
	TotalRuns        int
	TotalWickets     int
	TotalBalls       int
	TotalOversBowled string
	TotalExtras      int
	IsCompleted      bool
	StrikerID        string
	NonStrikerID     string
	CurrentBowlerID  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type BallEvent struct {
	ID                string
	MatchID           string
	InningsID         string
	OverNumber        int
	BallNumber        int
	BatsmanID         string
	BowlerID          string
	RunsScored        int
	ExtraType         string
	ExtraRuns         int
	IsWicket          bool
	WicketType        string
	DismissedPlayerID string
	IsBoundary        bool
	TotalRuns         int
	Commentary        string
	IsUndone          bool
	CreatedAt         time.Time
}
