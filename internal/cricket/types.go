package cricket

import "time"

type Team string

const (
	TeamA Team = "a"
	TeamB Team = "b"
)

func (t Team) Opponent() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

type MatchStatus string

const (
	StatusUpcoming     MatchStatus = "upcoming"
	StatusLive         MatchStatus = "live"
	StatusInningsBreak MatchStatus = "innings_break"
	StatusCompleted    MatchStatus = "completed"
)

type ExtraType string

const (
	ExtraNone   ExtraType = ""
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "no_ball"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "leg_bye"
)

func (e ExtraType) Valid() bool {
	switch e {
	case ExtraNone, ExtraWide, ExtraNoBall, ExtraBye, ExtraLegBye:
		return true
	}
	return false
}

type WicketKind string

const (
	WicketBowled    WicketKind = "bowled"
	WicketCaught    WicketKind = "caught"
	WicketLBW       WicketKind = "lbw"
	WicketRunOut    WicketKind = "run_out"
	WicketStumped   WicketKind = "stumped"
	WicketHitWicket WicketKind = "hit_wicket"
	WicketRetired   WicketKind = "retired"
)

func (w WicketKind) Valid() bool {
	switch w {
	case WicketBowled, WicketCaught, WicketLBW, WicketRunOut, WicketStumped, WicketHitWicket, WicketRetired:
		return true
	}
	return false
}

// PlayerRef is an innings participant slot. The zero value means unassigned;
// the "needs setup" check is Assigned(), never a nil comparison.
type PlayerRef struct {
	ID string
}

func (r PlayerRef) Assigned() bool {
	return r.ID != ""
}

type Player struct {
	ID           string
	Name         string
	Team         Team
	BattingOrder int
}

// InningsState is the running aggregate of one innings. It is a cache of the
// fold over active ball events (see DeriveInnings); the scoring engine keeps
// it incrementally in step with the event list.
type InningsState struct {
	Number       int
	BattingTeam  Team
	BowlingTeam  Team
	TotalRuns    int
	TotalWickets int
	TotalBalls   int
	TotalExtras  int
	Completed    bool
	Striker      PlayerRef
	NonStriker   PlayerRef
	Bowler       PlayerRef
}

// Delivery is a proposed scoring action before the engine stamps it.
type Delivery struct {
	Runs        int
	Extra       ExtraType
	ExtraRuns   int
	Wicket      bool
	WicketKind  WicketKind
	DismissedID string
}

// BallEvent is the append-only record of one delivery. Undo flips IsUndone;
// events are never removed or edited otherwise.
type BallEvent struct {
	ID                string
	InningsID         string
	OverNumber        int
	BallNumber        int
	BatsmanID         string
	BowlerID          string
	RunsScored        int
	Extra             ExtraType
	ExtraRuns         int
	Wicket            bool
	WicketKind        WicketKind
	DismissedPlayerID string
	Boundary          bool
	TotalRuns         int
	Commentary        string
	IsUndone          bool
	CreatedAt         time.Time
}

// Legal reports whether the delivery counts toward the 6-ball over.
func (e BallEvent) Legal() bool {
	return e.Extra != ExtraWide && e.Extra != ExtraNoBall
}

const (
	BallsPerOver   = 6
	WicketsPerSide = 10
)
