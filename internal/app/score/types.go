package score

import (
	"encoding/json"
	"fmt"

	appmatch "cricket-live/internal/app/match"
)

// Action discriminators accepted by the scoring endpoint.
const (
	ActionStartInnings      = "start_innings"
	ActionUpdateInnings     = "update_innings"
	ActionRecordBall        = "record_ball"
	ActionUndoBall          = "undo_ball"
	ActionEndInnings        = "end_innings"
	ActionCompleteMatch     = "complete_match"
	ActionUpdateMatchStatus = "update_match_status"
)

// Command is the closed set of scoring commands. Each action decodes into
// exactly one variant; dispatch never branches on raw strings past decoding.
type Command interface {
	isCommand()
}

type StartInnings struct {
	BattingTeam string `json:"battingTeam"`
}

// UpdateInnings assigns participant slots. Nil fields are left unchanged;
// an empty string clears the slot.
type UpdateInnings struct {
	StrikerID    *string `json:"strikerId"`
	NonStrikerID *string `json:"nonStrikerId"`
	BowlerID     *string `json:"bowlerId"`
}

type RecordBall struct {
	Runs        int    `json:"runs"`
	ExtraType   string `json:"extraType"`
	ExtraRuns   int    `json:"extraRuns"`
	IsWicket    bool   `json:"isWicket"`
	WicketType  string `json:"wicketType"`
	DismissedID string `json:"dismissedId"`
}

type UndoBall struct{}

type EndInnings struct{}

type CompleteMatch struct {
	Winner        string `json:"winner"`
	ResultSummary string `json:"resultSummary"`
}

type UpdateMatchStatus struct {
	Status string `json:"status"`
}

func (StartInnings) isCommand()      {}
func (UpdateInnings) isCommand()     {}
func (RecordBall) isCommand()        {}
func (UndoBall) isCommand()          {}
func (EndInnings) isCommand()        {}
func (CompleteMatch) isCommand()     {}
func (UpdateMatchStatus) isCommand() {}

// DecodeCommand turns the wire {action, data} pair into a typed command.
func DecodeCommand(action string, data json.RawMessage) (Command, error) {
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	decode := func(into Command) (Command, error) {
		if err := json.Unmarshal(data, into); err != nil {
			return nil, fmt.Errorf("%w: malformed %s payload", ErrValidation, action)
		}
		return into, nil
	}
	switch action {
	case ActionStartInnings:
		return decode(&StartInnings{})
	case ActionUpdateInnings:
		return decode(&UpdateInnings{})
	case ActionRecordBall:
		return decode(&RecordBall{})
	case ActionUndoBall:
		return decode(&UndoBall{})
	case ActionEndInnings:
		return decode(&EndInnings{})
	case ActionCompleteMatch:
		return decode(&CompleteMatch{})
	case ActionUpdateMatchStatus:
		return decode(&UpdateMatchStatus{})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
}

// Result is what a command handler returns to the scorer.
type Result struct {
	OK            bool                     `json:"ok"`
	Innings       *appmatch.InningsItem    `json:"innings,omitempty"`
	Event         *appmatch.BallEventItem  `json:"event,omitempty"`
	UndoneEventID string                   `json:"undone_event_id,omitempty"`
	MatchStatus   string                   `json:"match_status,omitempty"`
	Winner        string                   `json:"winner,omitempty"`
	ResultSummary string                   `json:"result_summary,omitempty"`
}
