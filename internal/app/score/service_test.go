package score

import (
	"encoding/json"
	"errors"
	"testing"

	"cricket-live/internal/cricket"
)

func TestDecodeCommandRecordBall(t *testing.T) {
	data := json.RawMessage(`{"runs":4,"extraType":"","isWicket":false}`)
	cmd, err := DecodeCommand(ActionRecordBall, data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	rb, ok := cmd.(*RecordBall)
	if !ok {
		t.Fatalf("expected *RecordBall, got %T", cmd)
	}
	if rb.Runs != 4 {
		t.Fatalf("runs = %d, want 4", rb.Runs)
	}
}

func TestDecodeCommandEmptyData(t *testing.T) {
	cmd, err := DecodeCommand(ActionUndoBall, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := cmd.(*UndoBall); !ok {
		t.Fatalf("expected *UndoBall, got %T", cmd)
	}
}

func TestDecodeCommandUnknownAction(t *testing.T) {
	_, err := DecodeCommand("reticulate_splines", nil)
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestDecodeCommandMalformedPayload(t *testing.T) {
	_, err := DecodeCommand(ActionRecordBall, json.RawMessage(`{"runs":"four"}`))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestValidateDelivery(t *testing.T) {
	cases := []struct {
		name string
		cmd  RecordBall
		ok   bool
	}{
		{"plain single", RecordBall{Runs: 1}, true},
		{"wide with extras", RecordBall{ExtraType: "wide", ExtraRuns: 1}, true},
		{"wicket needs kind", RecordBall{IsWicket: true}, false},
		{"wicket with kind", RecordBall{IsWicket: true, WicketType: "bowled"}, true},
		{"runs out of range", RecordBall{Runs: 7}, false},
		{"negative extras", RecordBall{ExtraRuns: -1}, false},
		{"bogus extra type", RecordBall{ExtraType: "overthrow"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validateDelivery(&tc.cmd)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestMapEngineErrKeepsDistinctCodes(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"missing participants", cricket.ErrMissingParticipants, ErrMissingParticipants},
		{"nothing to undo", cricket.ErrNothingToUndo, ErrNothingToUndo},
		{"innings complete", cricket.ErrInningsComplete, ErrIllegalTransition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapEngineErr(tc.in)
			if !errors.Is(got, tc.want) {
				t.Fatalf("mapEngineErr(%v) = %v, want %v", tc.in, got, tc.want)
			}
			if errors.Is(got, ErrValidation) {
				t.Fatalf("mapEngineErr(%v) = %v, must not collapse into %v", tc.in, got, ErrValidation)
			}
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to cricket.MatchStatus }{
		{cricket.StatusUpcoming, cricket.StatusLive},
		{cricket.StatusLive, cricket.StatusInningsBreak},
		{cricket.StatusLive, cricket.StatusCompleted},
		{cricket.StatusInningsBreak, cricket.StatusLive},
		{cricket.StatusInningsBreak, cricket.StatusCompleted},
	}
	for _, tr := range allowed {
		if !canTransition(tr.from, tr.to) {
			t.Fatalf("%s -> %s should be allowed", tr.from, tr.to)
		}
	}
	denied := []struct{ from, to cricket.MatchStatus }{
		{cricket.StatusLive, cricket.StatusUpcoming},
		{cricket.StatusCompleted, cricket.StatusLive},
		{cricket.StatusCompleted, cricket.StatusUpcoming},
		{cricket.StatusUpcoming, cricket.StatusCompleted},
	}
	for _, tr := range denied {
		if canTransition(tr.from, tr.to) {
			t.Fatalf("%s -> %s should be rejected", tr.from, tr.to)
		}
	}
}
