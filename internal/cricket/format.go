package cricket

import (
	"fmt"
	"strconv"
)

// FormatOvers renders a legal-ball count as "overs.balls", e.g. 13 -> "2.1".
func FormatOvers(balls int) string {
	return fmt.Sprintf("%d.%d", balls/BallsPerOver, balls%BallsPerOver)
}

// FormatBallDisplay is the short per-ball label used on over timelines.
func FormatBallDisplay(e BallEvent) string {
	switch {
	case e.Wicket:
		return "W"
	case e.Extra == ExtraWide:
		return fmt.Sprintf("%dWd", e.TotalRuns)
	case e.Extra == ExtraNoBall:
		return fmt.Sprintf("%dNb", e.TotalRuns)
	case e.Extra == ExtraBye:
		return fmt.Sprintf("%dB", e.RunsScored)
	case e.Extra == ExtraLegBye:
		return fmt.Sprintf("%dLb", e.RunsScored)
	}
	return strconv.Itoa(e.RunsScored)
}

// CurrentRunRate is runs per six balls achieved so far, "0.00" before the
// first legal delivery.
func CurrentRunRate(runs, balls int) string {
	if balls == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(runs)/float64(balls)*BallsPerOver)
}

// RequiredRunRate is runs per six balls needed to reach target in the
// remaining legal deliveries.
func RequiredRunRate(target, currentRuns, ballsRemaining int) string {
	if ballsRemaining <= 0 {
		return "0.00"
	}
	needed := target - currentRuns
	return fmt.Sprintf("%.2f", float64(needed)/float64(ballsRemaining)*BallsPerOver)
}

// Highlight classifies a freshly recorded ball for the spectator-side
// transient effect.
func Highlight(e BallEvent) string {
	switch {
	case e.Wicket:
		return "wicket"
	case e.Boundary && e.RunsScored == 6:
		return "six"
	case e.Boundary && e.RunsScored == 4:
		return "four"
	}
	return "none"
}
