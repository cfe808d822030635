package cricket

import "fmt"

// Commentary renders the ball-by-ball text for a delivery. Extra runs are
// the runs entered by the scorer, before any wide/no-ball penalty is folded
// into the event totals.
func Commentary(e BallEvent, batsman, bowler Player) string {
	over := fmt.Sprintf("%d.%d", e.OverNumber, e.BallNumber)
	switch {
	case e.Wicket:
		return fmt.Sprintf("%s - OUT! %s %s. %s strikes!", over, batsman.Name, e.WicketKind, bowler.Name)
	case e.Extra == ExtraWide:
		return fmt.Sprintf("%s - Wide ball, %d extra run(s)", over, e.ExtraRuns)
	case e.Extra == ExtraNoBall:
		return fmt.Sprintf("%s - No ball! %d run(s) scored", over, e.RunsScored)
	case e.RunsScored == 6:
		return fmt.Sprintf("%s - SIX! %s smashes %s for a maximum!", over, batsman.Name, bowler.Name)
	case e.RunsScored == 4:
		return fmt.Sprintf("%s - FOUR! %s finds the boundary off %s", over, batsman.Name, bowler.Name)
	case e.RunsScored == 0:
		return fmt.Sprintf("%s - Dot ball. %s to %s, no run", over, bowler.Name, batsman.Name)
	}
	return fmt.Sprintf("%s - %s takes %d run(s) off %s", over, batsman.Name, e.RunsScored, bowler.Name)
}
