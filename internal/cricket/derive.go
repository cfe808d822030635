package cricket

// InningsAggregate is the fold of an innings' active ball events.
type InningsAggregate struct {
	TotalRuns    int
	TotalWickets int
	TotalBalls   int
	TotalExtras  int
}

// DeriveInnings recomputes the aggregate from scratch. The stored innings row
// is a cache of this fold; recomputing lets a caller reconcile after a write
// that was interrupted between the ball insert and the aggregate update.
func DeriveInnings(events []BallEvent) InningsAggregate {
	var agg InningsAggregate
	for _, e := range events {
		if e.IsUndone {
			continue
		}
		agg.TotalRuns += e.TotalRuns
		agg.TotalExtras += e.ExtraRuns
		if e.Legal() {
			agg.TotalBalls++
		}
		if e.Wicket {
			agg.TotalWickets++
		}
	}
	return agg
}

// ThisOverBalls picks the active deliveries stamped with the given over.
func ThisOverBalls(events []BallEvent, over int) []BallEvent {
	out := make([]BallEvent, 0, BallsPerOver)
	for _, e := range events {
		if !e.IsUndone && e.OverNumber == over {
			out = append(out, e)
		}
	}
	return out
}
