package cricket

import "fmt"

type BatsmanStats struct {
	Player        Player
	Runs          int
	Balls         int
	Fours         int
	Sixes         int
	StrikeRate    float64
	Out           bool
	DismissalText string
}

type BowlerStats struct {
	Player  Player
	Overs   string
	Balls   int
	Maidens int
	Runs    int
	Wickets int
	Economy float64
}

func activeOnly(events []BallEvent) []BallEvent {
	out := make([]BallEvent, 0, len(events))
	for _, e := range events {
		if !e.IsUndone {
			out = append(out, e)
		}
	}
	return out
}

// ComputeBatsmanStats derives the batting card for every player on the given
// side. Wides are not counted as balls faced.
func ComputeBatsmanStats(events []BallEvent, roster []Player, side Team) []BatsmanStats {
	active := activeOnly(events)
	byName := make(map[string]Player, len(roster))
	for _, p := range roster {
		byName[p.ID] = p
	}

	out := make([]BatsmanStats, 0, len(roster))
	for _, p := range roster {
		if p.Team != side {
			continue
		}
		st := BatsmanStats{Player: p}
		for _, e := range active {
			if e.BatsmanID != p.ID || e.Extra == ExtraWide {
				continue
			}
			st.Runs += e.RunsScored
			st.Balls++
			if e.Boundary && e.RunsScored == 4 {
				st.Fours++
			}
			if e.Boundary && e.RunsScored == 6 {
				st.Sixes++
			}
		}
		if st.Balls > 0 {
			st.StrikeRate = float64(st.Runs) / float64(st.Balls) * 100
		}
		for _, e := range active {
			if e.Wicket && e.DismissedPlayerID == p.ID {
				st.Out = true
				st.DismissalText = fmt.Sprintf("%s b %s", e.WicketKind, byName[e.BowlerID].Name)
				break
			}
		}
		out = append(out, st)
	}
	return out
}

// ComputeBowlerStats derives the bowling card for every player on the given
// side that has bowled or taken a wicket. Run-outs are not credited to the
// bowler; a maiden needs all six legal balls of the over from one bowler and
// zero runs conceded across every delivery in it.
func ComputeBowlerStats(events []BallEvent, roster []Player, side Team) []BowlerStats {
	active := activeOnly(events)

	out := make([]BowlerStats, 0, len(roster))
	for _, p := range roster {
		if p.Team != side {
			continue
		}
		st := BowlerStats{Player: p}
		overs := map[int][]BallEvent{}
		for _, e := range active {
			if e.BowlerID != p.ID {
				continue
			}
			if e.Legal() {
				st.Balls++
			}
			st.Runs += e.TotalRuns
			if e.Wicket && e.WicketKind != WicketRunOut {
				st.Wickets++
			}
			overs[e.OverNumber] = append(overs[e.OverNumber], e)
		}
		for _, deliveries := range overs {
			legal, runs := 0, 0
			for _, e := range deliveries {
				if e.Legal() {
					legal++
				}
				runs += e.TotalRuns
			}
			if legal == BallsPerOver && runs == 0 {
				st.Maidens++
			}
		}
		st.Overs = FormatOvers(st.Balls)
		if st.Balls > 0 {
			st.Economy = float64(st.Runs) / (float64(st.Balls) / BallsPerOver)
		}
		if st.Balls > 0 || st.Wickets > 0 {
			out = append(out, st)
		}
	}
	return out
}
