package stats_test

import (
	"fmt"
	"testing"

	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doubles(date string, t1d, t1a, t2d, t2a string, s1, s2 int) match.Record {
	r := match.Record{
		Date:       date,
		Team1Deuce: t1d,
		Team1Ad:    match.Some(t1a),
		Team2Deuce: t2d,
		Team2Ad:    match.Some(t2a),
		Team1Score: s1,
		Team2Score: s2,
		Type:       match.TypeMenDoubles,
	}
	r.Team1Result, r.Team2Result = match.ComputeResult(s1, s2)
	return r
}

func TestPlayerScoresEmptyInput(t *testing.T) {
	scores := stats.PlayerScores([]string{"A", "B"}, nil)
	require.Len(t, scores, 2)
	for _, s := range scores {
		assert.Zero(t, s.Matches)
		assert.Zero(t, s.WinRate)
		assert.Zero(t, s.WeightedDiff)
	}
}

func TestPlayerScoresCounting(t *testing.T) {
	records := []match.Record{
		doubles("2026-08-01", "A", "B", "C", "D", 21, 15), // A,B win
		doubles("2026-08-02", "C", "A", "B", "D", 21, 19), // A wins at ad
		doubles("2026-08-03", "A", "D", "B", "C", 18, 21), // A loses at deuce
		doubles("2026-08-04", "B", "C", "D", "A", 20, 20), // draw, A at ad
	}

	scores := stats.PlayerScores([]string{"A", "B", "C", "D"}, records)
	byName := make(map[string]stats.PlayerScore)
	for _, s := range scores {
		byName[s.Name] = s
	}

	a := byName["A"]
	assert.Equal(t, 4, a.Matches)
	assert.Equal(t, 2, a.Wins)
	assert.Equal(t, 1, a.Losses)
	assert.Equal(t, 1, a.Draws)
	assert.Equal(t, 2, a.DeuceMatches)
	assert.Equal(t, 1, a.DeuceWins)
	assert.Equal(t, 1, a.DeuceLosses)
	assert.Equal(t, 2, a.AdMatches)
	assert.Equal(t, 1, a.AdWins)
	assert.Equal(t, 1, a.AdDraws)

	assert.Equal(t, 50, a.WinRate)       // 2/4
	assert.Equal(t, 50, a.DeuceRate)     // 2/4
	assert.Equal(t, 50, a.DeuceWinRate)  // 1/2
	assert.Equal(t, 50, a.AdWinRate)     // 1/2
	assert.Equal(t, 0, a.WeightedDiff)   // (1-1)/4

	b := byName["B"]
	assert.Equal(t, 4, b.Matches)
	// B: win(ad), loss(deuce), loss? match3 B on team2 deuce wins... recount:
	// m1 B team1 ad -> win; m2 B team2 deuce -> loss; m3 B team2 deuce -> win; m4 B team1 deuce -> draw
	assert.Equal(t, 2, b.Wins)
	assert.Equal(t, 1, b.Losses)
	assert.Equal(t, 1, b.Draws)
	assert.Equal(t, 25, b.WeightedDiff) // deuceWins 2 - adWins 1 = 1, 1/4
}

func TestPlayerScoresSortedByMatches(t *testing.T) {
	records := []match.Record{
		doubles("2026-08-01", "A", "B", "C", "D", 21, 15),
		doubles("2026-08-02", "A", "B", "C", "D", 21, 15),
		{Date: "2026-08-03", Team1Deuce: "E", Team2Deuce: "A", Team1Score: 21, Team2Score: 10, Team1Result: match.ResultWin, Team2Result: match.ResultLoss},
	}
	scores := stats.PlayerScores([]string{"E", "A"}, records)
	assert.Equal(t, "A", scores[0].Name)
	assert.Equal(t, "E", scores[1].Name)
}

func TestChemistry(t *testing.T) {
	records := []match.Record{
		doubles("2026-08-01", "A", "B", "C", "D", 21, 15), // A+B win together
		doubles("2026-08-02", "A", "B", "C", "D", 17, 21), // A+B lose together
		doubles("2026-08-03", "A", "C", "B", "D", 21, 12), // A beats B
		doubles("2026-08-04", "B", "C", "A", "D", 20, 20), // draw across the net
	}

	rows := stats.Chemistry("A", []string{"A", "B", "C"}, records)
	require.Len(t, rows, 2) // base player excluded

	var b stats.ChemistryRow
	for _, row := range rows {
		if row.Name == "B" {
			b = row
		}
	}

	assert.Equal(t, 2, b.SameTeamMatches)
	assert.Equal(t, 1, b.SameTeamWins)
	assert.Equal(t, 1, b.SameTeamLosses)
	assert.Equal(t, 2, b.OpponentMatches)
	assert.Equal(t, 1, b.OpponentWins)
	assert.Equal(t, 1, b.OpponentDraws)

	assert.Equal(t, 50, b.SameTeamWinRate)
	assert.Equal(t, 50, b.OpponentWinRate)
	assert.Equal(t, 0, b.WinRateDiff)
}

func TestChemistryUsesBaseResult(t *testing.T) {
	// The opponent bucket counts the BASE player's outcome, not the
	// compared member's.
	records := []match.Record{
		doubles("2026-08-01", "A", "C", "B", "D", 21, 12),
	}
	rows := stats.Chemistry("A", []string{"B"}, records)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].OpponentWins)
	assert.Equal(t, 0, rows[0].OpponentLosses)
}

func TestPairScores(t *testing.T) {
	regulars := []string{"A", "B", "C", "D"}
	records := []match.Record{
		doubles("2026-08-01", "A", "B", "C", "D", 21, 15),
		doubles("2026-08-02", "B", "A", "D", "C", 21, 19), // same pairs, slots swapped
		doubles("2026-08-03", "A", "B", "C", "D", 10, 21),
	}

	pairs := stats.PairScores(regulars, records)
	require.Len(t, pairs, 2)

	byKey := make(map[string]stats.PairScore)
	for _, p := range pairs {
		byKey[p.Pair] = p
	}

	ab := byKey[match.PairKey("A", "B")]
	assert.Equal(t, 3, ab.Matches) // deuce/ad swap still the same pair
	assert.Equal(t, 2, ab.Wins)
	assert.Equal(t, 1, ab.Losses)
	assert.Equal(t, 67, ab.WinRate)

	cd := byKey[match.PairKey("C", "D")]
	assert.Equal(t, 3, cd.Matches)
	assert.Equal(t, 1, cd.Wins)
}

func TestPairScoresSkipsGuestPairs(t *testing.T) {
	// E is not a regular; both of E's teams must be skipped entirely.
	records := []match.Record{
		doubles("2026-08-01", "A", "E", "C", "D", 21, 15),
	}
	pairs := stats.PairScores([]string{"A", "C", "D"}, records)
	require.Len(t, pairs, 1)
	assert.Equal(t, match.PairKey("C", "D"), pairs[0].Pair)
}

func TestPairScoresIgnoresSingles(t *testing.T) {
	records := []match.Record{
		{Date: "2026-08-01", Team1Deuce: "A", Team2Deuce: "B", Team1Result: match.ResultWin, Team2Result: match.ResultLoss},
	}
	assert.Empty(t, stats.PairScores([]string{"A", "B"}, records))
}

func TestPairMatches(t *testing.T) {
	records := []match.Record{
		doubles("2026-08-02", "A", "B", "C", "D", 21, 15),
		doubles("2026-08-01", "A", "C", "B", "D", 21, 15),
	}
	got := stats.PairMatches("A", "B", records)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-08-02", got[0].Date)
}

// Windowed aggregation scenario: 10 doubles matches over 8 months,
// 4 inside the 6-month window. Total participations must be 4×4=16 and
// every win rate must follow the rounding convention exactly.
func TestWindowedAggregationScenario(t *testing.T) {
	members := []string{"A", "B", "C", "D"}

	var records []match.Record
	for i := 0; i < 4; i++ {
		// Inside the window: spread over the last few weeks.
		date := now.AddDate(0, 0, -7*i).Format("2006-01-02")
		records = append(records, doubles(date, "A", "B", "C", "D", 21, 10+i))
	}
	for i := 0; i < 6; i++ {
		// Outside the window: 7 and 8 months back.
		date := now.AddDate(0, -7, -i).Format("2006-01-02")
		records = append(records, doubles(date, "A", "B", "C", "D", 10+i, 21))
	}

	f := stats.Filter{Period: "6m", Types: stats.ParseList("남복,여복,혼복")}
	filtered := f.Apply(records, now)
	require.Len(t, filtered, 4)

	scores := stats.PlayerScores(members, filtered)
	total := 0
	for _, s := range scores {
		total += s.Matches
		expected := 0
		if s.Matches > 0 {
			expected = int(float64(s.Wins)/float64(s.Matches)*100 + 0.5)
		}
		assert.Equal(t, expected, s.WinRate, fmt.Sprintf("player %s", s.Name))
	}
	assert.Equal(t, 16, total)
}
