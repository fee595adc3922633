package stats

import (
	"math"
	"sort"

	"github.com/glzpr1598/burn-to-win/internal/match"
)

// PlayerScore is one roster member's record over a filtered match set,
// overall and split by doubles position.
type PlayerScore struct {
	Name    string `json:"name"`
	Matches int    `json:"matches"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Draws   int    `json:"draws"`

	DeuceMatches int `json:"deuceMatches"`
	DeuceWins    int `json:"deuceWins"`
	DeuceLosses  int `json:"deuceLosses"`
	DeuceDraws   int `json:"deuceDraws"`

	AdMatches int `json:"adMatches"`
	AdWins    int `json:"adWins"`
	AdLosses  int `json:"adLosses"`
	AdDraws   int `json:"adDraws"`

	WinRate      int `json:"winRate"`
	DeuceRate    int `json:"deuceRate"`
	DeuceWinRate int `json:"deuceWinRate"`
	AdRate       int `json:"adRate"`
	AdWinRate    int `json:"adWinRate"`

	// WeightedDiff is a signed indicator of position asymmetry:
	// round(100·(deuceWins−adWins)/matches), 0 when no matches.
	WeightedDiff int `json:"weightedDiff"`
}

// PlayerScores computes one row per member over the filtered set,
// sorted by matches played, descending. Empty input yields all-zero
// rows, never an error.
func PlayerScores(members []string, records []match.Record) []PlayerScore {
	scores := make([]PlayerScore, 0, len(members))
	for _, name := range members {
		s := PlayerScore{Name: name}
		for _, r := range records {
			p, ok := r.Placement(name)
			if !ok {
				continue
			}
			result, _ := r.ResultFor(name)

			s.Matches++
			switch result {
			case match.ResultWin:
				s.Wins++
			case match.ResultLoss:
				s.Losses++
			case match.ResultDraw:
				s.Draws++
			}

			switch p.Position {
			case match.PositionDeuce:
				s.DeuceMatches++
				switch result {
				case match.ResultWin:
					s.DeuceWins++
				case match.ResultLoss:
					s.DeuceLosses++
				case match.ResultDraw:
					s.DeuceDraws++
				}
			case match.PositionAd:
				s.AdMatches++
				switch result {
				case match.ResultWin:
					s.AdWins++
				case match.ResultLoss:
					s.AdLosses++
				case match.ResultDraw:
					s.AdDraws++
				}
			}
		}

		s.WinRate = safeRate(s.Wins, s.Matches)
		s.DeuceRate = safeRate(s.DeuceMatches, s.Matches)
		s.DeuceWinRate = safeRate(s.DeuceWins, s.DeuceMatches)
		s.AdRate = safeRate(s.AdMatches, s.Matches)
		s.AdWinRate = safeRate(s.AdWins, s.AdMatches)
		if s.Matches > 0 {
			s.WeightedDiff = roundRate(s.DeuceWins-s.AdWins, s.Matches)
		}
		scores = append(scores, s)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Matches > scores[j].Matches
	})
	return scores
}

// ChemistryRow compares one member against the base player: results
// with them as a teammate versus as an opponent, counted from the base
// player's side.
type ChemistryRow struct {
	Name string `json:"name"`

	SameTeamMatches int `json:"sameTeamMatches"`
	SameTeamWins    int `json:"sameTeamWins"`
	SameTeamDraws   int `json:"sameTeamDraws"`
	SameTeamLosses  int `json:"sameTeamLosses"`

	OpponentMatches int `json:"opponentMatches"`
	OpponentWins    int `json:"opponentWins"`
	OpponentDraws   int `json:"opponentDraws"`
	OpponentLosses  int `json:"opponentLosses"`

	SameTeamWinRate int `json:"sameTeamWinRate"`
	OpponentWinRate int `json:"opponentWinRate"`

	// WinRateDiff > 0 means the base player fares better with this
	// member as a partner than against them.
	WinRateDiff int `json:"winRateDiff"`
}

// Chemistry computes a comparison row for every member other than the
// base player, sorted by shared matches, descending.
func Chemistry(base string, members []string, records []match.Record) []ChemistryRow {
	rows := make([]ChemistryRow, 0, len(members))
	for _, name := range members {
		if name == base {
			continue
		}
		row := ChemistryRow{Name: name}
		for _, r := range records {
			basePlacement, baseOK := r.Placement(base)
			otherPlacement, otherOK := r.Placement(name)
			if !baseOK || !otherOK {
				continue
			}
			result, _ := r.ResultFor(base)

			if basePlacement.Team == otherPlacement.Team {
				row.SameTeamMatches++
				switch result {
				case match.ResultWin:
					row.SameTeamWins++
				case match.ResultLoss:
					row.SameTeamLosses++
				case match.ResultDraw:
					row.SameTeamDraws++
				}
			} else {
				row.OpponentMatches++
				switch result {
				case match.ResultWin:
					row.OpponentWins++
				case match.ResultLoss:
					row.OpponentLosses++
				case match.ResultDraw:
					row.OpponentDraws++
				}
			}
		}

		row.SameTeamWinRate = safeRate(row.SameTeamWins, row.SameTeamMatches)
		row.OpponentWinRate = safeRate(row.OpponentWins, row.OpponentMatches)
		row.WinRateDiff = row.SameTeamWinRate - row.OpponentWinRate
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SameTeamMatches > rows[j].SameTeamMatches
	})
	return rows
}

// PairScore is one regular doubles pair's record across the filtered
// set, keyed order-independently.
type PairScore struct {
	Pair    string `json:"pair"`
	Matches int    `json:"matches"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	WinRate int    `json:"winRate"`
}

// PairScores accumulates per-pair results over the doubles matches in
// the set. A team is skipped unless both players belong to the given
// regular-member subset. Sorted by matches then key for deterministic
// output.
func PairScores(regulars []string, records []match.Record) []PairScore {
	regularSet := toSet(regulars)
	pairs := make(map[string]*PairScore)

	tally := func(deuce string, ad match.Slot, result match.Result) {
		partner, ok := ad.Get()
		if !ok {
			return
		}
		if regularSet == nil || !regularSet[deuce] || !regularSet[partner] {
			return
		}
		key := match.PairKey(deuce, partner)
		p, ok := pairs[key]
		if !ok {
			p = &PairScore{Pair: key}
			pairs[key] = p
		}
		p.Matches++
		switch result {
		case match.ResultWin:
			p.Wins++
		case match.ResultLoss:
			p.Losses++
		}
	}

	for _, r := range records {
		if !r.Doubles() {
			continue
		}
		tally(r.Team1Deuce, r.Team1Ad, r.Team1Result)
		tally(r.Team2Deuce, r.Team2Ad, r.Team2Result)
	}

	out := make([]PairScore, 0, len(pairs))
	for _, p := range pairs {
		p.WinRate = safeRate(p.Wins, p.Matches)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Matches != out[j].Matches {
			return out[i].Matches > out[j].Matches
		}
		return out[i].Pair < out[j].Pair
	})
	return out
}

// PairMatches returns the matches where the two players formed one
// team, preserving input order.
func PairMatches(a, b string, records []match.Record) []match.Record {
	var out []match.Record
	for _, r := range records {
		if r.PairOnSameTeam(a, b) {
			out = append(out, r)
		}
	}
	return out
}

// safeRate is the shared percentage convention: a zero denominator
// yields 0, never NaN or an error.
func safeRate(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	return roundRate(numerator, denominator)
}

func roundRate(numerator, denominator int) int {
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}
