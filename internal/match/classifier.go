package match

import (
	"sort"
	"strings"

	"github.com/glzpr1598/burn-to-win/internal/club"
)

// Match type labels. The fallback bucket 기타 covers anything that is
// not a recognizable singles or doubles lineup.
const (
	TypeMenSingles   = "남단"
	TypeWomenSingles = "여단"
	TypeMixedSingles = "혼단(남vs여)"
	TypeMenDoubles   = "남복"
	TypeWomenDoubles = "여복"
	TypeMixed3M      = "혼복(남3)"
	TypeMixed3F      = "혼복(여3)"
	TypeMenVsWomen   = "혼복(남vs여)"
	TypeMixedDoubles = "혼복"
	TypeOther        = "기타"
)

// Classify derives the match category from the four player slots and a
// name-to-gender lookup. A slot whose occupant is missing from the
// lookup does not count as a participant, so a lineup with unresolved
// genders falls through to 기타. The function is pure: the same slots
// and the same lookup always give the same label.
func Classify(slots [4]Slot, genders map[string]club.Gender) string {
	var resolved [4]club.Gender
	males, females, total := 0, 0, 0
	for i, slot := range slots {
		name, ok := slot.Get()
		if !ok {
			continue
		}
		g, ok := genders[name]
		if !ok {
			continue
		}
		resolved[i] = g
		total++
		switch g {
		case club.GenderMale:
			males++
		case club.GenderFemale:
			females++
		}
	}

	switch total {
	case 2:
		switch {
		case males == 2:
			return TypeMenSingles
		case females == 2:
			return TypeWomenSingles
		default:
			return TypeMixedSingles
		}
	case 4:
		switch {
		case males == 4:
			return TypeMenDoubles
		case females == 4:
			return TypeWomenDoubles
		case males == 3:
			return TypeMixed3M
		case females == 3:
			return TypeMixed3F
		case males == 2:
			team1AllMale := resolved[0] == club.GenderMale && resolved[1] == club.GenderMale
			team2AllFemale := resolved[2] == club.GenderFemale && resolved[3] == club.GenderFemale
			if team1AllMale && team2AllFemale {
				return TypeMenVsWomen
			}
			team1AllFemale := resolved[0] == club.GenderFemale && resolved[1] == club.GenderFemale
			team2AllMale := resolved[2] == club.GenderMale && resolved[3] == club.GenderMale
			if team1AllFemale && team2AllMale {
				return TypeMenVsWomen
			}
			return TypeMixedDoubles
		}
	}
	return TypeOther
}

// ComputeResult turns the two team scores into the symmetric
// win/loss/draw pair.
func ComputeResult(team1Score, team2Score int) (Result, Result) {
	switch {
	case team1Score > team2Score:
		return ResultWin, ResultLoss
	case team1Score < team2Score:
		return ResultLoss, ResultWin
	default:
		return ResultDraw, ResultDraw
	}
}

// PairKey forms the order-independent identifier of a doubles pair by
// sorting the two names lexicographically and joining them.
func PairKey(a, b string) string {
	if sort.StringsAreSorted([]string{a, b}) {
		return a + "/" + b
	}
	return b + "/" + a
}

// SplitPairKey is the inverse of PairKey.
func SplitPairKey(key string) (string, string) {
	parts := strings.SplitN(key, "/", 2)
	if len(parts) != 2 {
		return key, ""
	}
	return parts[0], parts[1]
}
