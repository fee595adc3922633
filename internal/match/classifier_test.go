package match_test

import (
	"testing"

	"github.com/glzpr1598/burn-to-win/internal/club"
	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/stretchr/testify/assert"
)

func genderMap(pairs ...any) map[string]club.Gender {
	m := make(map[string]club.Gender)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i].(string)] = pairs[i+1].(club.Gender)
	}
	return m
}

func slots(names ...string) [4]match.Slot {
	var s [4]match.Slot
	for i, name := range names {
		s[i] = match.SlotOf(name)
	}
	return s
}

func TestComputeResult(t *testing.T) {
	r1, r2 := match.ComputeResult(21, 15)
	assert.Equal(t, match.ResultWin, r1)
	assert.Equal(t, match.ResultLoss, r2)

	r1, r2 = match.ComputeResult(15, 21)
	assert.Equal(t, match.ResultLoss, r1)
	assert.Equal(t, match.ResultWin, r2)

	r1, r2 = match.ComputeResult(20, 20)
	assert.Equal(t, match.ResultDraw, r1)
	assert.Equal(t, match.ResultDraw, r2)
}

// The result pair must be a mirror: result(a,b) flips result(b,a).
func TestComputeResultSymmetry(t *testing.T) {
	for a := 0; a <= 30; a++ {
		for b := 0; b <= 30; b++ {
			r1, r2 := match.ComputeResult(a, b)
			m2, m1 := match.ComputeResult(b, a)
			assert.Equal(t, r1, m1, "a=%d b=%d", a, b)
			assert.Equal(t, r2, m2, "a=%d b=%d", a, b)
			if r1 == match.ResultDraw {
				assert.Equal(t, match.ResultDraw, r2)
			} else {
				assert.NotEqual(t, r1, r2)
			}
		}
	}
}

func TestClassifySingles(t *testing.T) {
	m := club.GenderMale
	f := club.GenderFemale

	tests := []struct {
		name    string
		slots   [4]match.Slot
		genders map[string]club.Gender
		want    string
	}{
		{"two males", slots("A", "", "B", ""), genderMap("A", m, "B", m), match.TypeMenSingles},
		{"two females", slots("A", "", "B", ""), genderMap("A", f, "B", f), match.TypeWomenSingles},
		{"male vs female", slots("A", "", "B", ""), genderMap("A", m, "B", f), match.TypeMixedSingles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, match.Classify(tt.slots, tt.genders))
		})
	}
}

func TestClassifyDoubles(t *testing.T) {
	m := club.GenderMale
	f := club.GenderFemale

	tests := []struct {
		name    string
		slots   [4]match.Slot
		genders map[string]club.Gender
		want    string
	}{
		{"four males", slots("A", "B", "C", "D"), genderMap("A", m, "B", m, "C", m, "D", m), match.TypeMenDoubles},
		{"four females", slots("A", "B", "C", "D"), genderMap("A", f, "B", f, "C", f, "D", f), match.TypeWomenDoubles},
		{"three males", slots("A", "B", "C", "D"), genderMap("A", m, "B", m, "C", m, "D", f), match.TypeMixed3M},
		{"three females", slots("A", "B", "C", "D"), genderMap("A", f, "B", f, "C", f, "D", m), match.TypeMixed3F},
		{"male team vs female team", slots("A", "B", "C", "D"), genderMap("A", m, "B", m, "C", f, "D", f), match.TypeMenVsWomen},
		{"female team vs male team", slots("A", "B", "C", "D"), genderMap("A", f, "B", f, "C", m, "D", m), match.TypeMenVsWomen},
		{"mixed across teams", slots("A", "B", "C", "D"), genderMap("A", m, "B", f, "C", m, "D", f), match.TypeMixedDoubles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, match.Classify(tt.slots, tt.genders))
		})
	}
}

func TestClassifyFallback(t *testing.T) {
	m := club.GenderMale

	// No participants at all.
	assert.Equal(t, match.TypeOther, match.Classify(slots("", "", "", ""), genderMap()))
	// Single participant.
	assert.Equal(t, match.TypeOther, match.Classify(slots("A", "", "", ""), genderMap("A", m)))
	// Three participants.
	assert.Equal(t, match.TypeOther, match.Classify(slots("A", "B", "C", ""), genderMap("A", m, "B", m, "C", m)))
	// Four slots but one gender unresolved: only three count.
	assert.Equal(t, match.TypeOther, match.Classify(slots("A", "B", "C", "D"), genderMap("A", m, "B", m, "C", m)))
	// No resolvable genders.
	assert.Equal(t, match.TypeOther, match.Classify(slots("A", "B", "C", "D"), genderMap()))
}

// Same slots plus same lookup must always give the same label.
func TestClassifyDeterministic(t *testing.T) {
	m := club.GenderMale
	f := club.GenderFemale
	genders := genderMap("A", m, "B", f, "C", m, "D", f)
	s := slots("A", "B", "C", "D")

	first := match.Classify(s, genders)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, match.Classify(s, genders))
	}
}

func TestPairKey(t *testing.T) {
	assert.Equal(t, match.PairKey("김철수", "이영희"), match.PairKey("이영희", "김철수"))
	assert.Equal(t, "a/b", match.PairKey("b", "a"))
	assert.Equal(t, "a/b", match.PairKey("a", "b"))

	a, b := match.SplitPairKey("a/b")
	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)
}

func TestPlacementAndResultFor(t *testing.T) {
	r := match.Record{
		Team1Deuce:  "A",
		Team1Ad:     match.Some("B"),
		Team2Deuce:  "C",
		Team2Ad:     match.Some("D"),
		Team1Result: match.ResultWin,
		Team2Result: match.ResultLoss,
	}

	p, ok := r.Placement("B")
	assert.True(t, ok)
	assert.Equal(t, 1, p.Team)
	assert.Equal(t, match.PositionAd, p.Position)

	res, ok := r.ResultFor("D")
	assert.True(t, ok)
	assert.Equal(t, match.ResultLoss, res)

	_, ok = r.Placement("E")
	assert.False(t, ok)

	assert.True(t, r.PairOnSameTeam("A", "B"))
	assert.True(t, r.PairOnSameTeam("D", "C"))
	assert.False(t, r.PairOnSameTeam("A", "C"))
}

func TestSlotOptional(t *testing.T) {
	s := match.SlotOf("  ")
	assert.False(t, s.IsSome())

	s = match.SlotOf("김철수")
	name, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "김철수", name)

	// Singles record: ad slots empty, only two participants.
	r := match.Record{Team1Deuce: "A", Team2Deuce: "B"}
	assert.Equal(t, []string{"A", "B"}, r.Players())
	assert.False(t, r.Doubles())
}
