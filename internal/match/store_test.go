package match_test

import (
	"testing"

	"github.com/glzpr1598/burn-to-win/internal/club"
	"github.com/glzpr1598/burn-to-win/internal/database"
	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (match.MatchStore, club.ClubStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	clubStore := club.New(db)
	require.NoError(t, clubStore.AddMember(club.Member{Name: "김철수", Gender: club.GenderMale}))
	require.NoError(t, clubStore.AddMember(club.Member{Name: "박민수", Gender: club.GenderMale}))
	require.NoError(t, clubStore.AddMember(club.Member{Name: "이영희", Gender: club.GenderFemale}))
	require.NoError(t, clubStore.AddMember(club.Member{Name: "최지은", Gender: club.GenderFemale}))

	return match.NewStore(db, clubStore), clubStore, dbTeardown
}

func TestCreateComputesResultAndType(t *testing.T) {
	store, _, teardown := setupTestStore(t)
	defer teardown()

	r := &match.Record{
		Date:       "2026-08-01",
		Court:      "1코트",
		Team1Deuce: "김철수",
		Team1Ad:    match.Some("박민수"),
		Team2Deuce: "이영희",
		Team2Ad:    match.Some("최지은"),
		Team1Score: 21,
		Team2Score: 17,
	}
	require.NoError(t, store.Create(r))
	require.NotZero(t, r.ID)

	got, err := store.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, match.ResultWin, got.Team1Result)
	assert.Equal(t, match.ResultLoss, got.Team2Result)
	assert.Equal(t, match.TypeMenVsWomen, got.Type)
}

func TestUpdateRecomputes(t *testing.T) {
	store, _, teardown := setupTestStore(t)
	defer teardown()

	r := &match.Record{
		Date:       "2026-08-01",
		Team1Deuce: "김철수",
		Team2Deuce: "박민수",
		Team1Score: 21,
		Team2Score: 10,
	}
	require.NoError(t, store.Create(r))
	assert.Equal(t, match.TypeMenSingles, r.Type)

	// Edit flips the score and swaps in a female opponent; both the
	// result pair and the category must be recomputed.
	r.Team2Deuce = "이영희"
	r.Team1Score = 15
	r.Team2Score = 21
	require.NoError(t, store.Update(r))

	got, err := store.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, match.ResultLoss, got.Team1Result)
	assert.Equal(t, match.ResultWin, got.Team2Result)
	assert.Equal(t, match.TypeMixedSingles, got.Type)
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	store, _, teardown := setupTestStore(t)
	defer teardown()

	err := store.Update(&match.Record{ID: 999, Team1Deuce: "김철수", Team2Deuce: "박민수"})
	assert.ErrorIs(t, err, match.ErrNotFound)

	assert.ErrorIs(t, store.Delete(999), match.ErrNotFound)

	_, err = store.Get(999)
	assert.ErrorIs(t, err, match.ErrNotFound)
}

func TestListOrderingAndCourts(t *testing.T) {
	store, _, teardown := setupTestStore(t)
	defer teardown()

	records := []*match.Record{
		{Date: "2026-08-01", Court: "B코트", Team1Deuce: "김철수", Team2Deuce: "박민수", Team1Score: 21, Team2Score: 19},
		{Date: "2026-08-03", Court: "A코트", Team1Deuce: "이영희", Team2Deuce: "최지은", Team1Score: 18, Team2Score: 21},
		{Date: "2026-08-03", Court: "B코트", Team1Deuce: "김철수", Team2Deuce: "이영희", Team1Score: 20, Team2Score: 20},
	}
	for _, r := range records {
		require.NoError(t, store.Create(r))
	}

	all, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest date first, ties broken by id descending.
	assert.Equal(t, records[2].ID, all[0].ID)
	assert.Equal(t, records[1].ID, all[1].ID)
	assert.Equal(t, records[0].ID, all[2].ID)

	courts, err := store.DistinctCourts()
	require.NoError(t, err)
	assert.Equal(t, []string{"A코트", "B코트"}, courts)
}

func TestSinglesStoresNullAdSlots(t *testing.T) {
	store, _, teardown := setupTestStore(t)
	defer teardown()

	r := &match.Record{
		Date:       "2026-08-01",
		Team1Deuce: "김철수",
		Team2Deuce: "이영희",
		Team1Score: 21,
		Team2Score: 12,
	}
	require.NoError(t, store.Create(r))

	got, err := store.Get(r.ID)
	require.NoError(t, err)
	assert.False(t, got.Team1Ad.IsSome())
	assert.False(t, got.Team2Ad.IsSome())
	assert.Equal(t, []string{"김철수", "이영희"}, got.Players())
}
