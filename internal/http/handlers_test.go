package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glzpr1598/burn-to-win/internal/board"
	"github.com/glzpr1598/burn-to-win/internal/club"
	"github.com/glzpr1598/burn-to-win/internal/config"
	"github.com/glzpr1598/burn-to-win/internal/database"
	"github.com/glzpr1598/burn-to-win/internal/exchange"
	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/metrics"
	"github.com/glzpr1598/burn-to-win/internal/notifier"
	"github.com/glzpr1598/burn-to-win/internal/processor"
	"github.com/glzpr1598/burn-to-win/internal/pubsub"
	"github.com/glzpr1598/burn-to-win/internal/schedule"
	"github.com/glzpr1598/burn-to-win/internal/stats"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

const testAdminKey = "test-admin-key"

// setupTestServer initializes a new server with a test database and mock clients.
func setupTestServer(t *testing.T) (*Server, *notifier.Mock, *pubsub.MockPubSubClient, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	clubStore := club.New(db)
	matchStore := match.NewStore(db, clubStore)
	scheduleStore := schedule.NewStore(db)
	boardStore := board.NewStore(db)
	exchangeStore := exchange.NewStore(db)
	metricsStore := metrics.New(db)
	cfg := config.Config{AdminKey: testAdminKey}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	notif := notifier.NewMock()
	ps := pubsub.NewMock("TEST")
	proc := processor.New(clubStore, matchStore, notif, metricsSvc, ps)

	server := NewServer(clubStore, matchStore, scheduleStore, boardStore, exchangeStore,
		metricsSvc, metricsStore, metricsHandler, cfg, notif, proc, ps)

	// A small mixed roster for classification.
	require.NoError(t, clubStore.AddMember(club.Member{Name: "김철수", Gender: club.GenderMale}))
	require.NoError(t, clubStore.AddMember(club.Member{Name: "박민수", Gender: club.GenderMale}))
	require.NoError(t, clubStore.AddMember(club.Member{Name: "이영희", Gender: club.GenderFemale}))
	require.NoError(t, clubStore.AddMember(club.Member{Name: "최지은", Gender: club.GenderFemale}))

	return server, notif, ps, dbTeardown
}

func doJSON(t *testing.T, server *Server, method, target, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set("X-Admin-Key", testAdminKey)
	}
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "GET", "/health", "", false)
	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestCreateMatchClassifies(t *testing.T) {
	server, notif, _, teardown := setupTestServer(t)
	defer teardown()

	body := `{"date":"2026-08-30","court":"1","team1_deuce":"김철수","team1_ad":"박민수","team2_deuce":"이영희","team2_ad":"최지은","team1_score":"21","team2_score":"15"}`
	rr := doJSON(t, server, "POST", "/matches", body, false)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	env := decodeEnvelope(t, rr)
	require.True(t, env.Success)
	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var record match.Record
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "혼복(남vs여)", record.Type)
	assert.Equal(t, match.ResultWin, record.Team1Result)
	assert.Equal(t, match.ResultLoss, record.Team2Result)

	assert.Len(t, notif.NotifyMatchResultCalls, 1)
}

func TestCreateMatchRejectsNonNumericScore(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	body := `{"date":"2026-08-30","team1_deuce":"김철수","team2_deuce":"이영희","team1_score":"twenty","team2_score":"15"}`
	rr := doJSON(t, server, "POST", "/matches", body, false)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "숫자")
}

func TestDeleteMatchRequiresAdmin(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "DELETE", "/matches/1", "", false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// With the key, a missing match is a 404 rather than a 401.
	rr = doJSON(t, server, "DELETE", "/matches/1", "", true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPlayerScoresHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	body := `{"date":"2026-08-30","team1_deuce":"김철수","team2_deuce":"박민수","team1_score":"21","team2_score":"15"}`
	rr := doJSON(t, server, "POST", "/matches", body, false)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, server, "GET", "/score?period=all&types=남단", "", false)
	require.Equal(t, http.StatusOK, rr.Code)

	env := decodeEnvelope(t, rr)
	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var scores []map[string]any
	require.NoError(t, json.Unmarshal(data, &scores))
	require.Len(t, scores, 4)
	// Sorted by matches played; the two men's singles players lead.
	assert.Equal(t, float64(1), scores[0]["matches"])
	assert.Equal(t, float64(1), scores[1]["matches"])
}

func TestAttendanceFlow(t *testing.T) {
	server, _, ps, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "POST", "/schedules", `{"date":"2026-09-05","maximum":2}`, true)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Len(t, ps.SendMessageCalls, 1)
	assert.Equal(t, "schedule-announce", ps.SendMessageCalls[0].Topic)

	env := decodeEnvelope(t, rr)
	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var sched schedule.Schedule
	require.NoError(t, json.Unmarshal(data, &sched))

	attend := func(name string) *httptest.ResponseRecorder {
		return doJSON(t, server, "POST", fmt.Sprintf("/schedules/%d/attend", sched.ID), fmt.Sprintf(`{"name":%q}`, name), false)
	}

	rr = attend("김철수")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeEnvelope(t, rr).Success)

	// Duplicate signup
	rr = attend("김철수")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, decodeEnvelope(t, rr).Message, "이미 신청")

	// Second seat; hitting the cap publishes a schedule-full event.
	rr = attend("이영희")
	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, ps.SendMessageCalls, 2)
	assert.Equal(t, "schedule-full", ps.SendMessageCalls[1].Topic)

	// Full
	rr = attend("박민수")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, decodeEnvelope(t, rr).Message, "정원")

	// Cancel and the seat opens up again.
	rr = doJSON(t, server, "POST", fmt.Sprintf("/schedules/%d/cancel", sched.ID), `{"name":"김철수"}`, false)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = attend("박민수")
	assert.Equal(t, http.StatusOK, rr.Code)

	// Cancel without a registration
	rr = doJSON(t, server, "POST", fmt.Sprintf("/schedules/%d/cancel", sched.ID), `{"name":"최지은"}`, false)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, decodeEnvelope(t, rr).Message, "신청 내역")
}

func TestAttendUnknownSchedule(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "POST", "/schedules/999/attend", `{"name":"김철수"}`, false)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, decodeEnvelope(t, rr).Message, "일정")
}

func TestNoticeBoardRequiresAdmin(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	body := `{"author":"총무","title":"공지","content":"9월 모임"}`
	rr := doJSON(t, server, "POST", "/boards/notice/posts", body, false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, server, "POST", "/boards/notice/posts", body, true)
	assert.Equal(t, http.StatusOK, rr.Code)

	// The free board is open to everyone.
	rr = doJSON(t, server, "POST", "/boards/free/posts", `{"author":"김철수","title":"자유글"}`, false)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, server, "GET", "/boards/notice/posts", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var posts []board.Post
	require.NoError(t, json.Unmarshal(data, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "공지", posts[0].Title)
}

func TestExchangeDetailFlow(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "POST", "/exchange", `{"match_date":"2026-09-12","opponent_team_name":"스매시클럽"}`, true)
	require.Equal(t, http.StatusOK, rr.Code)

	env := decodeEnvelope(t, rr)
	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var master exchange.Master
	require.NoError(t, json.Unmarshal(data, &master))

	body := `{"court_num":1,"match_round":1,"deuce_player":"김철수","ad_player":"박민수","my_team_score":21,"op_team_score":15}`
	rr = doJSON(t, server, "PUT", fmt.Sprintf("/exchange/%d/details", master.ID), body, false)
	require.Equal(t, http.StatusOK, rr.Code)

	env = decodeEnvelope(t, rr)
	data, err = json.Marshal(env.Data)
	require.NoError(t, err)
	var detail exchange.Detail
	require.NoError(t, json.Unmarshal(data, &detail))
	assert.Equal(t, "승", detail.MatchResult)
}

// pushBody wraps a msgpack payload in the push-subscription envelope.
func pushBody(t *testing.T, payload any) []byte {
	t.Helper()
	raw, err := msgpack.Marshal(payload)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"subscription": "test-sub",
		"message":      map[string]string{"data": base64.StdEncoding.EncodeToString(raw)},
	})
	require.NoError(t, err)
	return body
}

func TestAnnounceScheduleHandler(t *testing.T) {
	server, notif, _, teardown := setupTestServer(t)
	defer teardown()

	ev := processor.ScheduleEvent{ScheduleID: 5, Date: "2026-09-05", Location: "체육관"}
	req, err := http.NewRequest("POST", "/announce-schedule", bytes.NewReader(pushBody(t, ev)))
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, notif.AnnounceScheduleCalls, 1)
	assert.Equal(t, "체육관", notif.AnnounceScheduleCalls[0].Location)
}

func TestAnnounceScheduleHandler_BadEnvelope(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	req, err := http.NewRequest("POST", "/announce-schedule", strings.NewReader("not json"))
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResultDigestHandler(t *testing.T) {
	server, notif, _, teardown := setupTestServer(t)
	defer teardown()

	req, err := http.NewRequest("POST", "/result-digest", bytes.NewReader(pushBody(t, processor.DigestEvent{Period: "all"})))
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, notif.SendLeaderboardCalls, 1)
	assert.Len(t, notif.SendLeaderboardCalls[0], 4)
}

func TestLeaderboardCommandHandler(t *testing.T) {
	server, notif, _, teardown := setupTestServer(t)
	defer teardown()

	var got []stats.PlayerScore
	notif.FormatLeaderboardResponseFunc = func(scores []stats.PlayerScore) (any, error) {
		got = scores
		return slack.NewBlockMessage(), nil
	}

	req, err := http.NewRequest("POST", "/slack/command/leaderboard", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Len(t, got, 4)
}

func TestPlayerStatsCommandHandler_NotFound(t *testing.T) {
	server, notif, _, teardown := setupTestServer(t)
	defer teardown()

	notif.FormatPlayerNotFoundResponseFunc = func(query string) (any, error) {
		assert.Equal(t, "김없음", query)
		return slack.NewBlockMessage(), nil
	}

	req, err := http.NewRequest("POST", "/slack/command/player-stats", strings.NewReader("text=김없음"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAdminMetricsHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	server.MetricsStore.Increment("matches_recorded")

	rr := doJSON(t, server, "GET", "/admin/metrics", "", true)
	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var counters map[string]int
	require.NoError(t, json.Unmarshal(data, &counters))
	assert.Equal(t, 1, counters["matches_recorded"])
}
