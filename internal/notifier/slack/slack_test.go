package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/metrics"
	"github.com/glzpr1598/burn-to-win/internal/schedule"
	"github.com/glzpr1598/burn-to-win/internal/stats"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

// Test one of the public methods to ensure it calls the private sender.
func TestAnnounceSchedule_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	sched := &schedule.Schedule{
		Date:      "2026-09-05",
		StartTime: "19:00",
		EndTime:   "22:00",
		Location:  "체육관",
		Maximum:   12,
	}

	err := notifier.AnnounceSchedule(sched, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via AnnounceSchedule")
}

func TestFormatScheduleAnnouncement(t *testing.T) {
	sched := &schedule.Schedule{
		Date:      "2026-09-05",
		StartTime: "19:00",
		EndTime:   "22:00",
		Location:  "체육관",
		Maximum:   12,
		Price:     5000,
	}
	client := &Notifier{channelID: "C123"}
	msg := client.formatScheduleAnnouncement(sched)
	require.Len(t, msg.Blocks.BlockSet, 3, "Expected 3 blocks")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "새 운동 일정")

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "2026-09-05")
	assert.Contains(t, section.Text.Text, "체육관")

	ctxBlock, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	require.Len(t, ctxBlock.ContextElements.Elements, 2)
}

func TestFormatScheduleFull(t *testing.T) {
	sched := &schedule.Schedule{Date: "2026-09-05", StartTime: "19:00", Location: "체육관", Maximum: 8}
	client := &Notifier{channelID: "C123"}
	msg := client.formatScheduleFull(sched, 8)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "8명 / 정원 8명")
}

func TestFormatMatchResult(t *testing.T) {
	record := &match.Record{
		Date:        "2026-08-30",
		Court:       "1",
		Team1Deuce:  "김철수",
		Team1Ad:     match.Some("박민수"),
		Team2Deuce:  "이영희",
		Team2Ad:     match.Some("최지은"),
		Team1Score:  21,
		Team2Score:  15,
		Team1Result: match.ResultWin,
		Team2Result: match.ResultLoss,
		Type:        "혼복(남vs여)",
	}
	client := &Notifier{channelID: "C123"}
	msg := client.formatMatchResult(record)
	require.Len(t, msg.Blocks.BlockSet, 4)

	score, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, score.Text.Text, "21 : 15")

	ctxBlock, ok := msg.Blocks.BlockSet[3].(*slackapi.ContextBlock)
	require.True(t, ok)
	winner, ok := ctxBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Contains(t, winner.Text, "김철수 / 박민수")
}

func TestFormatLeaderboard(t *testing.T) {
	scores := []stats.PlayerScore{
		{Name: "김철수", Matches: 10, Wins: 7, Losses: 2, Draws: 1, WinRate: 70},
		{Name: "이영희", Matches: 8, Wins: 4, Losses: 4, WinRate: 50},
		{Name: "신입회원", Matches: 0},
	}
	client := &Notifier{channelID: "C123"}
	msg := client.formatLeaderboard(scores)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "김철수")
	assert.Contains(t, section.Text.Text, "승률 70%")
	// Members without matches are left off the board.
	assert.NotContains(t, section.Text.Text, "신입회원")
}

func TestFormatLeaderboard_Empty(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatLeaderboard(nil)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "집계할 경기가 없습니다")
}
