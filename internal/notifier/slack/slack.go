package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/metrics"
	"github.com/glzpr1598/burn-to-win/internal/notifier"
	"github.com/glzpr1598/burn-to-win/internal/schedule"
	"github.com/glzpr1598/burn-to-win/internal/stats"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) AnnounceSchedule(sched *schedule.Schedule, dryRun bool) error {
	msg := s.formatScheduleAnnouncement(sched)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) NotifyScheduleFull(sched *schedule.Schedule, attendees int, dryRun bool) error {
	msg := s.formatScheduleFull(sched, attendees)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) NotifyMatchResult(record *match.Record, dryRun bool) error {
	msg := s.formatMatchResult(record)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(scores []stats.PlayerScore, dryRun bool) error {
	msg := s.formatLeaderboard(scores)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(scores []stats.PlayerScore) (any, error) {
	return s.formatLeaderboard(scores), nil
}

// FormatPlayerStatsResponse formats a player stats message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(score *stats.PlayerScore) (any, error) {
	return s.formatPlayerStats(score), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject("plain_text",
			fmt.Sprintf("'%s' 회원을 찾을 수 없습니다.", query), false, false), nil, nil),
	}
	return slack.NewBlockMessage(blocks...), nil
}

// formatScheduleAnnouncement creates the Slack message for a new schedule using Block Kit.
func (s *Notifier) formatScheduleAnnouncement(sched *schedule.Schedule) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏸 새 운동 일정이 올라왔습니다 🏸", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("날짜: %s\n시간: %s ~ %s\n장소: %s",
		sched.Date, sched.StartTime, sched.EndTime, sched.Location)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	var contextElements []slack.MixedElement
	if sched.Maximum > 0 {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text",
			fmt.Sprintf("정원 %d명, 선착순 마감", sched.Maximum), true, false))
	}
	if sched.Price > 0 {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text",
			fmt.Sprintf("참가비 %d원", sched.Price), true, false))
	}
	if len(contextElements) > 0 {
		blocks = append(blocks, slack.NewContextBlock("", contextElements...))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatScheduleFull creates the Slack message for a schedule that hit its cap.
func (s *Notifier) formatScheduleFull(sched *schedule.Schedule, attendees int) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⛔ 참가 신청이 마감되었습니다", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s %s %s\n신청 인원 %d명 / 정원 %d명",
		sched.Date, sched.StartTime, sched.Location, attendees, sched.Maximum)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatMatchResult creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatMatchResult(record *match.Record) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏸 경기 결과가 등록되었습니다 🏸", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s · %s · %s", record.Date, record.Court, record.Type)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	team1 := strings.Join(record.Team1(), " / ")
	team2 := strings.Join(record.Team2(), " / ")
	scoreText := fmt.Sprintf("%s  %d : %d  %s", team1, record.Team1Score, record.Team2Score, team2)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", scoreText, false, false), nil, nil))

	if record.Team1Result == match.ResultDraw {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", "무승부", true, false)))
	} else {
		winners := team1
		if record.Team2Result == match.ResultWin {
			winners = team2
		}
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 %s 승리!", winners), true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates the Slack message for the leaderboard digest.
func (s *Notifier) formatLeaderboard(scores []stats.PlayerScore) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 승률 랭킹 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(scores) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text",
			"집계할 경기가 없습니다.", false, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for i, sc := range scores {
		if sc.Matches == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d. %s — %d전 %d승 %d패 %d무 (승률 %d%%)",
			i+1, sc.Name, sc.Matches, sc.Wins, sc.Losses, sc.Draws, sc.WinRate))
	}
	if len(lines) == 0 {
		lines = append(lines, "집계할 경기가 없습니다.")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text",
		strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates the Slack message for one member's record.
func (s *Notifier) formatPlayerStats(score *stats.PlayerScore) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏸 %s 전적", score.Name), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%d전 %d승 %d패 %d무 (승률 %d%%)\n전위(듀스) %d경기 승률 %d%% · 후위(애드) %d경기 승률 %d%%",
		score.Matches, score.Wins, score.Losses, score.Draws, score.WinRate,
		score.DeuceMatches, score.DeuceWinRate, score.AdMatches, score.AdWinRate)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
