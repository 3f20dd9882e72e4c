// Package notify sends the morning training reminder over Telegram: which
// lift is scheduled today, the current week and phase, and whether the
// program is parked waiting on a decision.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"

	"github.com/mcunha/anvil/internal/config"
	"github.com/mcunha/anvil/internal/engine"
	"github.com/mcunha/anvil/internal/models"
)

// Notifier wires the engine to a Telegram chat on a cron schedule.
type Notifier struct {
	eng    *engine.Engine
	bot    *tgbotapi.BotAPI
	chatID int64
	hour   int
	now    func() time.Time
}

func New(eng *engine.Engine, cfg *config.Config) (*Notifier, error) {
	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("telegram token is not configured")
	}
	if cfg.Telegram.ChatID == 0 {
		return nil, fmt.Errorf("telegram chat id is not configured")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}

	return &Notifier{
		eng:    eng,
		bot:    bot,
		chatID: cfg.Telegram.ChatID,
		hour:   cfg.Notify.MorningHour,
		now:    time.Now,
	}, nil
}

// Run blocks, firing the morning message every day at the configured hour.
func (n *Notifier) Run(ctx context.Context) error {
	c := cron.New()
	spec := fmt.Sprintf("0 0 %d * * *", n.hour)
	err := c.AddFunc(spec, func() {
		if err := n.SendMorningMessage(ctx); err != nil {
			logrus.WithError(err).Error("failed to send morning message")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule morning message: %w", err)
	}

	logrus.WithField("hour", n.hour).Info("morning notifier running")
	c.Start()
	defer c.Stop()

	<-ctx.Done()
	return ctx.Err()
}

// SendMorningMessage composes and sends today's reminder immediately.
func (n *Notifier) SendMorningMessage(ctx context.Context) error {
	overview, err := n.eng.GetProgramState(ctx)
	if err != nil {
		return err
	}

	text := n.composeMessage(ctx, overview)
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	logrus.Info("morning message sent")
	return nil
}

func (n *Notifier) composeMessage(ctx context.Context, overview *engine.ProgramOverview) string {
	var b strings.Builder

	switch overview.PhaseStatus {
	case models.StatusPendingTMBump:
		b.WriteString("Cycle complete. Decide your TM bumps before training again.\n")
	case models.StatusPendingDeloadOrTest:
		b.WriteString("Block complete. Time for a deload or TM test.\n")
	}

	today := models.DayFromWeekday(n.now().Weekday())
	lift, scheduled := overview.Schedule[today]
	if !scheduled {
		fmt.Fprintf(&b, "Rest day. Week %d of the %s phase.", overview.CurrentWeek, overview.CurrentPhase)
		return b.String()
	}

	fmt.Fprintf(&b, "%s day. Week %d of the %s phase.\n", capitalize(string(lift)), overview.CurrentWeek, overview.CurrentPhase)

	workout, err := n.eng.TodaysWorkout(ctx, lift)
	if err != nil {
		// Missing TM or template: still send the reminder, with the hint.
		fmt.Fprintf(&b, "\n%s", err.Error())
		return b.String()
	}

	b.WriteString("\nMain work:\n")
	for _, set := range workout.MainWork {
		fmt.Fprintf(&b, "  %.0f lbs x %s (%d%%)\n", set.Weight, set.Reps, set.Percentage)
	}
	if len(workout.Supplemental) > 0 {
		b.WriteString("Supplemental:\n")
		for _, set := range workout.Supplemental {
			label := ""
			if set.Type != "" {
				label = " " + set.Type
			}
			fmt.Fprintf(&b, "  %dx%s @ %.0f lbs%s\n", set.Sets, set.Reps, set.Weight, label)
		}
	}

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
