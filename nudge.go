package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

// StartReminderScheduler DMs the configured clinical staff on a cron
// schedule, reminding them to run a gap check on their patient panels.
// The schedule is a standard 5-field cron expression (minute hour
// day-of-month month day-of-week). Examples: "0 9 * * 1" (Mondays 9am),
// "0 8 1 * *" (first of the month 8am).
func StartReminderScheduler(cfg Config, api *slack.Client) {
	schedule := strings.TrimSpace(cfg.ReminderSchedule)
	if schedule == "" {
		log.Println("Reminder disabled (reminder_schedule not set)")
		return
	}
	if len(cfg.ClinicalStaff) == 0 {
		log.Println("Reminder disabled: no clinical_staff configured")
		return
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		log.Printf("Invalid reminder_schedule '%s': %v — reminder disabled", schedule, err)
		return
	}

	staffIDs, unresolved, err := resolveUserIDs(api, cfg.ClinicalStaff)
	if err != nil && len(staffIDs) == 0 {
		log.Printf("Error resolving clinical_staff: %v — reminder disabled", err)
		return
	}
	if len(unresolved) > 0 {
		log.Printf("Unresolved clinical_staff: %s", strings.Join(unresolved, ", "))
	}

	log.Printf("Reminder scheduled (cron: %s) for %d staff members", schedule, len(staffIDs))

	go func() {
		for {
			now := time.Now().In(cfg.Location)
			next := sched.Next(now)
			wait := next.Sub(now)
			log.Printf("Next reminder at %s (in %s)", next.Format("Mon Jan 2 15:04"), wait.Round(time.Minute))

			time.Sleep(wait)
			sendReminders(api, cfg, staffIDs)
		}
	}()
}

func sendReminders(api *slack.Client, cfg Config, staffIDs []string) {
	msg := reminderMessage(cfg)
	for _, userID := range staffIDs {
		channel, _, _, err := api.OpenConversation(&slack.OpenConversationParameters{
			Users: []string{userID},
		})
		if err != nil {
			log.Printf("Error opening DM with %s: %v", userID, err)
			continue
		}

		_, _, err = api.PostMessage(channel.ID, slack.MsgOptionText(msg, false))
		if err != nil {
			log.Printf("Error sending reminder to %s: %v", userID, err)
		} else {
			log.Printf("Sent reminder to %s", userID)
		}
	}
}

func reminderMessage(cfg Config) string {
	channelRef := ""
	if cfg.ReportChannelID != "" {
		channelRef = fmt.Sprintf(" Reports are posted in <#%s>.", cfg.ReportChannelID)
	}
	return fmt.Sprintf(
		"Hey! Friendly reminder to run `/gapcheck` on your patient panel: paste the orders, "+
			"appointments and notes and the bot flags anything ordered in the last %d months "+
			"that was never scheduled.%s",
		recentWindowMonths, channelRef,
	)
}
