package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

const (
	modalGapCheckCallbackID = "gapcheck_modal"
	gapCheckMetaPrefix      = "gapcheck:"

	blockOrders       = "gapcheck_orders"
	actionOrdersInput = "orders_input"
	blockAppointments = "gapcheck_appointments"
	actionApptsInput  = "appointments_input"
	blockNotes        = "gapcheck_notes"
	actionNotesInput  = "notes_input"
)

func StartSlackBot(cfg Config, catalog *Catalog, api *slack.Client) error {
	client := socketmode.New(api)

	go func() {
		for evt := range client.Events {
			switch evt.Type {
			case socketmode.EventTypeSlashCommand:
				client.Ack(*evt.Request)
				cmd, ok := evt.Data.(slack.SlashCommand)
				if !ok {
					continue
				}
				log.Printf("Slash command received: %s from user=%s channel=%s", cmd.Command, cmd.UserID, cmd.ChannelID)
				go handleSlashCommand(api, cmd)
			case socketmode.EventTypeInteractive:
				client.Ack(*evt.Request)
				callback, ok := evt.Data.(slack.InteractionCallback)
				if !ok {
					continue
				}
				go handleInteraction(api, cfg, catalog, callback)
			}
		}
	}()

	log.Println("Slack bot connected via Socket Mode")
	return client.Run()
}

func handleSlashCommand(api *slack.Client, cmd slack.SlashCommand) {
	switch cmd.Command {
	case "/gapcheck":
		openGapCheckModal(api, cmd.TriggerID, cmd.ChannelID, cmd.UserID)
	case "/gapcheck-help", "/help":
		handleHelp(api, cmd)
	}
}

func handleInteraction(api *slack.Client, cfg Config, catalog *Catalog, cb slack.InteractionCallback) {
	if cb.Type != slack.InteractionTypeViewSubmission {
		return
	}
	if cb.View.CallbackID != modalGapCheckCallbackID {
		return
	}
	handleGapCheckSubmission(api, cfg, catalog, cb)
}

func openGapCheckModal(api *slack.Client, triggerID, channelID, userID string) {
	multiline := func(blockID, actionID, label, placeholder string, optional bool) slack.Block {
		input := slack.NewPlainTextInputBlockElement(
			slack.NewTextBlockObject(slack.PlainTextType, placeholder, false, false),
			actionID,
		)
		input.Multiline = true
		block := slack.NewInputBlock(
			blockID,
			slack.NewTextBlockObject(slack.PlainTextType, label, false, false),
			nil,
			input,
		)
		block.Optional = optional
		return block
	}

	blocks := []slack.Block{
		multiline(blockOrders, actionOrdersInput, "Orders", "Paste the orders list, one per line", false),
		multiline(blockAppointments, actionApptsInput, "Appointments", "Paste the scheduled appointments, one per line", true),
		multiline(blockNotes, actionNotesInput, "Progress notes", "Paste the relevant progress notes", true),
	}

	view := slack.ModalViewRequest{
		Type:            slack.VTModal,
		Title:           slack.NewTextBlockObject(slack.PlainTextType, "Care gap check", false, false),
		Close:           slack.NewTextBlockObject(slack.PlainTextType, "Cancel", false, false),
		Submit:          slack.NewTextBlockObject(slack.PlainTextType, "Analyze", false, false),
		CallbackID:      modalGapCheckCallbackID,
		PrivateMetadata: gapCheckMetaPrefix + channelID,
		Blocks:          slack.Blocks{BlockSet: blocks},
	}
	if _, err := api.OpenView(triggerID, view); err != nil {
		postEphemeralTo(api, channelID, userID, fmt.Sprintf("Unable to open gap check dialog: %v", err))
	}
}

func handleGapCheckSubmission(api *slack.Client, cfg Config, catalog *Catalog, cb slack.InteractionCallback) {
	userID := cb.User.ID
	channelID := strings.TrimPrefix(strings.TrimSpace(cb.View.PrivateMetadata), gapCheckMetaPrefix)
	if cb.View.State == nil || cb.View.State.Values == nil {
		return
	}
	values := cb.View.State.Values
	ordersText := values[blockOrders][actionOrdersInput].Value
	appointmentsText := values[blockAppointments][actionApptsInput].Value
	notesText := values[blockNotes][actionNotesInput].Value

	result := AnalyzeMissingProcedures(catalog, ordersText, appointmentsText, notesText, time.Now().In(cfg.Location))
	report := BuildFindingsReport(result, cfg.TeamName)

	if path, err := WriteReportFile(report, cfg.ReportOutputDir, result, cfg.TeamName); err != nil {
		log.Printf("write report file run=%s: %v", result.RunID, err)
	} else {
		log.Printf("report written run=%s path=%s", result.RunID, path)
	}

	target := cfg.ReportChannelID
	if target == "" {
		target = channelID
	}
	if target == "" {
		// Fall back to a DM with the submitter.
		channel, _, _, err := api.OpenConversation(&slack.OpenConversationParameters{Users: []string{userID}})
		if err != nil {
			log.Printf("open DM with %s: %v", userID, err)
			return
		}
		target = channel.ID
	}

	if _, _, err := api.PostMessage(target, slack.MsgOptionText(report, false)); err != nil {
		log.Printf("post report run=%s: %v", result.RunID, err)
	}
}

func handleHelp(api *slack.Client, cmd slack.SlashCommand) {
	help := "*Care gap check*\n" +
		"`/gapcheck` opens a dialog with three paste boxes: the patient's orders list, " +
		"their scheduled appointments, and the recent progress notes. The bot matches each " +
		"line against the procedure catalog and reports every procedure ordered in the last " +
		fmt.Sprintf("%d months", recentWindowMonths) + " that has no appointment and is not " +
		"addressed in the notes (refused, completed elsewhere, contraindicated, ...).\n" +
		"Appointments and notes may be left empty."
	postEphemeralTo(api, cmd.ChannelID, cmd.UserID, help)
}

func postEphemeralTo(api *slack.Client, channelID, userID, text string) {
	if _, err := api.PostEphemeral(channelID, userID, slack.MsgOptionText(text, false)); err != nil {
		log.Printf("post ephemeral to %s in %s: %v", userID, channelID, err)
	}
}
