package main

import (
	"log"
	"os"

	"github.com/slack-go/slack"
)

func main() {
	cfg := LoadConfig()

	catalog, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded catalog with %d items from %s", len(catalog.Items), cfg.CatalogPath)

	os.MkdirAll(cfg.ReportOutputDir, 0755)

	api := slack.New(
		cfg.SlackBotToken,
		slack.OptionAppLevelToken(cfg.SlackAppToken),
	)

	StartReminderScheduler(cfg, api)

	log.Println("Starting Care Gap Bot...")
	if err := StartSlackBot(cfg, catalog, api); err != nil {
		log.Fatalf("Slack bot error: %v", err)
	}
}
