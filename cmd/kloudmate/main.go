package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Rhushya/Kloudmate/internal/assistant"
	"github.com/Rhushya/Kloudmate/internal/config"
	"github.com/Rhushya/Kloudmate/internal/logger"
	"github.com/Rhushya/Kloudmate/internal/session"
	"github.com/Rhushya/Kloudmate/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, cfg.Debug, cfg.Verbose, false)

	st, err := store.New(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}

	llm := assistant.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, nil)
	pipeline := assistant.New(st, llm)
	transcript := session.NewTranscript()

	fmt.Println("Kloudmate observability assistant. Ask about CPU, memory and disk usage.")
	fmt.Println("Type 'history' to review the session, 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		switch {
		case question == "":
			continue
		case question == "exit" || question == "quit":
			fmt.Println("Bye.")
			return
		case question == "history":
			printHistory(transcript)
			continue
		}

		exchange := pipeline.Ask(context.Background(), question)
		transcript.Append(exchange)
		printExchange(exchange)
	}

	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		os.Exit(1)
	}
}

func printExchange(exchange assistant.Exchange) {
	if exchange.Failed() {
		fmt.Printf("Sorry, I encountered an error: %s\n", exchange.Err)
		if exchange.SQL != "" {
			fmt.Printf("  sql: %s\n", exchange.SQL)
		}
		return
	}

	fmt.Println(exchange.Summary)
	fmt.Printf("  sql: %s\n", exchange.SQL)
	fmt.Printf("  rows: %d\n", len(exchange.Rows))
}

func printHistory(transcript *session.Transcript) {
	exchanges := transcript.All()
	if len(exchanges) == 0 {
		fmt.Println("No exchanges yet.")
		return
	}
	for i, exchange := range exchanges {
		fmt.Printf("[%d] %s\n", i+1, exchange.Question)
		if exchange.Failed() {
			fmt.Printf("    error: %s\n", exchange.Err)
			continue
		}
		fmt.Printf("    %s\n", exchange.Summary)
	}
}
