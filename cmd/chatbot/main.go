package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"safewatch-chatbot/internal/core"
	"safewatch-chatbot/internal/fda"
	"safewatch-chatbot/internal/store"

	"github.com/joho/godotenv"
)

// The CLI front-end shares the resolver with the HTTP API: every line is
// handled as one stateless request against the file sink, with no LLM
// parser in the loop.
func main() {
	_ = godotenv.Load()

	sink, err := store.New(store.Config{
		Backend:  os.Getenv("STORAGE_BACKEND"),
		FilePath: os.Getenv("DATA_FILE"),
		RedisURL: os.Getenv("REDIS_URL"),
	})
	if err != nil {
		log.Fatalf("failed to construct report sink: %v", err)
	}
	chat := core.NewChatService(fda.NewClient(), sink, nil)

	fmt.Println("--------------------------------------------------")
	fmt.Println("Welcome to the SafeWatch AI FDA Adverse Event Chatbot!")
	fmt.Println("--------------------------------------------------")
	fmt.Println("You can ask me to:")
	fmt.Println("1. 'Show adverse events for [drug_name]'")
	fmt.Println("2. Report an event: 'I took [drug] and experienced [reaction]'")
	fmt.Println("Type 'exit' or 'quit' to stop.")
	fmt.Println("--------------------------------------------------")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if lower := strings.ToLower(input); lower == "exit" || lower == "quit" {
			fmt.Println("Chatbot: Goodbye!")
			return
		}

		resp := chat.Handle(context.Background(), input)
		fmt.Println("Chatbot: " + resp.Response)
		for i, event := range resp.Data {
			fmt.Printf("  %d. %s\n", i+1, event)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading input: %v", err)
	}
}
