package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"safewatch-chatbot/internal/core"
	"safewatch-chatbot/internal/fda"
	httpserver "safewatch-chatbot/internal/http"
	"safewatch-chatbot/internal/llm"
	"safewatch-chatbot/internal/store"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load a local .env when present; real deployments set env directly.
	_ = godotenv.Load()

	storeCfg := store.Config{
		Backend:  os.Getenv("STORAGE_BACKEND"),
		FilePath: os.Getenv("DATA_FILE"),
		RedisURL: os.Getenv("REDIS_URL"),
	}
	// The postgres backend needs an open, verified connection with the
	// schema applied before the first request.
	if storeCfg.Backend == store.BackendPostgres {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			log.Fatal("DATABASE_URL must be set for the postgres backend")
		}
		dbConn, err := sql.Open("postgres", dbURL)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := dbConn.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping database: %v", err)
		}
		if err := store.Migrate(context.Background(), dbConn); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		storeCfg.DB = dbConn
	}
	sink, err := store.New(storeCfg)
	if err != nil {
		log.Fatalf("failed to construct report sink: %v", err)
	}

	// The OpenAI parser is optional (uses env: OPENAI_API_KEY,
	// OPENAI_MODEL_PARSER); without an API key every message goes through
	// the rule cascade.
	var parser core.AlternateParser
	if p := llm.NewOpenAIParser(); p != nil {
		parser = p
		log.Println("alternate parser enabled")
	}

	chatService := core.NewChatService(fda.NewClient(), sink, parser)
	srv := httpserver.NewServer(chatService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	log.Printf("Listening on %s", addr)
	if err := http.ListenAndServe(addr, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
