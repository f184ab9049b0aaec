package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"deli-pos/internal/adapters/cli"
	"deli-pos/internal/adapters/repl"
	"deli-pos/internal/ai"
	"deli-pos/internal/app"
	"deli-pos/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	var st store.Store
	if os.Getenv("DATABASE_URL") != "" {
		pool, err := store.NewPool(ctx)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		defer pool.Close()

		pg := store.NewPostgresStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to prepare schema: %v", err)
		}
		st = pg
	} else {
		log.Println("DATABASE_URL not set; state will not survive restarts")
		st = store.NewMemoryStore()
	}

	var agent ai.AgentService
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		agent = ai.NewAgent(apiKey)
	} else {
		log.Println("Warning: OPENAI_API_KEY is not set, natural language commands disabled")
	}

	svc := app.NewAppService(ctx, st, agent)

	if len(os.Args) > 1 {
		cli.Run(ctx, svc, os.Args[1:])
		return
	}
	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}
