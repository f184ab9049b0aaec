// Command verify-store checks that the configured Postgres instance is
// reachable and that the state table round-trips a snapshot.
package main

import (
	"context"
	"log"
	"time"

	"deli-pos/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := store.NewPool(ctx)
	if err != nil {
		log.Fatalf("[CONNECT] %v", err)
	}
	defer pool.Close()
	log.Println("[CONNECT] success")

	st := store.NewPostgresStore(pool)
	if err := st.EnsureSchema(ctx); err != nil {
		log.Fatalf("[SCHEMA] %v", err)
	}
	log.Println("[SCHEMA] pos_state ready")

	probe := map[string]string{"written_at": time.Now().Format(time.RFC3339)}
	if err := st.Save(ctx, "verify_probe", probe); err != nil {
		log.Fatalf("[WRITE] %v", err)
	}

	var back map[string]string
	if err := st.Load(ctx, "verify_probe", &back); err != nil {
		log.Fatalf("[READ] %v", err)
	}
	if back["written_at"] != probe["written_at"] {
		log.Fatalf("[READ] probe mismatch: wrote %q, read %q", probe["written_at"], back["written_at"])
	}

	log.Println("[DONE] store round-trip verified")
}
