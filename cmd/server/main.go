package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/youthblossom/canopy/internal/db"
	"github.com/youthblossom/canopy/internal/web"
)

func main() {
	// Optional .env for local development; real deployments set env directly.
	_ = godotenv.Load()

	// Init DB (creates canopy.db in working dir unless DB_PATH is set)
	if err := db.Init(); err != nil {
		log.Fatalf("db init: %v", err)
	}

	r := web.Router(db.Conn())

	addr := getEnv("ADDR", ":4000")
	log.Printf("Canopy backend listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
