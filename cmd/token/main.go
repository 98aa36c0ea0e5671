// Command token prints a signed session token for local development.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"venuehub/internal/config"
	"venuehub/pkg/auth"
)

func main() {
	sub := flag.String("sub", "dev-user", "user id (token subject)")
	name := flag.String("name", "Developer", "display name")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadForTool()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}

	tok, err := auth.CreateAccessToken([]byte(cfg.JWTSecret), *sub, *name, *ttl)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	fmt.Println(tok)
}
