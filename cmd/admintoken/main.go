// Command admintoken prints a bearer token for the /v1/stats endpoint.
//
//	JWT_SECRET=... go run ./cmd/admintoken -sub ops -ttl 24h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	jwtmw "growth_backend/internal/platform/jwt"
)

func main() {
	sub := flag.String("sub", "admin", "subject claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load(".env")

	token, err := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), *ttl).GenerateToken(*sub, jwtmw.RoleAdmin)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
