package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/Lockbox_Go/internal/config"
	"github.com/osse101/Lockbox_Go/internal/identity"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

// Mints a bearer token naming a caller. The server trusts the subject as the
// caller identity, so the administrator token must be kept private.
func main() {
	_ = godotenv.Load()

	subject := flag.String("subject", os.Getenv(config.EnvAdministrator), "Caller identity to put in the token (defaults to ADMINISTRATOR)")
	ttl := flag.Duration("ttl", identity.DefaultTokenTTL, "Token lifetime")
	issuer := flag.String("issuer", envOr(config.EnvJWTIssuer, config.DefaultJWTIssuer), "Token issuer; must match the server's JWT_ISSUER")
	flag.Parse()

	// stdout carries only the token
	logCfg := logger.ProductionConfig()
	logCfg.ServiceName = "gen-caller-token"
	logCfg.Format = logger.LogFormatText
	logger.InitLoggerWithWriter(logCfg, os.Stderr)

	if *subject == "" {
		fatal("A subject is required: pass -subject or set ADMINISTRATOR")
	}

	signer, err := identity.NewSigner(identity.Config{
		Secret: os.Getenv(config.EnvJWTSecret),
		Issuer: *issuer,
	})
	if err != nil {
		fatal("Failed to create signer", "error", err)
	}

	token, err := signer.Sign(*subject, *ttl)
	if err != nil {
		fatal("Failed to sign token", "subject", *subject, "error", err)
	}

	logger.Info("Minted caller token", "subject", *subject, "issuer", *issuer, "ttl", *ttl)
	fmt.Println(token)
}

func fatal(msg string, args ...any) {
	logger.Error(msg, args...)
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
