// Prints a bcrypt hash for seeding a user row by hand, using the same cost
// and minimum length the API applies at registration.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/auth"
	"github.com/your-org/storefront/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	log := logger.NewWithOutput(cfg.Logging, os.Stderr)

	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/generate_password.go <password>")
	}
	password := os.Args[1]

	passwords := auth.NewPasswordManager(cfg)
	if err := passwords.ValidatePassword(password); err != nil {
		log.WithError(err).Fatal("Password rejected")
	}

	hash, err := passwords.HashPassword(password)
	if err != nil {
		log.WithError(err).Fatal("Error generating hash")
	}
	if err := passwords.VerifyPassword(password, hash); err != nil {
		log.WithError(err).Fatal("Hash verification failed")
	}

	log.WithField("cost", cfg.Security.BcryptCost).Info("Hash verified")
	fmt.Println(hash)
}
