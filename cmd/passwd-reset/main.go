package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/seafortlabs/seafort/internal/cmd/passwdreset"
	"github.com/seafortlabs/seafort/internal/platform/config"
)

func main() {
	cfg, err := passwdreset.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		if errors.Is(err, passwdreset.ErrUsage) {
			config.Usagef("passwd-reset <email> <new-password>")
		}
		config.Exitf("parse flags: %v", err)
	}
	if err := passwdreset.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("reset password: %v", err)
	}
}
