package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/seafortlabs/seafort/internal/cmd/apikeyfix"
	"github.com/seafortlabs/seafort/internal/platform/config"
)

func main() {
	cfg, err := apikeyfix.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		if errors.Is(err, apikeyfix.ErrUsage) {
			config.Usagef("apikey-fix <org-slug> [api-key]")
		}
		config.Exitf("parse flags: %v", err)
	}
	if err := apikeyfix.Run(context.Background(), cfg, os.Stdout, nil); err != nil {
		config.Exitf("fix api key: %v", err)
	}
}
