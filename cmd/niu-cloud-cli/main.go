package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/woozymasta/niu-cloud-cli/internal/commands"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := commands.NewApp(os.Stdout)
	app.Context = ctx

	parser, err := commands.NewParser(app)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build command line parser")
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(os.Stdout, flagsErr.Message)
				os.Exit(0)
			}
			fmt.Fprintln(os.Stderr, flagsErr.Message)
			os.Exit(1)
		}

		log.Error().Err(err).Msg("Command failed")
		stop()
		os.Exit(1)
	}
}
