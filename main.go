package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/runs-on/penv/internal/cli"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()

	cli.Execute(cli.NewRootCommand(cli.NewApp(logger)))
}
