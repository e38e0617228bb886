// Command orderctl - консольный клиент: интерактивная сессия и демо на локальном ядре,
// команды к удалённому order-service и просмотр событий из Kafka.
package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vladislavdragonenkov/orderflow/internal/app"
	"github.com/vladislavdragonenkov/orderflow/internal/version"
)

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "orderctl",
		Usage:     "manage orders through their lifecycle",
		Version:   version.GetVersion(),
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "logrus level for diagnostics on stderr",
				EnvVars: []string{"ORDERCTL_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			if err := app.LoadDotEnv(); err != nil {
				return err
			}
			level, err := log.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			log.SetOutput(c.App.ErrWriter)
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			shellCommand(),
			demoCommand(),
			remoteCommand(),
			watchCommand(),
		},
	}
}

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "orderctl:", err)
		os.Exit(1)
	}
}
