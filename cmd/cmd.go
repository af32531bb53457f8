package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	cliapp "github.com/urfave/cli/v2"

	"github.com/webitel/cel-engine/internal/cli"
)

const (
	ServiceName      = "cel-engine"
	ServiceNamespace = "webitel"
)

var (
	version        = "0.0.0"
	commit         = "hash"
	commitDate     = time.Now().String()
	branch         = "branch"
	buildTimestamp = ""
)

const (
	defaultConfigFile = "/etc/asterisk/cel.conf"
	defaultHTTPAddr   = "127.0.0.1:9090"
)

func Run() error {
	app := &cliapp.App{
		Name:  ServiceName,
		Usage: "Channel event logging correlation and fan-out engine",
		Commands: []*cliapp.Command{
			serverCmd(),
			statusCmd(),
			watchCmd(),
			reloadCmd(),
		},
	}

	return app.Run(os.Args)
}

func configFlag() *cliapp.StringFlag {
	return &cliapp.StringFlag{
		Name:  "config",
		Usage: "path to cel.conf",
		Value: defaultConfigFile,
	}
}

func addrFlag() *cliapp.StringFlag {
	return &cliapp.StringFlag{
		Name:  "addr",
		Usage: "engine ops HTTP address",
		Value: defaultHTTPAddr,
	}
}

func serverCmd() *cliapp.Command {
	return &cliapp.Command{
		Name:    "server",
		Aliases: []string{"s"},
		Usage:   "Run the CEL engine",
		Flags:   []cliapp.Flag{configFlag(), addrFlag()},
		Action: func(c *cliapp.Context) error {
			app := NewApp(c.String("config"), c.String("addr"))

			if err := app.Start(c.Context); err != nil {
				return err
			}

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop

			slog.Info("cel: shutting down")
			return app.Stop(context.Background())
		},
	}
}

func statusCmd() *cliapp.Command {
	return &cliapp.Command{
		Name:  "status",
		Usage: "Show CEL Logging status (cel show status)",
		Flags: []cliapp.Flag{addrFlag()},
		Action: func(c *cliapp.Context) error {
			s, err := cli.FetchStatus(c.String("addr"))
			if err != nil {
				return err
			}
			cli.PrintRemoteStatus(os.Stdout, s)
			return nil
		},
	}
}

func watchCmd() *cliapp.Command {
	return &cliapp.Command{
		Name:  "watch",
		Usage: "Live dashboard of CEL Logging status",
		Flags: []cliapp.Flag{addrFlag()},
		Action: func(c *cliapp.Context) error {
			return cli.Watch(c.String("addr"))
		},
	}
}

func reloadCmd() *cliapp.Command {
	return &cliapp.Command{
		Name:  "reload",
		Usage: "Force the engine to reload cel.conf",
		Flags: []cliapp.Flag{addrFlag()},
		Action: func(c *cliapp.Context) error {
			if err := cli.TriggerReload(c.String("addr")); err != nil {
				return err
			}
			fmt.Println("cel.conf reloaded")
			return nil
		},
	}
}
