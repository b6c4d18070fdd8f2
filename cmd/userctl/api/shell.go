package api

import (
	"github.com/krainet/userctl/pkg/console"
	"github.com/krainet/userctl/pkg/libol"
	"github.com/urfave/cli/v2"
)

const historyFile = "~/.userctl/history"

type Shell struct {
	Cmd
}

func (u Shell) Start(c *cli.Context) error {
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	term, err := console.NewTerminal(app, prompter, libol.HomeFile(historyFile))
	if err != nil {
		u.Log().Error("Shell.Start: %s", err)
		return cli.Exit("shell: "+err.Error(), 1)
	}
	app.Navigate(c.Args().First())
	term.Start()
	return nil
}

func (u Shell) Commands(app *cli.App) cli.Commands {
	return append(app.Commands, &cli.Command{
		Name:      "shell",
		Aliases:   []string{"sh"},
		Usage:     "Interactive shell over the screens",
		ArgsUsage: "[path]",
		Action:    u.Start,
	})
}
