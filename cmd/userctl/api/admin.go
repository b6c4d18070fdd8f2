package api

import (
	"strconv"

	"github.com/krainet/userctl/pkg/router"
	"github.com/urfave/cli/v2"
)

type Admin struct {
	Cmd
}

func (u Admin) List(c *cli.Context) error {
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	defer prompter.Close()
	if err := u.Expect(app, router.Admin); err != nil {
		return err
	}
	return u.Done(app)
}

func (u Admin) Remove(c *cli.Context) error {
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil || id <= 0 {
		return cli.Exit("delete needs a user id", 1)
	}
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	defer prompter.Close()
	if err := u.Expect(app, router.Admin); err != nil {
		return err
	}
	if app.Message() != "" {
		return u.Done(app)
	}
	if err := app.Delete(id); err != nil {
		return err
	}
	return u.Done(app)
}

func (u Admin) Commands(app *cli.App) cli.Commands {
	return append(app.Commands, &cli.Command{
		Name:    "admin",
		Aliases: []string{"a"},
		Usage:   "Manage all users",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display all users",
				Aliases: []string{"ls"},
				Action:  u.List,
			},
			{
				Name:      "delete",
				Usage:     "Delete a user",
				Aliases:   []string{"rm"},
				ArgsUsage: "<id>",
				Action:    u.Remove,
			},
		},
	})
}
