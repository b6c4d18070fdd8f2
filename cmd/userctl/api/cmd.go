package api

import (
	"github.com/krainet/userctl/pkg/console"
	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/screen"
	"github.com/krainet/userctl/pkg/session"
	"github.com/krainet/userctl/pkg/storage"
	"github.com/urfave/cli/v2"
)

type Cmd struct {
}

func (c Cmd) Log() *libol.SubLogger {
	return libol.NewSubLogger("cli")
}

// NewApp builds the screen app from the global flags.
func (c Cmd) NewApp(ctx *cli.Context) (*console.App, *console.Prompter, error) {
	store, err := storage.NewFile(ctx.String("storage"))
	if err != nil {
		return nil, nil, err
	}
	prompter := &console.Prompter{Yes: ctx.Bool("yes")}
	app := console.NewApp(session.New(store), screen.ClientDialer(ctx.String("url")), prompter)
	app.Format = ctx.String("format")
	app.Out = ctx.App.Writer
	return app, prompter, nil
}

// Expect navigates to path and fails when the guard sends us elsewhere.
func (c Cmd) Expect(app *console.App, path string) error {
	app.Navigate(path)
	if app.Path != path {
		c.Log().Debug("Cmd.Expect: %s redirected to %s", path, app.Path)
		return cli.Exit(path+": not allowed, log in first", 1)
	}
	return nil
}

// Done renders the current screen and turns its error message into the
// exit status.
func (c Cmd) Done(app *console.App) error {
	if err := app.Render(); err != nil {
		return err
	}
	if msg := app.Message(); msg != "" {
		return cli.Exit(msg, 1)
	}
	return nil
}

// Ask returns value, or reads it from the terminal when empty.
func (c Cmd) Ask(reader console.Reader, value, prompt string, secret bool) (string, error) {
	if value != "" {
		return value, nil
	}
	if secret {
		return reader.Password(prompt)
	}
	return reader.Line(prompt)
}
