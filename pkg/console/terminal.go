package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/router"
	"github.com/krainet/userctl/pkg/schema"
	"github.com/krainet/userctl/pkg/screen"
)

const help = `open <path>   go to /login, /register, /profile or /admin
login         log in on the login screen
register      create an account on the register screen
update        edit your profile
delete [id]   delete your account, or user <id> on the admin screen
show          show the current screen again
logs          show recent warnings and errors
logout        end the session
quit          leave the shell`

var newConsole = readline.NewEx

type Terminal struct {
	App     *App
	Input   Reader
	Console *readline.Instance
}

// NewTerminal opens a readline console shared by the shell loop and
// the prompts of prompter.
func NewTerminal(app *App, prompter *Prompter, history string) (*Terminal, error) {
	t := &Terminal{App: app, Input: prompter}
	completer := readline.NewPrefixCompleter(
		readline.PcItem("quit"),
		readline.PcItem("help"),
		readline.PcItem("open",
			readline.PcItem(router.Login),
			readline.PcItem(router.Register),
			readline.PcItem(router.Profile),
			readline.PcItem(router.Admin),
		),
		readline.PcItem("login"),
		readline.PcItem("register"),
		readline.PcItem("update"),
		readline.PcItem("delete"),
		readline.PcItem("show"),
		readline.PcItem("logs"),
		readline.PcItem("logout"),
	)
	config := &readline.Config{
		Prompt:            t.Prompt(),
		HistoryFile:       history,
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
		AutoComplete:      completer,
	}
	l, err := newConsole(config)
	if err != nil {
		return nil, err
	}
	t.Console = l
	prompter.Instance = l
	if app.Confirm == nil {
		app.Confirm = prompter
	}
	return t, nil
}

func (t *Terminal) Prompt() string {
	role := t.App.Holder.Role()
	if role == "" {
		role = "anonymous"
	}
	path := t.App.Path
	if path == "" {
		path = router.Root
	}
	return fmt.Sprintf("[%s %s]# ", path, role)
}

func (t *Terminal) out() io.Writer {
	return t.App.Out
}

func (t *Terminal) show() {
	if err := t.App.Render(); err != nil {
		fmt.Fprintf(t.out(), "Terminal.show: %s\n", err)
	}
}

func (t *Terminal) report(err error) {
	if err != nil {
		fmt.Fprintf(t.out(), "%s: %s\n", t.App.Path, err)
		return
	}
	t.show()
}

func (t *Terminal) aborted(cmd string, err error) {
	fmt.Fprintf(t.out(), "%s aborted: %s\n", cmd, err)
}

func (t *Terminal) CmdOpen(args string) {
	t.App.Navigate(args)
	t.show()
}

func (t *Terminal) CmdLogin() {
	if _, ok := t.App.Current.(*screen.Login); !ok {
		t.report(ErrScreen)
		return
	}
	username, err := t.Input.Line("Username: ")
	if err != nil {
		t.aborted("login", err)
		return
	}
	password, err := t.Input.Password("Password: ")
	if err != nil {
		t.aborted("login", err)
		return
	}
	t.report(t.App.Login(username, password))
}

func (t *Terminal) CmdRegister() {
	if _, ok := t.App.Current.(*screen.Register); !ok {
		t.report(ErrScreen)
		return
	}
	user := schema.User{}
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Username: ", &user.Username},
		{"Email: ", &user.Email},
		{"First Name: ", &user.FirstName},
		{"Last Name: ", &user.LastName},
	}
	for _, f := range fields {
		value, err := t.Input.Line(f.prompt)
		if err != nil {
			t.aborted("register", err)
			return
		}
		*f.value = value
	}
	password, err := t.Input.Password("Password: ")
	if err != nil {
		t.aborted("register", err)
		return
	}
	user.Password = password
	t.report(t.App.Register(user))
}

func (t *Terminal) CmdUpdate() {
	profile, ok := t.App.Current.(*screen.Profile)
	if !ok {
		t.report(ErrScreen)
		return
	}
	form := profile.Form
	fields := []struct {
		name  string
		value *string
	}{
		{"Email", &form.Email},
		{"First Name", &form.FirstName},
		{"Last Name", &form.LastName},
	}
	for _, f := range fields {
		value, err := t.Input.Line(fmt.Sprintf("%s [%s]: ", f.name, *f.value))
		if err != nil {
			t.aborted("update", err)
			return
		}
		if value != "" {
			*f.value = value
		}
	}
	password, err := t.Input.Password("Password (blank keeps it): ")
	if err != nil {
		t.aborted("update", err)
		return
	}
	form.Password = password
	t.report(t.App.Update(form))
}

func (t *Terminal) CmdDelete(args string) {
	var id int64
	if args != "" {
		value, err := strconv.ParseInt(args, 10, 64)
		if err != nil {
			fmt.Fprintf(t.out(), "invalid id %q\n", args)
			return
		}
		id = value
	}
	t.report(t.App.Delete(id))
}

const logsTmpl = `{{ ps -19 "Date" }} {{ ps -5 "Level" }} Message
{{- range . }}
{{ ps -19 .Date }} {{ ps -5 .Level }} {{ .Message }}
{{- end }}
`

func (t *Terminal) CmdLogs() {
	items := make([]*libol.Message, 0, 32)
	for m := range libol.Logger.List() {
		if m == nil {
			break
		}
		items = append(items, m)
	}
	if err := screen.Out(t.out(), items, t.App.Format, logsTmpl); err != nil {
		fmt.Fprintf(t.out(), "Terminal.CmdLogs: %s\n", err)
	}
}

func (t *Terminal) CmdLogout() {
	t.App.Logout()
	t.show()
}

// Exec runs one command line and reports whether the shell goes on.
func (t *Terminal) Exec(line string) bool {
	line = strings.TrimSpace(line)
	cmd, args := line, ""
	if i := strings.IndexByte(line, ' '); i > 0 {
		cmd, args = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch cmd {
	case "":
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprintln(t.out(), help)
	case "open":
		t.CmdOpen(args)
	case "login":
		t.CmdLogin()
	case "register":
		t.CmdRegister()
	case "update":
		t.CmdUpdate()
	case "delete":
		t.CmdDelete(args)
	case "show":
		t.show()
	case "logs":
		t.CmdLogs()
	case "logout":
		t.CmdLogout()
	default:
		fmt.Fprintf(t.out(), "unknown command %q, try help\n", cmd)
	}
	return true
}

func (t *Terminal) Start() {
	if t.Console == nil {
		return
	}
	defer t.Console.Close()
	if t.App.Current == nil {
		t.App.Navigate(router.Root)
	}
	t.show()
	for {
		t.Console.SetPrompt(t.Prompt())
		line, err := t.Console.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if !t.Exec(line) {
			break
		}
	}
}
