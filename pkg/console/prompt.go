package console

import (
	"strings"

	"github.com/chzyer/readline"
)

// Reader asks the user for a line or a password.
type Reader interface {
	Line(prompt string) (string, error)
	Password(prompt string) (string, error)
}

// Prompter reads answers from the terminal. With Yes set every
// confirmation is accepted without asking.
type Prompter struct {
	Yes      bool
	Instance *readline.Instance
}

func (p *Prompter) console() (*readline.Instance, error) {
	if p.Instance == nil {
		l, err := readline.NewEx(&readline.Config{
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
		})
		if err != nil {
			return nil, err
		}
		p.Instance = l
	}
	return p.Instance, nil
}

func (p *Prompter) Line(prompt string) (string, error) {
	l, err := p.console()
	if err != nil {
		return "", err
	}
	l.SetPrompt(prompt)
	line, err := l.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) Password(prompt string) (string, error) {
	l, err := p.console()
	if err != nil {
		return "", err
	}
	data, err := l.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (p *Prompter) Confirm(prompt string) bool {
	if p.Yes {
		return true
	}
	answer, err := p.Line(prompt + " [y/N] ")
	if err != nil {
		return false
	}
	return Yes(answer)
}

func (p *Prompter) Close() {
	if p.Instance != nil {
		_ = p.Instance.Close()
		p.Instance = nil
	}
}

func Yes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
