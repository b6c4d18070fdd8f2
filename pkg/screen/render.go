package screen

import (
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/krainet/userctl/pkg/libol"
	"gopkg.in/yaml.v2"
)

func OutJson(w io.Writer, data interface{}) error {
	out, err := libol.Marshal(data, true)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func OutYaml(w io.Writer, data interface{}) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(out))
	return err
}

func OutTable(w io.Writer, data interface{}, tmpl string) error {
	funcMap := template.FuncMap{
		"ps": func(space int, args ...interface{}) string {
			format := "%" + strconv.Itoa(space) + "s"
			return fmt.Sprintf(format, args...)
		},
		"pi": func(space int, args ...interface{}) string {
			format := "%" + strconv.Itoa(space) + "d"
			return fmt.Sprintf(format, args...)
		},
	}
	t, err := template.New("main").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}

// Out writes data as json, yaml or, by default, through tmpl.
func Out(w io.Writer, data interface{}, format string, tmpl string) error {
	switch format {
	case "json":
		return OutJson(w, data)
	case "yaml":
		return OutYaml(w, data)
	default:
		return OutTable(w, data, tmpl)
	}
}
