package screen

import "io"

type NotFound struct {
	base
	Path string
}

func NewNotFound(path string) *NotFound {
	return &NotFound{Path: path}
}

func (n *NotFound) Name() string {
	return "Not Found"
}

func (n *NotFound) Mount() {}

func (n *NotFound) Render(w io.Writer, format string) error {
	view := struct {
		Path string `json:"path" yaml:"path"`
	}{Path: n.Path}
	return Out(w, view, format, "no screen at {{ .Path }}\n")
}
