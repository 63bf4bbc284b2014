package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tetratelabs/wasmread/wasm"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type styles struct {
	heading lipgloss.Style
	title   lipgloss.Style
	err     lipgloss.Style
	help    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB")),
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		err:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		help: r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// newRenderer returns a renderer writing to w that emits color according to mode.
func newRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if useColor(w, mode) {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func sectionHeading(s *sectionView) string {
	return fmt.Sprintf("--- section %s ----------", s.title())
}

// printText writes every section heading followed by its lines. A section that failed to decode ends with its
// error, and printing continues with the next section.
func printText(w io.Writer, st styles, m *moduleView) {
	fmt.Fprintf(w, "version %d\n", m.Version)
	for i := range m.Sections {
		s := &m.Sections[i]
		fmt.Fprintln(w, st.heading.Render(sectionHeading(s)))
		for _, line := range s.Lines {
			fmt.Fprintln(w, line)
		}
		if s.Err != nil {
			fmt.Fprintln(w, st.err.Render("error: "+s.Err.Error()))
		}
	}
	if m.Err != nil {
		fmt.Fprintln(w, st.err.Render("error: "+m.Err.Error()))
	}
}

type moduleDump struct {
	Version  uint32        `yaml:"version"`
	Sections []sectionDump `yaml:"sections"`
	Error    string        `yaml:"error,omitempty"`
}

type sectionDump struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name,omitempty"`
	Offset  int      `yaml:"offset"`
	Size    int      `yaml:"size"`
	Entries []string `yaml:"entries,omitempty"`
	Error   string   `yaml:"error,omitempty"`
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func printYAML(w io.Writer, m *moduleView) error {
	d := moduleDump{Version: m.Version, Sections: []sectionDump{}, Error: errString(m.Err)}
	for i := range m.Sections {
		s := &m.Sections[i]
		d.Sections = append(d.Sections, sectionDump{
			ID:      wasm.SectionIDName(s.ID),
			Name:    s.Name,
			Offset:  s.Offset,
			Size:    s.Size,
			Entries: s.Lines,
			Error:   errString(s.Err),
		})
	}
	out, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
