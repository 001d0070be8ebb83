package client

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/template"

	"blockfall/tetris"

	"github.com/charmbracelet/lipgloss"
)

const (
	resetPos  = "\033[H" // Reset cursor position to 0,0
	clearLine = "\033[K" // Clear to the end of the line

	emptyCell = "  "
	ghostCell = "::"
	fullCell  = "[]"
)

//go:embed "layout.tmpl"
var layout string

// ANSI color per piece color.
var colorMap = map[tetris.Color]lipgloss.Color{
	tetris.Red:     "1",
	tetris.Green:   "2",
	tetris.Yellow:  "3",
	tetris.Blue:    "4",
	tetris.Magenta: "5",
	tetris.Cyan:    "6",
}

type templateData struct {
	Rows    []string
	Width   int
	Score   int
	Lines   int
	Level   int
	Message string
}

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	noGhost  bool

	lg     *lipgloss.Renderer
	cells  map[tetris.Color]string
	ghost  string
	banner lipgloss.Style
}

func newRender(w io.Writer, l *slog.Logger, noGhost bool) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	r := &render{
		writer:   w,
		logger:   l,
		template: tmp,
		noGhost:  noGhost,
		lg:       lipgloss.NewRenderer(w),
	}
	r.styles()
	return r, nil
}

// styles renders every cell once so frames only concatenate strings.
func (r *render) styles() {
	r.cells = make(map[tetris.Color]string, len(colorMap))
	for c, ansi := range colorMap {
		r.cells[c] = r.lg.NewStyle().Reverse(true).Foreground(ansi).Render(fullCell)
	}
	r.ghost = r.lg.NewStyle().Faint(true).Render(ghostCell)
	r.banner = r.lg.NewStyle().Bold(true)
}

func (r *render) frame(t *tetris.Tetris) {
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, r.data(t)); err != nil {
		r.logger.Error("unable to execute template in frame()", slog.String("error", err.Error()))
	}
}

func (r *render) data(t *tetris.Tetris) *templateData {
	td := &templateData{
		Rows:  r.stack(t),
		Score: t.Score,
		Lines: t.Lines,
		Level: t.Level,
	}
	if len(t.Stack) > 0 {
		td.Width = len(t.Stack[0]) * len(emptyCell)
	}
	switch t.Mode {
	case tetris.Running:
		td.Message = "(p)ause  (q)uit"
	case tetris.Paused:
		td.Message = r.banner.Render("PAUSED") + "  (p) resume"
	case tetris.GameOver:
		td.Message = r.banner.Render("GAME OVER") + "  (r)eplay  (q)uit"
	}
	return td
}

// stack draws the locked cells, the ghost and the falling tetromino, in
// that order, one string per row.
func (r *render) stack(t *tetris.Tetris) []string {
	rendered := make([][]string, len(t.Stack))
	for y, row := range t.Stack {
		rendered[y] = make([]string, len(row))
		for x, c := range row {
			rendered[y][x] = r.cell(c)
		}
	}

	put := func(x, y int, s string) {
		if y >= 0 && y < len(rendered) && x >= 0 && x < len(rendered[y]) {
			rendered[y][x] = s
		}
	}
	if tm := t.Tetromino; tm != nil {
		for iy, row := range tm.Grid {
			for ix, on := range row {
				if on && !r.noGhost && t.Mode == tetris.Running {
					put(tm.X+ix, tm.GhostY+iy, r.ghost)
				}
			}
		}
		for iy, row := range tm.Grid {
			for ix, on := range row {
				if on {
					put(tm.X+ix, tm.Y+iy, r.cell(tm.Color))
				}
			}
		}
	}

	rows := make([]string, len(rendered))
	for y := range rendered {
		rows[y] = strings.Join(rendered[y], "")
	}
	return rows
}

func (r *render) cell(c tetris.Color) string {
	if c == tetris.Empty {
		return emptyCell
	}
	if s, ok := r.cells[c]; ok {
		return s
	}
	return fullCell
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"border": func(w int) string { return strings.Repeat("-", w) },
		"eol":    func() string { return clearLine },
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	l := strings.ReplaceAll(layout, "\n", "\r\n")
	return template.New("layout").Funcs(funcMap).Parse(l)
}
