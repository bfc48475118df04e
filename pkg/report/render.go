package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	// a rule is drawn under this rank to split the top of the field from the rest
	splitRank = 15

	tableRank = "№"
	tableName = "FULL NAME"
	tableCar  = "CAR MODEL"
	tableTime = "TIME"

	nameWidth = 17
	carWidth  = 25

	notFoundMessage = "Record was not found, please type a valid name"
)

var (
	rowColors     = text.Colors{text.FgBlue}
	headerColors  = text.Colors{text.FgBlue, text.Bold}
	warningColors = text.Colors{text.BgRed, text.FgBlack}
)

// Renderer prints reports and errors to a single writer.
type Renderer struct {
	w      io.Writer
	colors bool
}

type RenderOption func(*Renderer)

// WithColors turns ANSI colors on or off. They are on by default.
func WithColors(enabled bool) RenderOption {
	return func(r *Renderer) {
		r.colors = enabled
	}
}

func NewRenderer(w io.Writer, opts ...RenderOption) *Renderer {
	r := &Renderer{w: w, colors: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render prints entries as a table, or the not found message when there are none.
func (r *Renderer) Render(entries Entries) error {
	if len(entries) == 0 {
		return r.warn(notFoundMessage)
	}

	style := r.style()
	t := table.NewWriter()
	t.SetStyle(style)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMin: nameWidth},
		{Number: 3, WidthMin: carWidth},
	})

	t.AppendHeader(table.Row{tableRank, tableName, tableCar, tableTime})
	last := len(entries) - 1
	for i, e := range entries {
		t.AppendRow(table.Row{
			fmt.Sprintf("%d.", e.Rank),
			e.Name,
			e.Car,
			e.LapTime(),
		})
		if e.Rank == splitRank && i != last {
			t.AppendSeparator()
		}
	}

	out := t.Render()
	// go-pretty drops a separator after the last row, so that one is drawn here
	if entries[last].Rank == splitRank {
		out += "\n" + strings.Repeat(style.Box.MiddleHorizontal, text.LongestLineLen(out))
	}

	_, err := fmt.Fprintln(r.w, out)
	return err
}

// Error prints err the same way as the not found message.
func (r *Renderer) Error(err error) error {
	return r.warn(err.Error())
}

func (r *Renderer) warn(message string) error {
	if r.colors {
		message = warningColors.Sprint(message)
	}
	_, err := fmt.Fprintln(r.w, message)
	return err
}

func (r *Renderer) style() table.Style {
	style := table.StyleDefault
	style.Name = "RacingReport"
	style.Box.MiddleHorizontal = "_"
	style.Box.MiddleSeparator = "_"
	style.Box.MiddleVertical = "|"
	style.Format.Header = text.FormatDefault
	style.Options.DrawBorder = false
	style.Options.SeparateColumns = true
	style.Options.SeparateHeader = true
	style.Options.SeparateRows = false
	style.Color = table.ColorOptions{}
	if r.colors {
		style.Color.Header = headerColors
		style.Color.Row = rowColors
		style.Color.RowAlternate = rowColors
	}
	return style
}
