package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/paperdesk/asset"
	"github.com/lixenwraith/paperdesk/desk"
	"github.com/lixenwraith/paperdesk/render"
	"github.com/lixenwraith/paperdesk/script"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	heldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (a *app) replayCommand() *cobra.Command {
	var (
		draw          bool
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "replay [script.toml]",
		Short: "Feed scripted input through the desk and print the resulting state",
		Long:  `Replays mouse and touch events from a TOML script against the configured desk without a terminal. Without a script the built-in demo runs.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), a.level())
			a.reportConfig(logger)

			var (
				s    *script.Script
				name = "builtin demo"
				err  error
			)
			if len(args) == 1 {
				name = args[0]
				s, err = script.Load(name)
			} else {
				s, err = script.Parse(asset.DemoScript)
			}
			if err != nil {
				return err
			}

			cfg := a.config.Config
			board := render.NewBoard(cfg.CellAspect, tcell.GetColor(cfg.Background))
			d := buildDesk(cfg, board, desk.Options{Logger: logger})

			if err := script.NewPlayer(d).Run(cmd.Context(), s); err != nil {
				return err
			}
			logger.Info("replay finished", "script", name, "events", len(s.Events))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, reportTable(d))
			if draw {
				c := newTextCanvas(width, height)
				board.Draw(c)
				fmt.Fprint(out, c.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&draw, "draw", false, "also print the final board as text")
	cmd.Flags().IntVar(&width, "width", 80, "board width in columns for --draw")
	cmd.Flags().IntVar(&height, "height", 24, "board height in rows for --draw")
	return cmd
}

// reportTable renders one row per sheet in placement order
func reportTable(d *desk.Desk) string {
	sheets := d.Sheets()
	rows := make([][]string, 0, len(sheets))
	for _, s := range sheets {
		st := s.State()
		rows = append(rows, []string{
			s.Title,
			num(st.PositionX),
			num(st.PositionY),
			num(st.Rotation),
			strconv.Itoa(st.StackPriority),
			st.Mode().String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Paper", "Δx", "Δy", "Rotation", "Z", "State").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row >= 0 && row < len(sheets) && sheets[row].Held() {
				return base.Inherit(heldStyle)
			}
			return base
		})
	return t.Render()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// textCanvas is an in-memory render.Canvas printed as plain runes
type textCanvas struct {
	w, h  int
	cells []rune
}

func newTextCanvas(w, h int) *textCanvas {
	w, h = max(1, w), max(1, h)
	c := &textCanvas{w: w, h: h, cells: make([]rune, w*h)}
	for i := range c.cells {
		c.cells[i] = ' '
	}
	return c
}

func (c *textCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = primary
}

func (c *textCanvas) Size() (int, int) {
	return c.w, c.h
}

func (c *textCanvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		b.WriteString(strings.TrimRight(string(c.cells[y*c.w:(y+1)*c.w]), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
