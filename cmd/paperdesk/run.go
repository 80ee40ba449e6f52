package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/paperdesk/audio"
	"github.com/lixenwraith/paperdesk/config"
	"github.com/lixenwraith/paperdesk/desk"
	"github.com/lixenwraith/paperdesk/input"
	"github.com/lixenwraith/paperdesk/render"
)

func (a *app) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the desk in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDesk(cmd.Context())
		},
	}
}

// runDesk owns the terminal until the user quits or ctx is canceled
func (a *app) runDesk(ctx context.Context) error {
	cfg := a.config.Config

	logger, logFile := setupLogging(a.logPath(), a.level())
	if logFile != nil {
		defer logFile.Close()
	}
	a.reportConfig(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("desk crashed", "panic", r)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPAPERDESK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	var feedback desk.Feedback
	if cfg.Audio {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio initialization failed, continuing without audio", "err", err)
		} else {
			defer sm.Cleanup()
			feedback = sm
		}
	}

	board := render.NewBoard(cfg.CellAspect, tcell.GetColor(cfg.Background))
	d := buildDesk(cfg, board, desk.Options{
		Feedback: feedback,
		Logger:   logger,
	})

	h := &host{screen: screen, board: board, desk: d, logger: logger}
	return h.loop(ctx)
}

// buildDesk creates a desk painting onto board and places every sheet on it
func buildDesk(cfg *config.Config, board *render.Board, opts desk.Options) *desk.Desk {
	opts.Surface = board
	d := desk.New(cfg, opts)
	placeSheets(board, d)
	return d
}

// placeSheets registers every sheet with the board in its current state
func placeSheets(board *render.Board, d *desk.Desk) {
	for _, s := range d.Sheets() {
		st := s.State()
		board.Place(s.ID(), render.Shape{
			Title:  s.Title,
			X:      s.X,
			Y:      s.Y,
			Width:  s.Width,
			Height: s.Height,
			Color:  tcell.GetColor(s.Color),
			Lines:  s.Lines,
		}, st.Transform(), st.StackPriority)
	}
}

// host is the interactive event loop
type host struct {
	screen tcell.Screen
	board  *render.Board
	desk   *desk.Desk
	logger *log.Logger
}

func (h *host) loop(ctx context.Context) error {
	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if !h.handle(ev) {
				return nil
			}
			h.draw()
		}
	}
}

// handle processes one terminal event, returning false to quit
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := h.board.ToSurface(col, row)
		h.desk.Mouse(x, y, mouseButtons(ev.Buttons()))

	case *tcell.EventFocus:
		if !ev.Focused {
			// A button released outside the window is never reported
			h.desk.ResetPointer()
		}

	case *tcell.EventResize:
		// Cell mapping shifts under a held paper and a release may have been lost
		h.desk.ResetPointer()
		h.screen.Sync()
		w, ht := h.screen.Size()
		h.logger.Debug("resize", "width", w, "height", ht)
	}
	return true
}

// mouseButtons maps tcell's mask onto the desk's
func mouseButtons(b tcell.ButtonMask) input.Button {
	var out input.Button
	if b&tcell.Button1 != 0 {
		out |= input.ButtonPrimary
	}
	if b&tcell.Button2 != 0 {
		out |= input.ButtonSecondary
	}
	if b&tcell.Button3 != 0 {
		out |= input.ButtonMiddle
	}
	return out
}

func (h *host) draw() {
	if s := h.desk.Active(); s != nil {
		h.board.SetFocus(s.ID())
		h.board.SetStatus(statusLine(s))
	} else {
		h.board.SetStatus("left drag: move | right drag: rotate | q: quit")
	}
	h.board.Draw(h.screen)
	h.screen.Show()
}

func statusLine(s *desk.Sheet) string {
	st := s.State()
	return fmt.Sprintf(" %s | %s | pos %+.0f,%+.0f | rot %.0f° | z %d",
		s.Title, st.Mode(), st.PositionX, st.PositionY, st.Rotation, st.StackPriority)
}
