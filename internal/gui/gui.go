// Package gui draws the launcher window in the terminal.
package gui

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/compositor"
	"tusk.dev/launcher/internal/launcher"
	"tusk.dev/launcher/internal/system"
)

// Handler is notified once the engines are ready.
type Handler interface {
	NotifyStarted()
}

const (
	selectionMarker = "> "
	powerHints      = "^P power off  ^R restart  ^L logout"
)

type (
	startedEvent struct{}
	refreshEvent struct{}
	stopEvent    struct{}
)

var (
	styleDefault  = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleDim      = tcell.StyleDefault.Dim(true)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

type TUI struct {
	screen   tcell.Screen
	launcher *launcher.Launcher
	clock    func() string

	started  atomic.Bool
	selected int
	editing  bool
	editName string
	editText []rune
	status   string
}

func NewTUI(screen tcell.Screen, l *launcher.Launcher) *TUI {
	config := l.Config()
	return &TUI{
		screen:   screen,
		launcher: l,
		clock: func() string {
			return system.CurrentTime(config)
		},
	}
}

// NotifyStarted loads the launcher state on the event loop.
func (t *TUI) NotifyStarted() {
	t.post(startedEvent{})
}

// Refresh redraws the window, for example after the catalog changed.
func (t *TUI) Refresh() {
	t.post(refreshEvent{})
}

// Stop ends Run.
func (t *TUI) Stop() {
	t.post(stopEvent{})
}

func (t *TUI) post(data interface{}) {
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(data)); err != nil {
		logrus.Debugf("Dropped event %T: %s", data, err)
	}
}

// Run processes the screen events until the launcher quits. The screen must
// be initialized.
func (t *TUI) Run() {
	t.screen.SetTitle(compositor.WindowTitle)
	done := make(chan struct{})
	defer close(done)
	if t.launcher.Config().ShowTime {
		go t.tick(done)
	}
	t.Draw()
	for {
		event := t.screen.PollEvent()
		if event == nil {
			return
		}
		if quit := t.HandleEvent(event); quit {
			return
		}
		t.Draw()
	}
}

func (t *TUI) tick(done chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			t.Refresh()
		}
	}
}

// HandleEvent applies an event and reports whether the window should close.
func (t *TUI) HandleEvent(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventInterrupt:
		switch event.Data().(type) {
		case startedEvent:
			if err := t.launcher.Load(); err != nil {
				logrus.Errorf("%+v", err)
				t.status = err.Error()
			}
			t.started.Store(true)
			t.clampSelection()
		case refreshEvent:
			t.clampSelection()
		case stopEvent:
			t.launcher.Quit()
		}
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if t.editing {
			t.handleEditorKey(event)
		} else {
			t.handleKey(event)
		}
	}
	return t.launcher.ShouldQuit()
}

func (t *TUI) handleKey(event *tcell.EventKey) {
	results := t.launcher.Results()
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.launcher.Quit()
	case tcell.KeyEnter:
		var err error
		if t.selected < len(results) {
			err = t.launcher.Launch(results[t.selected].Name)
		} else {
			err = t.launcher.LaunchFirst()
		}
		t.report(err)
	case tcell.KeyUp:
		if t.selected > 0 {
			t.selected--
		}
	case tcell.KeyDown:
		if t.selected < len(results)-1 {
			t.selected++
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		query := []rune(t.launcher.Query())
		if len(query) > 0 {
			t.setQuery(string(query[:len(query)-1]))
		}
	case tcell.KeyCtrlU:
		t.setQuery("")
	case tcell.KeyCtrlO:
		if t.selected < len(results) {
			t.editing = true
			t.editName = results[t.selected].Name
			t.editText = []rune(t.launcher.FormattedOptions(t.editName))
		}
	case tcell.KeyCtrlP:
		t.report(t.launcher.PowerOff())
	case tcell.KeyCtrlR:
		t.report(t.launcher.Restart())
	case tcell.KeyCtrlL:
		t.report(t.launcher.Logout())
	case tcell.KeyRune:
		t.setQuery(t.launcher.Query() + string(event.Rune()))
	}
}

func (t *TUI) handleEditorKey(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyEscape:
		t.editing = false
	case tcell.KeyEnter:
		t.editing = false
		t.report(t.launcher.SaveOptions(t.editName, string(t.editText)))
		t.selected = 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(t.editText) > 0 {
			t.editText = t.editText[:len(t.editText)-1]
		}
	case tcell.KeyCtrlU:
		t.editText = nil
	case tcell.KeyRune:
		t.editText = append(t.editText, event.Rune())
	}
}

// clampSelection keeps the highlight on a row after the results shrink.
func (t *TUI) clampSelection() {
	if count := len(t.launcher.Results()); t.selected >= count {
		t.selected = max(count-1, 0)
	}
}

func (t *TUI) setQuery(query string) {
	t.launcher.SetQuery(query)
	t.selected = 0
	t.status = ""
}

func (t *TUI) report(err error) {
	if err == nil {
		t.status = ""
		return
	}
	if errors.Is(err, launcher.ErrPowerDisabled) {
		return
	}
	t.status = err.Error()
}

// Draw renders the current state on the screen.
func (t *TUI) Draw() {
	t.screen.Clear()
	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	if t.editing {
		drawText(t.screen, 0, 0, width, styleDefault, t.editName+" options: "+string(t.editText))
	} else {
		drawText(t.screen, 0, 0, width, styleDefault, "Search: "+t.launcher.Query())
	}

	row := 1
	if !t.started.Load() {
		drawText(t.screen, 0, row, width, styleDim, "Loading…")
	} else {
		for index, application := range t.launcher.Results() {
			if row >= height-1 {
				break
			}
			style, marker := styleDefault, "  "
			if index == t.selected {
				style, marker = styleSelected, selectionMarker
			}
			drawText(t.screen, 0, row, width, style, marker+application.Name)
			row++
		}
	}

	if t.status != "" && height > 2 {
		drawText(t.screen, 0, height-2, width, styleError, t.status)
	}

	config := t.launcher.Config()
	bottom := height - 1
	if config.EnablePowerOptions {
		drawText(t.screen, 0, bottom, width, styleDim, powerHints)
	}
	if config.ShowTime {
		label := t.clock()
		labelWidth := runewidth.StringWidth(label)
		if labelWidth <= width {
			drawText(t.screen, width-labelWidth, bottom, labelWidth, styleDefault, label)
		}
	}
	t.screen.Show()
}

// drawText writes text at (x, y), truncated to maxWidth cells.
func drawText(screen tcell.Screen, x int, y int, maxWidth int, style tcell.Style, text string) {
	text = runewidth.Truncate(text, maxWidth, "…")
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
