package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"LocalPaint/internal/board"
	"LocalPaint/internal/config"
)

// Build creates the board view and toolbar and places them in win.
func Build(win fyne.Window, cfg config.Config, b *board.Board) *Toolbar {
	view := NewBoardWidget(b)
	b.OnChange = view.Refresh

	toolbar := NewToolbar(b, view, win)
	toolbar.FileName = cfg.Export.FileName

	bar := toolbar.Object()
	content := container.NewBorder(bar, nil, nil, nil, view)
	win.SetContent(content)
	win.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	return toolbar
}

// RunApp shows the paint window and blocks until it is closed. A non-empty
// shareLink is flashed once so the user knows where viewers can connect.
func RunApp(a fyne.App, cfg config.Config, b *board.Board, shareLink string) {
	win := a.NewWindow("Paint")
	toolbar := Build(win, cfg, b)
	if shareLink != "" {
		toolbar.Status().Flash(board.Flash{Text: "Sharing at " + shareLink, Duration: cfg.Status.Duration.Duration * 4, Restore: false})
	}
	win.ShowAndRun()
}
