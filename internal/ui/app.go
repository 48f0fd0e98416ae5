package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// SaveFunc persists the game, e.g. snapshot.Save bound to a path.
type SaveFunc func(g *engine.Game) error

// App is the full-screen chess program: the board, a status panel and the
// promotion prompt.
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	board  *BoardUI
	status *tview.TextView
	cfg    *config.Config
	save   SaveFunc
}

// NewApp builds the application around g. save may be nil to disable saving.
func NewApp(g *engine.Game, cfg *config.Config, save SaveFunc) *App {
	a := &App{
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		status: tview.NewTextView(),
		cfg:    cfg,
		save:   save,
	}
	a.board = NewBoardUI(g, cfg)

	a.status.SetBorder(true)
	a.status.SetBorderPadding(0, 0, 1, 1)
	a.status.SetTitle(" Status ")
	a.status.SetTitleAlign(tview.AlignLeft)

	a.board.OnChange = a.refresh
	a.board.OnPromotion = a.showPromotion
	a.board.Box.SetInputCapture(a.handleKey)
	a.board.Box.SetMouseCapture(a.handleMouse)

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(nil, 0, 1, false)
	boardRow.AddItem(a.board.Box, labelWidth+chess.BoardSize*squareWidth, 0, true)
	boardRow.AddItem(nil, 0, 1, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow)
	layout.AddItem(boardRow, chess.BoardSize+1, 0, true)
	layout.AddItem(a.status, 6, 0, false)
	layout.AddItem(tview.NewTextView().SetText(" hjkl/←↓↑→ move   ⏎ select   n new   s save   q quit"), 1, 0, false)
	layout.SetBorder(true).SetTitle(" chess ")

	a.pages.AddPage("game", layout, true, true)
	a.refresh()
	return a
}

// Board returns the board control.
func (a *App) Board() *BoardUI {
	return a.board
}

// Run starts the event loop and blocks until the user quits.
func (a *App) Run() error {
	return a.app.SetRoot(a.pages, true).EnableMouse(true).Run()
}

func (a *App) refresh() {
	a.status.SetText(a.board.Status())
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		a.board.MoveCursor(-1, 0)
	case tcell.KeyDown:
		a.board.MoveCursor(1, 0)
	case tcell.KeyLeft:
		a.board.MoveCursor(0, -1)
	case tcell.KeyRight:
		a.board.MoveCursor(0, 1)
	case tcell.KeyEnter:
		a.board.ActivateCursor()
	case tcell.KeyEsc:
		a.board.Deselect()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			a.board.MoveCursor(-1, 0)
		case 'j':
			a.board.MoveCursor(1, 0)
		case 'h':
			a.board.MoveCursor(0, -1)
		case 'l':
			a.board.MoveCursor(0, 1)
		case ' ':
			a.board.ActivateCursor()
		case 'n':
			a.board.NewGame()
		case 's':
			a.saveGame()
		case 'q':
			if a.cfg.Autosave {
				a.saveGame()
			}
			a.app.Stop()
		}
	default:
		return event
	}
	return nil
}

func (a *App) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}
	x, y := event.Position()
	if pos, ok := a.board.SquareAt(x, y); ok {
		a.board.Activate(pos)
	}
	return action, nil
}

func (a *App) saveGame() {
	if a.save == nil {
		a.board.Notify("Saving is disabled.")
		return
	}
	if err := a.save(a.board.Game()); err != nil {
		a.board.Notify(fmt.Sprintf("Save failed: %v", err))
		return
	}
	a.board.Notify("Game saved.")
}

func (a *App) showPromotion() {
	labels := make([]string, len(chess.PromotionKinds))
	for i, k := range chess.PromotionKinds {
		labels[i] = k.String()
	}

	modal := tview.NewModal().
		SetText("Promote pawn to:").
		AddButtons(labels).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonIndex < 0 || buttonIndex >= len(chess.PromotionKinds) {
				return // a promotion has to be chosen
			}
			a.board.Promote(chess.PromotionKinds[buttonIndex])
			a.pages.RemovePage("promotion")
			a.app.SetFocus(a.board.Box)
		})
	a.pages.AddPage("promotion", modal, true, true)
	a.app.SetFocus(modal)
}
