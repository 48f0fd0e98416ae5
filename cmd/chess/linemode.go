package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/ui"
)

// lineSession plays a game from text commands, one per line.
type lineSession struct {
	game     *engine.Game
	out      io.Writer
	save     ui.SaveFunc
	glyph    render.Glyph
	autosave bool
}

func newLineSession(g *engine.Game, cfg *config.Config, save ui.SaveFunc, out io.Writer) *lineSession {
	return &lineSession{
		game:     g,
		out:      out,
		save:     save,
		glyph:    cfg.Theme.Glyph,
		autosave: cfg.Autosave,
	}
}

// run reads commands until quit or end of input.
func (s *lineSession) run(in io.Reader) error {
	fmt.Fprint(s.out, render.TextWith(s.game.Board(), s.glyph))
	fmt.Fprintln(s.out, s.status())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(s.out, "%s> ", s.game.ToMove())
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			s.quit()
			return scanner.Err()
		}
		if s.execute(scanner.Text()) {
			return nil
		}
	}
}

// execute runs one command and reports whether the session should end.
func (s *lineSession) execute(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit", "q":
		s.quit()
		return true
	case "board":
		fmt.Fprint(s.out, render.TextWith(s.game.Board(), s.glyph))
	case "moves":
		fmt.Fprintln(s.out, strings.Join(s.legalMoves(), " "))
	case "history":
		s.printHistory()
	case "save":
		s.saveGame()
	case "new":
		s.game.Reset()
		fmt.Fprintln(s.out, "New game.")
		fmt.Fprint(s.out, render.TextWith(s.game.Board(), s.glyph))
	case "promote":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "Usage: promote q|r|b|n")
			return false
		}
		s.promote(chess.KindFromLetter(fields[1][0]))
	default:
		s.move(fields)
	}
	return false
}

func (s *lineSession) move(fields []string) {
	from, to, promo, err := parseMove(fields)
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}

	ok, err := s.game.MovePiece(from, to)
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	if !ok {
		fmt.Fprintf(s.out, "%v\n", errors.Wrapf(errors.ErrIllegalMove, "%s%s", from, to))
		return
	}

	if _, pending := s.game.PendingPromotion(); pending {
		if promo == chess.NoKind {
			fmt.Fprintln(s.out, "Promote with: promote q|r|b|n")
			return
		}
		s.promote(promo)
		return
	}
	s.report()
}

func (s *lineSession) promote(kind chess.Kind) {
	if err := s.game.CompletePromotion(kind); err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	s.report()
}

// report prints the board and status after a finished move.
func (s *lineSession) report() {
	fmt.Fprint(s.out, render.TextWith(s.game.Board(), s.glyph))
	fmt.Fprintln(s.out, s.status())
}

func (s *lineSession) status() string {
	g := s.game
	switch g.Outcome() {
	case chess.Checkmate:
		return fmt.Sprintf("Checkmate! %s wins.", g.ToMove().Opposite())
	case chess.Stalemate:
		return "Stalemate. The game is drawn."
	case chess.InsufficientMaterial:
		return "Draw by insufficient material."
	}
	if g.InCheck(g.ToMove()) {
		return fmt.Sprintf("%s to move. Check!", g.ToMove())
	}
	return fmt.Sprintf("%s to move.", g.ToMove())
}

func (s *lineSession) legalMoves() []string {
	var moves []string
	for _, m := range s.game.LegalMoves(s.game.ToMove()) {
		moves = append(moves, m.UCI())
	}
	slices.Sort(moves)
	return moves
}

func (s *lineSession) printHistory() {
	for i, m := range s.game.History() {
		fmt.Fprintf(s.out, "%3d. %s\n", i+1, m)
	}
}

func (s *lineSession) saveGame() {
	if s.save == nil {
		return
	}
	if err := s.save(s.game); err != nil {
		fmt.Fprintf(s.out, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Game saved.")
}

func (s *lineSession) quit() {
	if s.autosave {
		s.saveGame()
	}
}

// parseMove accepts "e2e4", "e2 e4" and "e7e8q".
func parseMove(fields []string) (from, to chess.Position, promo chess.Kind, err error) {
	text := strings.Join(fields, "")
	if len(text) != 4 && len(text) != 5 {
		return chess.OffBoard, chess.OffBoard, chess.NoKind, fmt.Errorf("unknown command %q", strings.Join(fields, " "))
	}
	if from, err = chess.ParseSquare(text[:2]); err != nil {
		return chess.OffBoard, chess.OffBoard, chess.NoKind, err
	}
	if to, err = chess.ParseSquare(text[2:4]); err != nil {
		return chess.OffBoard, chess.OffBoard, chess.NoKind, err
	}
	if len(text) == 5 {
		promo = chess.KindFromLetter(text[4])
		if !slices.Contains(chess.PromotionKinds, promo) {
			return chess.OffBoard, chess.OffBoard, chess.NoKind, errors.Wrapf(errors.ErrInvalidPromotion, "%q", text[4:])
		}
	}
	return from, to, promo, nil
}
