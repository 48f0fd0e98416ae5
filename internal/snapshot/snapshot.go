// Package snapshot saves and restores games as JSON documents.
//
// A snapshot holds the full game state: every square, the moved flags,
// the move history, the side to move, the cached king squares, the
// terminal flag and any pending promotion. Loading validates the document
// against the board invariants before the target game is touched.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Version is the document version written by Encode.
const Version = 1

// DefaultFile is the save file location relative to the XDG data home.
const DefaultFile = "chess-rules/savegame.json"

// document is the on-disk form of a game.
type document struct {
	Version     int            `json:"version"`
	Board       []string       `json:"board"` // rows from rank 8 down, "." for empty
	Moved       []string       `json:"moved"` // squares of pieces that have moved
	History     []moveRecord   `json:"history"`
	WhiteToMove bool           `json:"whiteToMove"`
	WhiteKing   string         `json:"whiteKing"`
	BlackKing   string         `json:"blackKing"`
	GameOver    bool           `json:"gameOver"`
	Outcome     string         `json:"outcome"`
	Pending     *pendingRecord `json:"pendingPromotion,omitempty"`
}

type moveRecord struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
	Class    string `json:"class"`
	Promoted string `json:"promoted,omitempty"`
}

type pendingRecord struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Captured string `json:"captured,omitempty"`
}

// DefaultPath returns the save file path under the XDG data home, creating
// its directory if needed.
func DefaultPath() (string, error) {
	return xdg.DataFile(DefaultFile)
}

// Encode writes the game's state to w.
func Encode(w io.Writer, g *engine.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fromState(g.State()))
}

// Decode reads a state from r and validates it. Errors are *errors.LoadError.
func Decode(r io.Reader) (engine.State, error) {
	s, err := decode(r)
	if err != nil {
		return engine.State{}, &errors.LoadError{Err: err}
	}
	return s, nil
}

// Save writes the game to path. The document is written to a temporary
// file in the same directory and renamed over path, so a failed save never
// leaves a partial file behind.
func Save(path string, g *engine.Game) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".savegame-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := Encode(tmp, g); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Load reads path and restores it into g. On any failure g is unchanged and
// the error is a *errors.LoadError matching errors.ErrLoadFailure.
func Load(path string, g *engine.Game) error {
	f, err := os.Open(path)
	if err != nil {
		return &errors.LoadError{Path: path, Err: err}
	}
	defer f.Close()

	s, err := decode(f)
	if err != nil {
		return &errors.LoadError{Path: path, Err: err}
	}
	if err := g.Restore(s); err != nil {
		return &errors.LoadError{Path: path, Err: err}
	}
	return nil
}

// decode parses and validates a document.
func decode(r io.Reader) (engine.State, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return engine.State{}, fmt.Errorf("parse snapshot: %w", err)
	}
	s, err := doc.toState()
	if err != nil {
		return engine.State{}, err
	}
	if err := engine.ValidateState(s); err != nil {
		return engine.State{}, err
	}
	return s, nil
}

func fromState(s engine.State) document {
	doc := document{
		Version:     Version,
		WhiteToMove: s.ToMove == chess.White,
		WhiteKing:   s.Board.KingSquare(chess.White).String(),
		BlackKing:   s.Board.KingSquare(chess.Black).String(),
		GameOver:    s.GameOver,
		Outcome:     s.Outcome.String(),
		Moved:       []string{},
		History:     []moveRecord{},
	}

	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			p := s.Board.At(chess.Pos(row, col))
			if p == nil {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(pieceCode(p.Kind, p.Colour))
			if p.Moved {
				doc.Moved = append(doc.Moved, p.Pos.String())
			}
		}
		doc.Board = append(doc.Board, sb.String())
	}

	for _, m := range s.History {
		doc.History = append(doc.History, moveRecord{
			From:     m.From.String(),
			To:       m.To.String(),
			Piece:    pieceCode(m.Kind, m.Colour),
			Captured: kindCode(m.Captured),
			Class:    m.Class.String(),
			Promoted: kindCode(m.Promoted),
		})
	}

	if p := s.Pending; p != nil {
		doc.Pending = &pendingRecord{
			From:     p.From.String(),
			To:       p.To.String(),
			Captured: kindCode(p.Captured),
		}
	}
	return doc
}

func (doc *document) toState() (engine.State, error) {
	if doc.Version != Version {
		return engine.State{}, fmt.Errorf("unsupported snapshot version %d", doc.Version)
	}
	if len(doc.Board) != chess.BoardSize {
		return engine.State{}, fmt.Errorf("board has %d rows", len(doc.Board))
	}

	board := chess.NewBoard()
	for row, line := range doc.Board {
		if len(line) != chess.BoardSize {
			return engine.State{}, fmt.Errorf("board row %d has %d squares", row, len(line))
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			kind, colour, err := parsePieceCode(string(c))
			if err != nil {
				return engine.State{}, fmt.Errorf("board row %d: %w", row, err)
			}
			board.Place(chess.Pos(row, col), chess.NewPiece(kind, colour))
		}
	}

	for _, name := range doc.Moved {
		pos, err := chess.ParseSquare(name)
		if err != nil {
			return engine.State{}, fmt.Errorf("moved list: %w", err)
		}
		p := board.At(pos)
		if p == nil {
			return engine.State{}, fmt.Errorf("moved list names empty square %s", name)
		}
		p.MarkMoved()
	}

	for _, k := range []struct {
		colour chess.Colour
		name   string
	}{{chess.White, doc.WhiteKing}, {chess.Black, doc.BlackKing}} {
		pos, err := chess.ParseSquare(k.name)
		if err != nil {
			return engine.State{}, fmt.Errorf("%s king: %w", k.colour, err)
		}
		board.SetKingSquare(k.colour, pos)
	}

	s := engine.State{
		Board:    board,
		ToMove:   chess.Black,
		GameOver: doc.GameOver,
	}
	if doc.WhiteToMove {
		s.ToMove = chess.White
	}

	outcome, err := parseOutcome(doc.Outcome)
	if err != nil {
		return engine.State{}, err
	}
	s.Outcome = outcome

	for i, rec := range doc.History {
		m, err := rec.toMove()
		if err != nil {
			return engine.State{}, fmt.Errorf("history entry %d: %w", i, err)
		}
		s.History = append(s.History, m)
	}

	if p := doc.Pending; p != nil {
		from, err := chess.ParseSquare(p.From)
		if err != nil {
			return engine.State{}, fmt.Errorf("pending promotion: %w", err)
		}
		to, err := chess.ParseSquare(p.To)
		if err != nil {
			return engine.State{}, fmt.Errorf("pending promotion: %w", err)
		}
		captured, err := parseKindCode(p.Captured)
		if err != nil {
			return engine.State{}, fmt.Errorf("pending promotion: %w", err)
		}
		s.Pending = &engine.PendingPromotion{From: from, To: to, Captured: captured}
	}

	return s, nil
}

func (rec moveRecord) toMove() (chess.Move, error) {
	from, err := chess.ParseSquare(rec.From)
	if err != nil {
		return chess.Move{}, err
	}
	to, err := chess.ParseSquare(rec.To)
	if err != nil {
		return chess.Move{}, err
	}
	kind, colour, err := parsePieceCode(rec.Piece)
	if err != nil {
		return chess.Move{}, err
	}
	captured, err := parseKindCode(rec.Captured)
	if err != nil {
		return chess.Move{}, err
	}
	promoted, err := parseKindCode(rec.Promoted)
	if err != nil {
		return chess.Move{}, err
	}
	class, err := parseMoveClass(rec.Class)
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{
		From:     from,
		To:       to,
		Kind:     kind,
		Colour:   colour,
		Captured: captured,
		Class:    class,
		Promoted: promoted,
	}, nil
}

// pieceCode returns the piece letter, uppercase for White.
func pieceCode(kind chess.Kind, colour chess.Colour) string {
	code := string(kind.Letter())
	if colour == chess.Black {
		code = strings.ToLower(code)
	}
	return code
}

func parsePieceCode(code string) (chess.Kind, chess.Colour, error) {
	if len(code) != 1 {
		return chess.NoKind, chess.White, fmt.Errorf("invalid piece code %q", code)
	}
	kind := chess.KindFromLetter(code[0])
	if kind == chess.NoKind {
		return chess.NoKind, chess.White, fmt.Errorf("invalid piece code %q", code)
	}
	colour := chess.White
	if code != strings.ToUpper(code) {
		colour = chess.Black
	}
	return kind, colour, nil
}

// kindCode returns the uppercase kind letter, or "" for NoKind.
func kindCode(kind chess.Kind) string {
	if kind == chess.NoKind {
		return ""
	}
	return string(kind.Letter())
}

func parseKindCode(code string) (chess.Kind, error) {
	if code == "" {
		return chess.NoKind, nil
	}
	kind, _, err := parsePieceCode(code)
	return kind, err
}

func parseMoveClass(name string) (chess.MoveClass, error) {
	for _, c := range []chess.MoveClass{
		chess.NormalMove, chess.KingsideCastle, chess.QueensideCastle, chess.EnPassant, chess.Promotion,
	} {
		if c.String() == name {
			return c, nil
		}
	}
	return chess.NormalMove, fmt.Errorf("unknown move class %q", name)
}

func parseOutcome(name string) (chess.Outcome, error) {
	for _, o := range []chess.Outcome{
		chess.None, chess.Checkmate, chess.Stalemate, chess.InsufficientMaterial,
	} {
		if o.String() == name {
			return o, nil
		}
	}
	return chess.None, fmt.Errorf("unknown outcome %q", name)
}
