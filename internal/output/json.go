package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// JSONReport represents a verified game in JSON format.
type JSONReport struct {
	Source      string     `json:"source"`
	Status      string     `json:"status"` // "ok" or "failed"
	Error       string     `json:"error,omitempty"`
	ToMove      string     `json:"toMove,omitempty"`
	PlyCount    int        `json:"plyCount"`
	InCheck     bool       `json:"inCheck,omitempty"`
	Outcome     string     `json:"outcome,omitempty"`
	Pending     string     `json:"pendingPromotion,omitempty"`
	DuplicateOf string     `json:"duplicateOf,omitempty"`
	Moves       []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Special    string `json:"special,omitempty"` // castling or en passant
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Games []*JSONReport `json:"games"`
}

// ReportToJSON converts a report to JSON format.
func ReportToJSON(r *Report) *JSONReport {
	jr := &JSONReport{Source: r.Source}
	if r.Err != nil {
		jr.Status = "failed"
		jr.Error = r.Err.Error()
		return jr
	}

	g := r.Game
	jr.Status = "ok"
	jr.ToMove = colorName(g.ToMove())
	jr.PlyCount = g.PlyCount()
	jr.InCheck = g.InCheck(g.ToMove())
	jr.Outcome = r.Outcome.String()
	if pos, ok := g.PendingPromotion(); ok {
		jr.Pending = pos.String()
	}
	jr.DuplicateOf = r.DuplicateOf
	jr.Moves = convertMoveList(g.History())
	return jr
}

// convertMoveList numbers moves the way a score sheet does: White's and
// Black's replies share a move number.
func convertMoveList(history []chess.Move) []JSONMove {
	moves := make([]JSONMove, 0, len(history))
	number := 1
	for _, m := range history {
		moves = append(moves, convertSingleMove(m, number))
		if m.Colour == chess.Black {
			number++
		}
	}
	return moves
}

func convertSingleMove(m chess.Move, number int) JSONMove {
	jm := JSONMove{
		MoveNumber: number,
		Color:      colorName(m.Colour),
		UCI:        m.UCI(),
		Piece:      pieceTypeName(m.Kind),
	}
	if m.Captured != chess.NoKind {
		jm.Captured = pieceTypeName(m.Captured)
	}
	if m.Promoted != chess.NoKind {
		jm.Promotion = pieceTypeName(m.Promoted)
	}
	switch m.Class {
	case chess.KingsideCastle, chess.QueensideCastle, chess.EnPassant:
		jm.Special = m.Class.String()
	}
	return jm
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceTypeName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
