// Package hashing provides duplicate detection for saved chess games.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Zobrist keys, fixed for the life of the program.
var (
	pieceKeys   [2][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	unmovedKeys [chess.BoardSize * chess.BoardSize]uint64
	blackToMove uint64
)

func init() {
	r := rand.New(rand.NewPCG(0x6368657373, 0x72756c6573))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = r.Uint64()
			}
		}
	}
	for sq := range unmovedKeys {
		unmovedKeys[sq] = r.Uint64()
	}
	blackToMove = r.Uint64()
}

func square(p chess.Position) int {
	return p.Row*chess.BoardSize + p.Col
}

// GenerateZobristHash returns the Zobrist hash of the position with toMove
// to play. Kings and rooks that have not moved add a key of their own, so
// positions that differ in castling rights hash differently.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Pos(row, col)
			p := board.At(pos)
			if p == nil {
				continue
			}
			hash ^= pieceKeys[p.Colour][p.Kind][square(pos)]
			if !p.Moved && (p.Kind == chess.King || p.Kind == chess.Rook) {
				hash ^= unmovedKeys[square(pos)]
			}
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash packs the piece counts of both sides, four bits per kind. Equal
// positions always have equal weak hashes.
func WeakHash(board *chess.Board) uint64 {
	var counts [2][chess.King + 1]uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			counts[colour][p.Kind]++
		}
	}

	var hash uint64
	for c := range counts {
		for k := chess.Pawn; k <= chess.King; k++ {
			hash = hash<<4 | counts[c][k]&0xf
		}
	}
	return hash
}

// GameSignature stores identifying information about a saved game.
type GameSignature struct {
	// Source names the game, e.g. its file name.
	Source string
	// Hash is the Zobrist hash of the current position
	Hash uint64
	// WeakHash is the material signature
	WeakHash uint64
	// PlyCount is the number of half-moves played
	PlyCount int
}

// DuplicateDetector tracks seen positions for duplicate game detection.
// It is not safe for concurrent use.
type DuplicateDetector struct {
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same number of moves played
	useExactMatch  bool
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// Signature computes the signature of g's current position.
func Signature(source string, g *engine.Game) GameSignature {
	board := g.Board()
	return GameSignature{
		Source:   source,
		Hash:     GenerateZobristHash(board, g.ToMove()),
		WeakHash: WeakHash(board),
		PlyCount: g.PlyCount(),
	}
}

// CheckAndAdd checks whether g's position was seen before. It returns the
// signature of the first game with that position and true for a duplicate;
// otherwise g is remembered.
func (d *DuplicateDetector) CheckAndAdd(source string, g *engine.Game) (GameSignature, bool) {
	sig := Signature(source, g)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return GameSignature{}, false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
