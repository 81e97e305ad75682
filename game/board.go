package game

import (
	"strings"

	"github.com/dgtkit/go-dgt/protocol"
)

// StartPosition classifies a board layout against the known starting
// positions.
type StartPosition int

const (
	// StartNone means the layout is not a starting position
	StartNone StartPosition = iota

	// StartNormal means the layout is the starting position with White's
	// back rank at squares 0-7
	StartNormal

	// StartMirror means the layout is the starting position with Black's
	// back rank at squares 0-7 (board rotated 180 degrees)
	StartMirror
)

func (s StartPosition) String() string {
	switch s {
	case StartNormal:
		return "normal"
	case StartMirror:
		return "mirror"
	default:
		return "none"
	}
}

// Back-rank comparison sequences, in device square order. The king/queen
// column order is kept exactly as the board reports it for each
// orientation.
var (
	whiteBackRank = [8]protocol.Piece{
		protocol.WhiteRook, protocol.WhiteKnight, protocol.WhiteBishop,
		protocol.WhiteKing, protocol.WhiteQueen,
		protocol.WhiteBishop, protocol.WhiteKnight, protocol.WhiteRook,
	}
	blackBackRank = [8]protocol.Piece{
		protocol.BlackRook, protocol.BlackKnight, protocol.BlackBishop,
		protocol.BlackKing, protocol.BlackQueen,
		protocol.BlackBishop, protocol.BlackKnight, protocol.BlackRook,
	}
	blackBackRankMirror = [8]protocol.Piece{
		protocol.BlackRook, protocol.BlackKnight, protocol.BlackBishop,
		protocol.BlackQueen, protocol.BlackKing,
		protocol.BlackBishop, protocol.BlackKnight, protocol.BlackRook,
	}
	whiteBackRankMirror = [8]protocol.Piece{
		protocol.WhiteRook, protocol.WhiteKnight, protocol.WhiteBishop,
		protocol.WhiteQueen, protocol.WhiteKing,
		protocol.WhiteBishop, protocol.WhiteKnight, protocol.WhiteRook,
	}
)

// Tracker owns the current board layout. It is seeded from a full dump and
// mutated exclusively through Apply; create one Tracker per device.
//
// Tracker is not safe for concurrent use. The protocol is single-threaded
// half-duplex, so exactly one goroutine owns the tracker.
type Tracker struct {
	board protocol.Board
}

// NewTracker creates a Tracker seeded with the given layout, normally the
// BoardDump received right after reset.
func NewTracker(board protocol.Board) *Tracker {
	return &Tracker{board: board}
}

// Apply replaces the single square named by the update. Square indexes are
// validated upstream by the decoder; an out-of-range index here is ignored
// rather than allowed to corrupt the board.
func (t *Tracker) Apply(update protocol.FieldUpdate) {
	if update.Square < 0 || update.Square >= protocol.BoardSize {
		return
	}
	t.board[update.Square] = update.Piece
}

// Board returns a copy of the current layout.
func (t *Tracker) Board() protocol.Board {
	return t.board
}

// Classify reports whether the current layout is a starting position.
// The result is derived from the board on every call; it is never cached
// across mutations.
func (t *Tracker) Classify() StartPosition {
	// A starting position has an empty center by definition.
	for _, p := range t.board[16:48] {
		if p != protocol.Empty {
			return StartNone
		}
	}

	if t.ranksMatch(whiteBackRank, protocol.WhitePawn, protocol.BlackPawn, blackBackRank) {
		return StartNormal
	}
	if t.ranksMatch(blackBackRankMirror, protocol.BlackPawn, protocol.WhitePawn, whiteBackRankMirror) {
		return StartMirror
	}
	return StartNone
}

// ranksMatch checks the two back ranks and two pawn ranks against the given
// sequences, low squares first.
func (t *Tracker) ranksMatch(lowBack [8]protocol.Piece, lowPawn, highPawn protocol.Piece, highBack [8]protocol.Piece) bool {
	for i := 0; i < 8; i++ {
		if t.board[i] != lowBack[i] || t.board[56+i] != highBack[i] {
			return false
		}
		if t.board[8+i] != lowPawn || t.board[48+i] != highPawn {
			return false
		}
	}
	return true
}

// String renders the board as eight rows of FEN characters, the last
// device rank first, for logging.
func (t *Tracker) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteRune(t.board[rank*8+file].Char())
		}
		if rank > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
