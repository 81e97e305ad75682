package protocol

// Piece is the raw one-byte piece code used on the wire, one per square.
type Piece byte

// Piece codes as sent by the board.
const (
	// Empty indicates an unoccupied square
	Empty Piece = 0x00

	WhitePawn   Piece = 0x01
	WhiteRook   Piece = 0x02
	WhiteKnight Piece = 0x03
	WhiteBishop Piece = 0x04
	WhiteKing   Piece = 0x05
	WhiteQueen  Piece = 0x06

	BlackPawn   Piece = 0x07
	BlackRook   Piece = 0x08
	BlackKnight Piece = 0x09
	BlackBishop Piece = 0x0A
	BlackKing   Piece = 0x0B
	BlackQueen  Piece = 0x0C
)

// Color is the side a piece belongs to.
type Color int

const (
	// ColorNone is the color of the Empty piece
	ColorNone Color = iota

	ColorWhite
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	default:
		return "none"
	}
}

// PieceFromByte converts a wire byte into a Piece.
// Returns false for any byte outside the defined 0x00-0x0C range.
func PieceFromByte(b byte) (Piece, bool) {
	switch p := Piece(b); p {
	case Empty,
		WhitePawn, WhiteRook, WhiteKnight, WhiteBishop, WhiteKing, WhiteQueen,
		BlackPawn, BlackRook, BlackKnight, BlackBishop, BlackKing, BlackQueen:
		return p, true
	default:
		return 0, false
	}
}

// Color returns the side the piece belongs to, or ColorNone for Empty.
func (p Piece) Color() Color {
	switch {
	case p >= WhitePawn && p <= WhiteQueen:
		return ColorWhite
	case p >= BlackPawn && p <= BlackQueen:
		return ColorBlack
	default:
		return ColorNone
	}
}

// Char returns the FEN-style character for the piece.
// White pieces are uppercase, black lowercase, Empty is a space.
func (p Piece) Char() rune {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteRook:
		return 'R'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteKing:
		return 'K'
	case WhiteQueen:
		return 'Q'
	case BlackPawn:
		return 'p'
	case BlackRook:
		return 'r'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackKing:
		return 'k'
	case BlackQueen:
		return 'q'
	default:
		return ' '
	}
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "empty"
	case WhitePawn:
		return "white pawn"
	case WhiteRook:
		return "white rook"
	case WhiteKnight:
		return "white knight"
	case WhiteBishop:
		return "white bishop"
	case WhiteKing:
		return "white king"
	case WhiteQueen:
		return "white queen"
	case BlackPawn:
		return "black pawn"
	case BlackRook:
		return "black rook"
	case BlackKnight:
		return "black knight"
	case BlackBishop:
		return "black bishop"
	case BlackKing:
		return "black king"
	case BlackQueen:
		return "black queen"
	default:
		return "invalid piece"
	}
}
