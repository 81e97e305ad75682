package game

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dgtkit/go-dgt/protocol"
)

// startingBoard returns the layout with White's back rank on squares 0-7.
func startingBoard() protocol.Board {
	var board protocol.Board
	copy(board[0:8], whiteBackRank[:])
	for i := 8; i < 16; i++ {
		board[i] = protocol.WhitePawn
	}
	for i := 48; i < 56; i++ {
		board[i] = protocol.BlackPawn
	}
	copy(board[56:64], blackBackRank[:])
	return board
}

// mirrorBoard returns the starting layout rotated 180 degrees: Black's back
// rank on squares 0-7.
func mirrorBoard() protocol.Board {
	var board protocol.Board
	copy(board[0:8], blackBackRankMirror[:])
	for i := 8; i < 16; i++ {
		board[i] = protocol.BlackPawn
	}
	for i := 48; i < 56; i++ {
		board[i] = protocol.WhitePawn
	}
	copy(board[56:64], whiteBackRankMirror[:])
	return board
}

func TestClassify(t *testing.T) {
	occupiedCenter := startingBoard()
	occupiedCenter[20] = protocol.WhitePawn

	wrongPawn := startingBoard()
	wrongPawn[12] = protocol.BlackPawn

	swappedRoyals := startingBoard()
	swappedRoyals[3], swappedRoyals[4] = swappedRoyals[4], swappedRoyals[3]

	tests := []struct {
		name  string
		board protocol.Board
		want  StartPosition
	}{
		{"starting position", startingBoard(), StartNormal},
		{"rotated starting position", mirrorBoard(), StartMirror},
		{"empty board", protocol.Board{}, StartNone},
		{"piece in the center", occupiedCenter, StartNone},
		{"wrong pawn color", wrongPawn, StartNone},
		{"king and queen swapped", swappedRoyals, StartNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewTracker(tt.board)
			if got := tracker.Classify(); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	tracker := NewTracker(startingBoard())

	first := tracker.Classify()
	second := tracker.Classify()

	if first != second {
		t.Errorf("Classify() changed without a mutation: %v then %v", first, second)
	}
}

func TestApply(t *testing.T) {
	tracker := NewTracker(startingBoard())

	// White pawn from square 8 to square 16: the board reports the lift
	// and the drop as two separate updates.
	tracker.Apply(protocol.FieldUpdate{Square: 8, Piece: protocol.Empty})
	tracker.Apply(protocol.FieldUpdate{Square: 16, Piece: protocol.WhitePawn})

	want := startingBoard()
	want[8] = protocol.Empty
	want[16] = protocol.WhitePawn

	if diff := cmp.Diff(want, tracker.Board()); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}

	// Square 16 is in the center now, so this is no longer a start position.
	if got := tracker.Classify(); got != StartNone {
		t.Errorf("Classify() after move = %v, want %v", got, StartNone)
	}
}

func TestApplyOutOfRangeIsIgnored(t *testing.T) {
	tracker := NewTracker(startingBoard())
	before := tracker.Board()

	tracker.Apply(protocol.FieldUpdate{Square: 64, Piece: protocol.WhiteQueen})
	tracker.Apply(protocol.FieldUpdate{Square: -1, Piece: protocol.WhiteQueen})

	if diff := cmp.Diff(before, tracker.Board()); diff != "" {
		t.Errorf("out-of-range update changed the board (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	got := NewTracker(startingBoard()).String()

	lines := strings.Split(got, "\n")
	if len(lines) != 8 {
		t.Fatalf("rendering has %d lines, want 8:\n%s", len(lines), got)
	}

	wantLines := []string{
		"rnbkqbnr",
		"pppppppp",
		"        ",
		"        ",
		"        ",
		"        ",
		"PPPPPPPP",
		"RNBKQBNR",
	}
	for i, want := range wantLines {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}
