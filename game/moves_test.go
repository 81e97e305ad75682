package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dgtkit/go-dgt/protocol"
)

func TestClassifyMovesPartition(t *testing.T) {
	tests := []struct {
		name         string
		updates      []protocol.FieldUpdate
		wantVacated  []int
		wantOccupied []int
	}{
		{
			name: "simple move shape",
			updates: []protocol.FieldUpdate{
				{Square: 8, Piece: protocol.Empty},
				{Square: 16, Piece: protocol.WhitePawn},
			},
			wantVacated:  []int{8},
			wantOccupied: []int{16},
		},
		{
			name: "castle shape",
			updates: []protocol.FieldUpdate{
				{Square: 3, Piece: protocol.Empty},
				{Square: 0, Piece: protocol.Empty},
				{Square: 1, Piece: protocol.WhiteKing},
				{Square: 2, Piece: protocol.WhiteRook},
			},
			wantVacated:  []int{3, 0},
			wantOccupied: []int{1, 2},
		},
		{
			name:    "empty batch",
			updates: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ClassifyMoves(tt.updates)

			if summary.Kind != MoveNotClassified {
				t.Errorf("Kind = %v, want %v", summary.Kind, MoveNotClassified)
			}
			if diff := cmp.Diff(tt.wantVacated, summary.Vacated); diff != "" {
				t.Errorf("Vacated mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantOccupied, summary.Occupied); diff != "" {
				t.Errorf("Occupied mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveKindStrings(t *testing.T) {
	kinds := map[MoveKind]string{
		MoveNotClassified:    "not classified",
		MoveSimple:           "simple move",
		MoveCapture:          "capture",
		MovePawnCapture:      "pawn capture",
		MovePromotion:        "promotion",
		MovePromotionCapture: "promotion with capture",
		MoveShortCastle:      "short castle",
		MoveLongCastle:       "long castle",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
}
