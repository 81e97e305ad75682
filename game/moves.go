package game

import "github.com/dgtkit/go-dgt/protocol"

// MoveKind is the semantic classification of one batch of field updates.
type MoveKind int

const (
	// MoveNotClassified means the batch was not mapped to move semantics
	MoveNotClassified MoveKind = iota

	MoveSimple
	MoveCapture
	MovePawnCapture
	MovePromotion
	MovePromotionCapture
	MoveShortCastle
	MoveLongCastle
)

func (k MoveKind) String() string {
	switch k {
	case MoveSimple:
		return "simple move"
	case MoveCapture:
		return "capture"
	case MovePawnCapture:
		return "pawn capture"
	case MovePromotion:
		return "promotion"
	case MovePromotionCapture:
		return "promotion with capture"
	case MoveShortCastle:
		return "short castle"
	case MoveLongCastle:
		return "long castle"
	default:
		return "not classified"
	}
}

// MoveSummary aggregates one update cycle's worth of field updates.
type MoveSummary struct {
	// Kind is the semantic classification of the batch
	Kind MoveKind

	// Vacated lists squares that became empty, in update order
	Vacated []int

	// Occupied lists squares that gained a piece, in update order
	Occupied []int
}

// ClassifyMoves partitions a batch of field updates from one update cycle
// into vacated and occupied squares.
//
// Mapping the partition to move semantics is not implemented: Kind is
// always MoveNotClassified. Callers must not treat the kind as meaningful
// beyond that.
//
// TODO: derive Kind from the partition (piece counts and colors
// distinguish captures from castles) once verified against traces from
// real hardware.
func ClassifyMoves(updates []protocol.FieldUpdate) MoveSummary {
	summary := MoveSummary{Kind: MoveNotClassified}
	for _, u := range updates {
		if u.Piece == protocol.Empty {
			summary.Vacated = append(summary.Vacated, u.Square)
		} else {
			summary.Occupied = append(summary.Occupied, u.Square)
		}
	}
	return summary
}
