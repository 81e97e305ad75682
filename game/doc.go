// Package game tracks the logical piece placement derived from the board's
// update stream.
//
// A Tracker owns one Board, seeded from an initial full dump and mutated
// one square at a time by FieldUpdate messages. Classify reports whether
// the current layout matches a recognized starting position, in either the
// conventional orientation or rotated 180 degrees.
//
// ClassifyMoves is the aggregation stage for a batch of updates from one
// physical move. It partitions the batch into vacated and occupied squares;
// deriving move semantics (capture, castle, promotion) from the partition
// is not implemented yet, and the result says so explicitly.
package game
