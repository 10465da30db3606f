// Package hashing provides duplicate detection for chess positions.
package hashing

import (
	"github.com/lgbarn/chess-movegen-go/internal/chess"
)

// PositionSignature identifies a position for duplicate detection.
type PositionSignature struct {
	// Hash is the Zobrist hash of placement and side to move
	Hash uint64
	// WeakHash is a placement checksum for additional confidence
	WeakHash uint64
	// Pieces is the number of pieces on the board
	Pieces int
}

// Sign computes the signature of a position.
func Sign(board *chess.Board, toMove chess.Colour) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(board, toMove),
		WeakHash: WeakHash(board),
		Pieces:   board.Count(),
	}
}

// DuplicateDetector tracks seen positions. It is not safe for concurrent
// use; batch mode feeds it from the single goroutine that orders results.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// maxCapacity bounds the number of stored signatures; 0 means unlimited
	maxCapacity int
	// entries is the number of stored signatures
	entries int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether the position was seen before, and records it
// if not.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, toMove chess.Colour) bool {
	if board == nil {
		return false
	}
	return d.CheckAndAddSignature(Sign(board, toMove))
}

// CheckAndAddSignature is CheckAndAdd for a precomputed signature.
// Once the detector is full, new signatures are no longer recorded but
// known ones are still reported as duplicates.
func (d *DuplicateDetector) CheckAndAddSignature(sig PositionSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.entries++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.entries = 0
	d.duplicateCount = 0
}
