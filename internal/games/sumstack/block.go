// Package sumstack implements the sum-puzzle game: a grid of numbered
// blocks stacks upward, and the player clears blocks by selecting a
// subset whose values add up to the current target.
package sumstack

import "math/rand"

// BlockID uniquely identifies a block within a session.
// Identity is stable across row shifts; only Row changes when rows shift.
type BlockID uint64

// Block is a single numbered tile at a grid position.
// Row 0 is the bottom (newest) row; older rows sit above it.
type Block struct {
	ID    BlockID
	Value int
	Row   int
	Col   int
}

// Generator creates blocks and targets for one session.
// It owns the session RNG so that a fixed seed reproduces the same
// sequence of values and targets.
type Generator struct {
	rules  Rules
	rng    *rand.Rand
	nextID BlockID
}

// NewGenerator creates a generator with the given rules and RNG.
func NewGenerator(rules Rules, rng *rand.Rand) *Generator {
	return &Generator{
		rules: rules,
		rng:   rng,
	}
}

// NewBlock returns a block at (row, col) with a fresh unique ID and a
// value drawn uniformly from [MinValue, MaxValue].
func (g *Generator) NewBlock(row, col int) Block {
	g.nextID++
	return Block{
		ID:    g.nextID,
		Value: g.rules.MinValue + g.rng.Intn(g.rules.MaxValue-g.rules.MinValue+1),
		Row:   row,
		Col:   col,
	}
}

// InitialGrid returns rows*Cols blocks filling rows 0..rows-1.
func (g *Generator) InitialGrid(rows int) []Block {
	blocks := make([]Block, 0, rows*g.rules.Cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < g.rules.Cols; col++ {
			blocks = append(blocks, g.NewBlock(row, col))
		}
	}
	return blocks
}

// AddRow returns a new block set where every existing block is shifted up
// one row and a freshly generated row is inserted at row 0. Shifted blocks
// keep their ID and Value; only Row changes.
func (g *Generator) AddRow(blocks []Block) []Block {
	result := make([]Block, 0, len(blocks)+g.rules.Cols)
	for _, b := range blocks {
		b.Row++
		result = append(result, b)
	}
	for col := 0; col < g.rules.Cols; col++ {
		result = append(result, g.NewBlock(0, col))
	}
	return result
}

// Overflowing reports whether any block has reached maxRows.
// Pure predicate, no mutation.
func Overflowing(blocks []Block, maxRows int) bool {
	for _, b := range blocks {
		if b.Row >= maxRows {
			return true
		}
	}
	return false
}
