package automaton

// Moore neighbourhood slot order, raster scan around the cell, matching
// original_source/lib/src/world.rs's NBHD table. Every rule family
// addresses neighbours through this fixed slot numbering; hexagonal and
// von Neumann rules simply mask some of the eight slots out via
// ActiveNeighbourMask so those offsets are never linked for them.
const (
	slotNW = iota
	slotN
	slotNE
	slotW
	slotE
	slotSW
	slotS
	slotSE
)

// mooreOffsets[i] is the (dx, dy) of neighbourhood slot i relative to a
// cell at (x, y).
var mooreOffsets = [maxNeighbours][2]int{
	slotNW: {-1, -1},
	slotN:  {0, -1},
	slotNE: {1, -1},
	slotW:  {-1, 0},
	slotE:  {1, 0},
	slotSW: {-1, 1},
	slotS:  {0, 1},
	slotSE: {1, 1},
}

// maskMoore is every rule family's default: outer-totalistic, isotropic
// non-totalistic, and MAP rules all use the full 8-cell neighbourhood.
const maskMoore uint8 = 0xFF

// maskHex drops the NE/SW diagonal, shearing the square grid into a
// hexagonal tiling: the remaining six slots are the hex neighbours.
const maskHex uint8 = 1<<slotNW | 1<<slotN | 1<<slotW | 1<<slotE | 1<<slotS | 1<<slotSE

// maskVonNeumann keeps only the four orthogonal slots.
const maskVonNeumann uint8 = 1<<slotN | 1<<slotW | 1<<slotE | 1<<slotS

// activeSlots returns the slot indices set in mask, in ascending order.
func activeSlots(mask uint8) []int {
	slots := make([]int, 0, maxNeighbours)
	for i := 0; i < maxNeighbours; i++ {
		if mask&(1<<uint(i)) != 0 {
			slots = append(slots, i)
		}
	}
	return slots
}

// reverseSlot[slot] is the slot whose offset is the negation of
// mooreOffsets[slot]: if cell A sees cell B at slot `slot`, then B sees
// A at slot reverseSlot[slot]. Used to update a neighbour's descriptor
// when a cell's own state changes.
var reverseSlot = [maxNeighbours]int{
	slotNW: slotSE,
	slotN:  slotS,
	slotNE: slotSW,
	slotW:  slotE,
	slotE:  slotW,
	slotSW: slotNE,
	slotS:  slotN,
	slotSE: slotNW,
}

// countActive reports how many slots are set in mask.
func countActive(mask uint8) int {
	n := 0
	for mask != 0 {
		n += int(mask & 1)
		mask >>= 1
	}
	return n
}
