package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// henselOrbit is one equivalence class of 8-bit Moore neighbour
// patterns, all with the same live-neighbour count, under the 8-element
// symmetry group of the square (4 rotations, 4 reflections). Hensel
// notation lets a rule's birth/survival condition single out individual
// orbits instead of being forced to treat every pattern with the same
// count identically (as outer-totalistic rules must).
type henselOrbit struct {
	letter   byte
	patterns []uint8
}

// d4 is the symmetry group of the square acting on the Moore
// neighbourhood slots, expressed as coordinate transforms. It is the
// same group World applies to the whole grid for Symmetry folding (see
// config.go's Transform), restricted here to the eight neighbour cells.
var d4 = []func(dx, dy int) (int, int){
	func(x, y int) (int, int) { return x, y },
	func(x, y int) (int, int) { return -y, x },
	func(x, y int) (int, int) { return -x, -y },
	func(x, y int) (int, int) { return y, -x },
	func(x, y int) (int, int) { return x, -y },
	func(x, y int) (int, int) { return -x, y },
	func(x, y int) (int, int) { return y, x },
	func(x, y int) (int, int) { return -y, -x },
}

var slotByOffset = func() map[[2]int]int {
	m := make(map[[2]int]int, maxNeighbours)
	for slot, off := range mooreOffsets {
		m[off] = slot
	}
	return m
}()

func permuteBits(transform func(int, int) (int, int), bits uint8) uint8 {
	var out uint8
	for slot := 0; slot < maxNeighbours; slot++ {
		if bits&(1<<uint(slot)) == 0 {
			continue
		}
		dx, dy := mooreOffsets[slot][0], mooreOffsets[slot][1]
		ndx, ndy := transform(dx, dy)
		out |= 1 << uint(slotByOffset[[2]int{ndx, ndy}])
	}
	return out
}

// henselOrbitsCache memoizes henselOrbits per count: the orbit structure
// never depends on anything but n.
var henselOrbitsCache = map[int][]henselOrbit{}

// henselOrbits returns the symmetry orbits of the 8-bit neighbour
// patterns with exactly n bits set, in ascending canonical-pattern
// order, lettered a, b, c, ... As noted in SPEC_FULL.md's Open
// Questions, this lettering is internally consistent but not guaranteed
// to match the historical Hensel convention bit-for-bit.
func henselOrbits(n int) []henselOrbit {
	if cached, ok := henselOrbitsCache[n]; ok {
		return cached
	}
	seen := make(map[uint8]bool)
	canonicalOf := make(map[uint8]uint8)
	for pattern := 0; pattern < 256; pattern++ {
		if countActive(uint8(pattern)) != n {
			continue
		}
		p := uint8(pattern)
		if seen[p] {
			continue
		}
		canon := p
		var orbit []uint8
		for _, t := range d4 {
			q := permuteBits(t, p)
			if !seen[q] {
				seen[q] = true
				orbit = append(orbit, q)
			}
			if q < canon {
				canon = q
			}
		}
		for _, q := range orbit {
			canonicalOf[q] = canon
		}
	}
	groups := make(map[uint8][]uint8)
	for p, c := range canonicalOf {
		groups[c] = append(groups[c], p)
	}
	var canons []uint8
	for c := range groups {
		canons = append(canons, c)
	}
	sort.Slice(canons, func(i, j int) bool { return canons[i] < canons[j] })

	orbits := make([]henselOrbit, 0, len(canons))
	for i, c := range canons {
		patterns := groups[c]
		sort.Slice(patterns, func(i, j int) bool { return patterns[i] < patterns[j] })
		orbits = append(orbits, henselOrbit{letter: byte('a' + i), patterns: patterns})
	}
	henselOrbitsCache[n] = orbits
	return orbits
}

// parseHenselTerms parses a B- or S-side term string such as
// "2-a3-ce4" into the set of 8-bit neighbour patterns it selects, per
// neighbour count. A bare digit with no letters selects every pattern
// with that count (the outer-totalistic case); a digit followed by a
// '-' and letters selects every orbit of that count EXCEPT the named
// ones; a digit followed directly by letters selects only those orbits.
func parseHenselTerms(s string) (map[uint8]bool, error) {
	selected := make(map[uint8]bool)
	i := 0
	for i < len(s) {
		if s[i] < '0' || s[i] > '8' {
			return nil, fmt.Errorf("automaton: unexpected character %q in rule term %q", s[i], s)
		}
		n := int(s[i] - '0')
		i++
		negate := false
		if i < len(s) && s[i] == '-' {
			negate = true
			i++
		}
		start := i
		for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
			i++
		}
		letters := s[start:i]

		orbits := henselOrbits(n)
		if letters == "" && !negate {
			for _, o := range orbits {
				for _, p := range o.patterns {
					selected[p] = true
				}
			}
			continue
		}
		wanted := make(map[byte]bool, len(letters))
		for j := 0; j < len(letters); j++ {
			wanted[letters[j]] = true
		}
		for _, o := range orbits {
			if wanted[o.letter] != negate {
				for _, p := range o.patterns {
					selected[p] = true
				}
			}
		}
	}
	return selected, nil
}

// parseIsotropicRule parses a Hensel-notation isotropic non-totalistic
// rule string, e.g. "B3/S23-a" or "B2-a3/S23". It returns an error if s
// is not in B.../S... form or if either side has a term it cannot parse.
func parseIsotropicRule(s string) (Rule, error) {
	bPart, sPart, err := splitBS(s)
	if err != nil {
		return nil, err
	}
	births, err := parseHenselTerms(bPart)
	if err != nil {
		return nil, fmt.Errorf("automaton: invalid rule %q: %w", s, err)
	}
	survivals, err := parseHenselTerms(sPart)
	if err != nil {
		return nil, fmt.Errorf("automaton: invalid rule %q: %w", s, err)
	}

	var table [2][256]State
	for pattern := 0; pattern < 256; pattern++ {
		p := uint8(pattern)
		if births[p] {
			table[0][pattern] = Alive
		} else {
			table[0][pattern] = Dead
		}
		if survivals[p] {
			table[1][pattern] = Alive
		} else {
			table[1][pattern] = Dead
		}
	}
	return newGenericNontotalisticRule(s, maskMoore, table), nil
}

// splitBS splits a "Bxxx/Syyy" rule string (case-insensitive) into its
// birth and survival term strings.
func splitBS(s string) (birth, survival string, err error) {
	upper := strings.ToUpper(s)
	bIdx := strings.IndexByte(upper, 'B')
	sIdx := strings.IndexByte(upper, 'S')
	if bIdx != 0 || sIdx < 0 || sIdx < bIdx {
		return "", "", fmt.Errorf("automaton: rule %q is not in B.../S... form", s)
	}
	return strings.TrimSuffix(s[bIdx+1:sIdx], "/"), s[sIdx+1:], nil
}
