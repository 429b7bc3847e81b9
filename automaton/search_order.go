package automaton

// SearchOrderCell is one entry of the backtracker's spine: a (x, y, t)
// grid position the search will decide, in the order it appears in the
// slice returned by buildSearchOrder.
type SearchOrderCell struct {
	X, Y, T int
}

// buildSearchOrder expands a Config's SearchOrder selection into the
// concrete sequence of cells the backtracker will visit. FromVec uses
// the caller's slice directly; every other order is generated here.
func buildSearchOrder(cfg Config, width, height, period int) []SearchOrderCell {
	order := cfg.SearchOrder
	if order == Automatic {
		order = automaticOrder(cfg, width, height)
	}

	switch order {
	case FromVec:
		return cfg.SearchOrderVec
	case ColumnFirst:
		cells := make([]SearchOrderCell, 0, width*height*period)
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				for t := 0; t < period; t++ {
					cells = append(cells, SearchOrderCell{x, y, t})
				}
			}
		}
		return cells
	case Diagonal:
		cells := make([]SearchOrderCell, 0, width*height*period)
		for d := 0; d < width+height-1; d++ {
			for x := 0; x <= d; x++ {
				y := d - x
				if x >= width || y < 0 || y >= height {
					continue
				}
				for t := 0; t < period; t++ {
					cells = append(cells, SearchOrderCell{x, y, t})
				}
			}
		}
		return cells
	default: // RowFirst
		cells := make([]SearchOrderCell, 0, width*height*period)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				for t := 0; t < period; t++ {
					cells = append(cells, SearchOrderCell{x, y, t})
				}
			}
		}
		return cells
	}
}

// resolvedOrderKind mirrors the Automatic-resolution switch in
// buildSearchOrder, used by isFrontCell to know which edge "front"
// means without re-deriving it.
func resolvedOrderKind(cfg Config, width, height int) SearchOrder {
	if cfg.SearchOrder != Automatic {
		return cfg.SearchOrder
	}
	return automaticOrder(cfg, width, height)
}

// automaticOrder resolves SearchOrder.Automatic: column-major if the
// world is taller than it is wide, row-major if wider than tall, and
// diagonal only for a square world with a tight enough DiagonalWidth.
func automaticOrder(cfg Config, width, height int) SearchOrder {
	if width == height {
		if cfg.DiagonalWidth > 0 && 2*cfg.DiagonalWidth <= width {
			return Diagonal
		}
		return RowFirst
	}
	if width < height {
		return ColumnFirst
	}
	return RowFirst
}

// wantsFrontGen0 decides the is_front half-front optimisation: when the
// search has no net translation or transform, a pattern's front is
// periodic in the same trivial way generation 0 is, so only generation
// 0's front needs to be watched for the front_nonempty filter. This is
// a pruning heuristic, not a correctness requirement — checking every
// generation's front is always sound, just slower.
func wantsFrontGen0(cfg Config) bool {
	return cfg.Dx == 0 && cfg.Dy == 0 && cfg.Transform == Identity
}

// isFrontCell reports whether a spine cell counts as part of the
// search's "front" for the front_nonempty filter, given the resolved
// search order and the half-front optimisation flag.
func isFrontCell(cell SearchOrderCell, order SearchOrder, frontGen0 bool) bool {
	if frontGen0 && cell.T != 0 {
		return false
	}
	switch order {
	case RowFirst:
		return cell.Y == 0
	case ColumnFirst:
		return cell.X == 0
	case Diagonal:
		return cell.X == 0 || cell.Y == 0
	default:
		return false
	}
}
