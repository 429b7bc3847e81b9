package automaton

// Transform is one of the 8 elements of the square's symmetry group,
// applied to the whole grid when mapping a cell to its image P
// generations later (for spaceships; for oscillators, Transform is
// Identity).
type Transform int

const (
	Identity Transform = iota
	Rotate90
	Rotate180
	Rotate270
	FlipRow      // reflect across a horizontal axis
	FlipCol      // reflect across a vertical axis
	FlipDiag     // reflect across the main diagonal
	FlipAntidiag // reflect across the anti-diagonal
)

func (t Transform) String() string {
	switch t {
	case Identity:
		return "Identity"
	case Rotate90:
		return "Rotate90"
	case Rotate180:
		return "Rotate180"
	case Rotate270:
		return "Rotate270"
	case FlipRow:
		return "FlipRow"
	case FlipCol:
		return "FlipCol"
	case FlipDiag:
		return "FlipDiag"
	case FlipAntidiag:
		return "FlipAntidiag"
	default:
		return "Transform(?)"
	}
}

// apply maps a displacement (dx, dy) from the world's centre through the
// transform, the same eight coordinate maps hensel.go uses for the
// smaller neighbourhood case.
func (t Transform) apply(dx, dy int) (int, int) {
	return d4[t](dx, dy)
}

// Symmetry is the group of transforms a solution is required to be
// invariant under (as a whole pattern, not just generation-to-generation
// like Transform). Every member includes Identity.
type Symmetry int

const (
	C1 Symmetry = iota
	C2
	C4
	D2Row
	D2Col
	D2Diag
	D2Antidiag
	D4Ortho
	D4Diag
	D8
)

// generators returns the non-identity transforms that, together with
// Identity, generate this symmetry group.
func (s Symmetry) generators() []Transform {
	switch s {
	case C1:
		return nil
	case C2:
		return []Transform{Rotate180}
	case C4:
		return []Transform{Rotate90, Rotate180, Rotate270}
	case D2Row:
		return []Transform{FlipRow}
	case D2Col:
		return []Transform{FlipCol}
	case D2Diag:
		return []Transform{FlipDiag}
	case D2Antidiag:
		return []Transform{FlipAntidiag}
	case D4Ortho:
		return []Transform{Rotate180, FlipRow, FlipCol}
	case D4Diag:
		return []Transform{Rotate180, FlipDiag, FlipAntidiag}
	case D8:
		return []Transform{Rotate90, Rotate180, Rotate270, FlipRow, FlipCol, FlipDiag, FlipAntidiag}
	default:
		return nil
	}
}

// requiresSquare reports whether this symmetry only makes sense on a
// square world (any symmetry mixing rows and columns, i.e. touching a
// diagonal or a 90-degree rotation).
func (s Symmetry) requiresSquare() bool {
	switch s {
	case C4, D2Diag, D2Antidiag, D4Diag, D8:
		return true
	default:
		return false
	}
}

// SearchOrder chooses how World's unknown-cell spine is built.
type SearchOrder int

const (
	RowFirst SearchOrder = iota
	ColumnFirst
	Diagonal
	FromVec
	Automatic
)

// ChooseStrategy picks the branch order the backtracker tries when it
// decides an undetermined cell.
type ChooseStrategy int

const (
	ChooseDeadFirst ChooseStrategy = iota
	ChooseAliveFirst
	ChooseRandom
	// ChooseSmart picks a random order at front-of-search cells (where
	// a live cell is needed to make progress) and tries Dead first
	// everywhere else.
	// subject to tuning: see SPEC_FULL.md's Open Questions.
	ChooseSmart
)

// SkipLevel is a supplemental, graded refinement of SkipSubperiod and
// SkipSubsymmetry: each level subsumes the ones before it. The two named
// booleans remain the primary surface; SkipLevel, when set above
// SkipTrivial, tightens the same filter stage further.
type SkipLevel int

const (
	SkipTrivial SkipLevel = iota
	SkipStable
	SkipSubperiodOscillator
	SkipSubperiodSpaceship
	SkipSymmetric
)

// KnownCell fixes the state of one cell of the search before it begins.
// T is the generation (0 <= T < Period); cells outside that range are
// rejected by Validate.
type KnownCell struct {
	X, Y, T int
	State   State
}

// Config collects every parameter of a search. It is built with
// chainable SetXxx methods, each returning a modified copy, in the
// style of original_source/lib/src/config.rs's builder.
type Config struct {
	Width, Height int
	Period        int
	Dx, Dy        int
	Transform     Transform
	Symmetry      Symmetry

	RuleString string
	// Rule is never serialized (see save.go): a parsed Rule's tables are
	// derived data, not configuration, and are rebuilt from RuleString
	// whenever one is needed.
	Rule Rule `json:"-"`

	SearchOrder    SearchOrder
	SearchOrderVec []SearchOrderCell
	DiagonalWidth  int

	KnownCells []KnownCell

	MaxCellCount int
	ReduceMax    bool

	SkipSubperiod   bool
	SkipSubsymmetry bool
	SkipLevel       SkipLevel

	Choose   ChooseStrategy
	Seed     int64
	Backjump bool

	// MaxStep bounds the number of propagate/decide/backtrack steps
	// Search will take before giving up and returning StatusSearching;
	// zero means unbounded.
	MaxStep int
}

// NewConfig returns a Config with the engine's defaults: a 1x1 still
// life search on Conway's Life, row-first order, Dead tried before
// Alive.
func NewConfig() Config {
	return Config{
		Width:    1,
		Height:   1,
		Period:   1,
		RuleString: "B3/S23",
		Choose:   ChooseDeadFirst,
	}
}

func (c Config) SetSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

func (c Config) SetPeriod(period int) Config {
	c.Period = period
	return c
}

func (c Config) SetTranslate(dx, dy int) Config {
	c.Dx, c.Dy = dx, dy
	return c
}

func (c Config) SetTransform(t Transform) Config {
	c.Transform = t
	return c
}

func (c Config) SetSymmetry(s Symmetry) Config {
	c.Symmetry = s
	return c
}

func (c Config) SetRuleString(rule string) Config {
	c.RuleString = rule
	c.Rule = nil
	return c
}

func (c Config) SetRule(rule Rule) Config {
	c.Rule = rule
	return c
}

func (c Config) SetSearchOrder(order SearchOrder) Config {
	c.SearchOrder = order
	return c
}

func (c Config) SetSearchOrderVec(vec []SearchOrderCell) Config {
	c.SearchOrder = FromVec
	c.SearchOrderVec = vec
	return c
}

func (c Config) SetDiagonalWidth(width int) Config {
	c.DiagonalWidth = width
	return c
}

func (c Config) SetKnownCells(cells []KnownCell) Config {
	c.KnownCells = cells
	return c
}

func (c Config) AddKnownCell(cell KnownCell) Config {
	c.KnownCells = append(append([]KnownCell(nil), c.KnownCells...), cell)
	return c
}

func (c Config) SetMaxCellCount(max int) Config {
	c.MaxCellCount = max
	return c
}

func (c Config) SetReduceMax(reduce bool) Config {
	c.ReduceMax = reduce
	return c
}

func (c Config) SetSkipSubperiod(skip bool) Config {
	c.SkipSubperiod = skip
	return c
}

func (c Config) SetSkipSubsymmetry(skip bool) Config {
	c.SkipSubsymmetry = skip
	return c
}

func (c Config) SetSkipLevel(level SkipLevel) Config {
	c.SkipLevel = level
	return c
}

func (c Config) SetChoose(choose ChooseStrategy) Config {
	c.Choose = choose
	return c
}

func (c Config) SetSeed(seed int64) Config {
	c.Seed = seed
	return c
}

func (c Config) SetBackjump(backjump bool) Config {
	c.Backjump = backjump
	return c
}

func (c Config) SetMaxStep(step int) Config {
	c.MaxStep = step
	return c
}

// resolveRule returns the Config's Rule, parsing RuleString if Rule was
// not set directly. A B0 rule (a dead cell with zero live neighbours is
// born) is rejected: it would make the background oscillate every
// generation instead of staying fixed at Dead, breaking the search's
// premise that a translation/transform maps one fixed background to
// another.
func (c Config) resolveRule() (Rule, error) {
	var rule Rule
	if c.Rule != nil {
		rule = c.Rule
	} else {
		if c.RuleString == "" {
			return nil, &ConfigError{Field: "Rule", Reason: "no rule or rule string given"}
		}
		r, err := ParseRule(c.RuleString)
		if err != nil {
			return nil, err
		}
		rule = r
	}
	if rule.HasB0() {
		return nil, &ConfigError{Field: "Rule", Reason: "B0 rules (dead cells with zero live neighbours are born) are rejected: the background would oscillate"}
	}
	return rule, nil
}

// effectiveBackjump applies the Open Question decision: backjumping is
// silently disabled for Generations rules and whenever MaxCellCount is
// set, regardless of what the caller asked for.
func (c Config) effectiveBackjump(rule Rule) bool {
	if !c.Backjump {
		return false
	}
	if rule.IsGenerations() {
		return false
	}
	if c.MaxCellCount != 0 {
		return false
	}
	return true
}

// Validate checks a Config for internal consistency before a World is
// built from it. It does not parse or validate the rule; that happens
// when NewWorld resolves it through ParseRule.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return &ConfigError{Field: "Size", Reason: "width and height must be positive"}
	}
	if c.Period <= 0 {
		return &ConfigError{Field: "Period", Reason: "period must be positive"}
	}
	if c.Symmetry.requiresSquare() && c.Width != c.Height {
		return &ConfigError{Field: "Symmetry", Reason: "this symmetry requires a square world"}
	}
	if c.SearchOrder == Diagonal && c.Width != c.Height {
		return &ConfigError{Field: "SearchOrder", Reason: "diagonal search order requires a square world"}
	}
	if c.SearchOrder == FromVec && len(c.SearchOrderVec) == 0 {
		return &ConfigError{Field: "SearchOrderVec", Reason: "explicit search order requires at least one cell"}
	}
	if c.DiagonalWidth < 0 {
		return &ConfigError{Field: "DiagonalWidth", Reason: "must not be negative"}
	}
	for _, k := range c.KnownCells {
		if k.X < 0 || k.X >= c.Width || k.Y < 0 || k.Y >= c.Height {
			return &ConfigError{Field: "KnownCells", Reason: "cell coordinates out of range"}
		}
		if k.T < 0 || k.T >= c.Period {
			return &ConfigError{Field: "KnownCells", Reason: "cell generation out of range"}
		}
	}
	if c.MaxCellCount < 0 {
		return &ConfigError{Field: "MaxCellCount", Reason: "must not be negative"}
	}
	return nil
}
