package aoc2018day03

import (
	"math"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/grid"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/utils"
)

const (
	fabricSize = 1000
	maxCells   = 1 << 24
)

// Claim is a rectangle of fabric. Right and Bottom are exclusive.
type Claim struct {
	ID     int
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Intersects reports whether c and o share at least one square inch,
// comparing the closed ranges of covered columns and rows.
func (c Claim) Intersects(o Claim) bool {
	return c.Left <= o.Right-1 && o.Left <= c.Right-1 &&
		c.Top <= o.Bottom-1 && o.Top <= c.Bottom-1
}

// ParseClaim parses "#id @ left,top: widthxheight".
func ParseClaim(line string) (Claim, error) {
	line = strings.TrimSpace(line)

	rest, ok := strings.CutPrefix(line, "#")
	if !ok {
		return Claim{}, puzzle.Invalidf("claim %q does not start with '#'", line)
	}
	idStr, geometry, ok := strings.Cut(rest, " @ ")
	if !ok {
		return Claim{}, puzzle.Invalidf("claim %q has no ' @ '", line)
	}
	position, size, ok := strings.Cut(geometry, ": ")
	if !ok {
		return Claim{}, puzzle.Invalidf("claim %q has no ': '", line)
	}
	leftStr, topStr, ok := strings.Cut(position, ",")
	if !ok {
		return Claim{}, puzzle.Invalidf("claim %q has no ',' in its position", line)
	}
	widthStr, heightStr, ok := strings.Cut(size, "x")
	if !ok {
		return Claim{}, puzzle.Invalidf("claim %q has no 'x' in its size", line)
	}

	var fields [5]int
	for i, s := range []string{idStr, leftStr, topStr, widthStr, heightStr} {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Claim{}, puzzle.Invalidf("claim %q: %q is not a non-negative number", line, s)
		}
		fields[i] = n
	}

	id, left, top, width, height := fields[0], fields[1], fields[2], fields[3], fields[4]
	if width == 0 || height == 0 {
		return Claim{}, puzzle.Invalidf("claim %q has invalid dimensions %dx%d", line, width, height)
	}
	if left > math.MaxInt-width || top > math.MaxInt-height {
		return Claim{}, puzzle.Invalidf("claim %q overflows", line)
	}

	return Claim{
		ID:     id,
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}, nil
}

func parseClaims(input string) ([]Claim, error) {
	var claims []Claim
	for _, line := range utils.Lines(input) {
		claim, err := ParseClaim(line)
		if err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}
	return claims, nil
}

// Part1 counts square inches covered by two or more claims.
func Part1(input string) (int, error) {
	claims, err := parseClaims(input)
	if err != nil {
		return 0, err
	}

	fabric, err := stamp(claims)
	if err != nil {
		return 0, err
	}

	overlapping := 0
	for count := range fabric.Values() {
		if count > 1 {
			overlapping++
		}
	}
	return overlapping, nil
}

// Part2Grid returns the id of the only claim whose squares are all covered
// exactly once, found by re-scanning the stamped fabric.
func Part2Grid(input string) (int, error) {
	claims, err := parseClaims(input)
	if err != nil {
		return 0, err
	}

	uncontested, err := uncontestedByGrid(claims)
	if err != nil {
		return 0, err
	}
	return single(uncontested)
}

// Part2Geometric returns the same claim as Part2Grid by testing every pair
// of claims for intersection.
func Part2Geometric(input string) (int, error) {
	claims, err := parseClaims(input)
	if err != nil {
		return 0, err
	}

	return single(uncontestedByGeometry(claims))
}

func stamp(claims []Claim) (*grid.Grid[uint16], error) {
	fabric := grid.New[uint16](fabricSize, fabricSize)

	for _, c := range claims {
		width, height := fabric.Dims()
		if c.Right > width || c.Bottom > height {
			width, height = max(width, c.Right), max(height, c.Bottom)
			if width > maxCells/height {
				return nil, puzzle.Invalidf("claim #%d extends the fabric beyond %d square inches", c.ID, maxCells)
			}
			fabric.Grow(width, height)
		}

		for y := c.Top; y < c.Bottom; y++ {
			for x := c.Left; x < c.Right; x++ {
				cell := fabric.Ptr(x, y)
				if *cell == math.MaxUint16 {
					return nil, puzzle.Invalidf("too many claims cover (%d, %d)", x, y)
				}
				*cell++
			}
		}
	}

	return fabric, nil
}

func uncontestedByGrid(claims []Claim) ([]Claim, error) {
	fabric, err := stamp(claims)
	if err != nil {
		return nil, err
	}

	var uncontested []Claim
	for _, c := range claims {
		if coveredOnce(fabric, c) {
			uncontested = append(uncontested, c)
		}
	}
	return uncontested, nil
}

func coveredOnce(fabric *grid.Grid[uint16], c Claim) bool {
	for y := c.Top; y < c.Bottom; y++ {
		for x := c.Left; x < c.Right; x++ {
			if fabric.At(x, y) > 1 {
				return false
			}
		}
	}
	return true
}

func uncontestedByGeometry(claims []Claim) []Claim {
	contested := make([]bool, len(claims))
	for i := range claims {
		for j := i + 1; j < len(claims); j++ {
			if claims[i].Intersects(claims[j]) {
				contested[i] = true
				contested[j] = true
			}
		}
	}

	var uncontested []Claim
	for i, c := range claims {
		if !contested[i] {
			uncontested = append(uncontested, c)
		}
	}
	return uncontested
}

func single(uncontested []Claim) (int, error) {
	if len(uncontested) != 1 {
		ids := make([]string, len(uncontested))
		for i, c := range uncontested {
			ids[i] = "#" + strconv.Itoa(c.ID)
		}
		return 0, puzzle.Invalidf("expected a single uncontested claim, got %d [%s]", len(uncontested), strings.Join(ids, " "))
	}
	return uncontested[0].ID, nil
}
