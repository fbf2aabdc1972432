package gridgraph

import (
	"fmt"
	"iter"
	"math/bits"
)

const (
	methodLink   = "Link"
	methodUnlink = "Unlink"
)

// Link opens a passage between the adjacent included cells a and b.
// Linking an already linked pair is a no-op. On error the grid is unchanged:
//
//   - ErrInvalidCell if a or b is not an included cell,
//   - ErrNonAdjacentLink if b is not a neighbour of a (including a == b).
//
// Complexity: O(d) for d = degree bound.
func (g *Grid) Link(a, b Cell) error {
	sa, sb, err := g.slots(methodLink, a, b)
	if err != nil {
		return err
	}
	if g.links[a]&(1<<sa) != 0 {
		return nil
	}
	g.links[a] |= 1 << sa
	g.links[b] |= 1 << sb
	g.linkCount++
	return nil
}

// Unlink closes the passage between a and b. Unlinking cells that are not
// linked is a no-op. Errors match Link.
func (g *Grid) Unlink(a, b Cell) error {
	sa, sb, err := g.slots(methodUnlink, a, b)
	if err != nil {
		return err
	}
	if g.links[a]&(1<<sa) == 0 {
		return nil
	}
	g.links[a] &^= 1 << sa
	g.links[b] &^= 1 << sb
	g.linkCount--
	return nil
}

// slots validates a link request and returns the slot of b at a and of a at b.
func (g *Grid) slots(method string, a, b Cell) (int, int, error) {
	if !g.Contains(a) {
		return 0, 0, fmt.Errorf("%s: cell %d: %w", method, a, ErrInvalidCell)
	}
	if !g.Contains(b) {
		return 0, 0, fmt.Errorf("%s: cell %d: %w", method, b, ErrInvalidCell)
	}
	sa := g.slotOf(a, b)
	if sa < 0 {
		return 0, 0, fmt.Errorf("%s: %s and %s: %w", method, g.coords[a], g.coords[b], ErrNonAdjacentLink)
	}
	// adjacency is symmetric by construction
	return sa, g.slotOf(b, a), nil
}

// IsLinked reports whether a passage joins a and b.
// Complexity: O(d).
func (g *Grid) IsLinked(a, b Cell) bool {
	i := g.slotOf(a, b)
	return i >= 0 && g.links[a]&(1<<i) != 0
}

// Links returns the cells linked to c, in neighbour order.
func (g *Grid) Links(c Cell) []Cell {
	return g.AppendLinks(nil, c)
}

// AppendLinks is Links appending into dst.
func (g *Grid) AppendLinks(dst []Cell, c Cell) []Cell {
	if !g.Contains(c) {
		return dst
	}
	set := g.links[c]
	for set != 0 {
		i := bits.TrailingZeros32(set)
		dst = append(dst, g.nbrs[g.start[c]+i])
		set &= set - 1
	}
	return dst
}

// Degree returns the number of links of c; 0 for cells outside the grid.
// Complexity: O(1).
func (g *Grid) Degree(c Cell) int {
	if !g.Contains(c) {
		return 0
	}
	return bits.OnesCount32(g.links[c])
}

// LinkCount returns the number of links in the grid.
func (g *Grid) LinkCount() int { return g.linkCount }

// Edges yields every link once as (a, b) with a < b, ordered by a.
func (g *Grid) Edges() iter.Seq2[Cell, Cell] {
	return func(yield func(Cell, Cell) bool) {
		for a := range g.links {
			set := g.links[a]
			for set != 0 {
				i := bits.TrailingZeros32(set)
				set &= set - 1
				b := g.nbrs[g.start[a]+i]
				if Cell(a) < b && !yield(Cell(a), b) {
					return
				}
			}
		}
	}
}
