package bones

import (
	"gonum.org/v1/gonum/floats"
)

// CountLinks returns the number of links a chain ending in tip can have if
// up to requested links are desired. This is requested, unless tip has fewer
// than requested ancestors, in which case it is the number of ancestors.
func CountLinks[N comparable](h Hierarchy[N], tip N, requested int) int {
	n := tip
	for i := range max(requested, 0) {
		p, ok := h.Parent(n)
		if !ok {
			return i
		}
		n = p
	}
	return max(requested, 0)
}

// Chain is a linear chain of links, captured from a hierarchy in its rest
// pose.
//
// A chain of n links consists of n+1 nodes, ordered from the anchor (the
// topmost ancestor) to the tip. Link i is the node Nodes[i]; its segment
// points from Nodes[i] to Nodes[i+1]. Rotating a link swings its segment and
// everything below it.
//
// The zero value is an uninitialized chain. Call [Chain.Init] to capture a
// chain from a hierarchy.
type Chain[N comparable] struct {
	// Nodes holds the nodes of the chain from the anchor to the tip.
	Nodes []N
	// RestDirections holds, per link, the normalized direction of its
	// segment in the rest pose. It is the zero vector for segments of zero
	// length.
	RestDirections []Point
	// RestRotations holds, per link, the rotation of the link's node in the
	// rest pose.
	RestRotations []Rotation
	// Weights holds, per link, the curve parameter the link aims at. Weights
	// are the cumulative squared segment lengths, normalized so that the
	// last weight is 1.
	Weights []float64
}

// Len returns the number of links in the chain.
func (c *Chain[N]) Len() int {
	return max(len(c.Nodes)-1, 0)
}

// Anchor returns the topmost node of the chain. It panics if the chain hasn't
// been initialized.
func (c *Chain[N]) Anchor() N {
	return c.Nodes[0]
}

// Tip returns the bottommost node of the chain. It panics if the chain hasn't
// been initialized.
func (c *Chain[N]) Tip() N {
	return c.Nodes[len(c.Nodes)-1]
}

// Init captures the chain of up to requested links ending in tip, using the
// current pose of the hierarchy as the rest pose. If tip doesn't have enough
// ancestors, the chain is shortened accordingly. Init returns the number of
// links in the chain, which may be zero if tip has no parent.
//
// Init reuses the chain's slices where possible.
func (c *Chain[N]) Init(h Hierarchy[N], tip N, requested int) int {
	count := CountLinks(h, tip, requested)

	c.Nodes = resize(c.Nodes, count+1)
	c.RestDirections = resize(c.RestDirections, count)
	c.RestRotations = resize(c.RestRotations, count)
	c.Weights = resize(c.Weights, count)

	n := tip
	for i := count; i >= 0; i-- {
		c.Nodes[i] = n
		if i > 0 {
			n, _ = h.Parent(n)
		}
	}

	for i := range count {
		node := c.Nodes[i]
		c.RestRotations[i] = h.Rotation(node)
		offset := h.Position(c.Nodes[i+1]).Sub(h.Position(node))
		c.RestDirections[i], _ = normalize(offset)
		c.Weights[i] = offset.Dot(offset)
	}

	if count > 0 {
		total := floats.Sum(c.Weights)
		if total > 0 {
			floats.Scale(1/total, c.Weights)
		} else {
			// All segments have zero length. Spread the links evenly instead
			// of dividing by zero.
			for i := range c.Weights {
				c.Weights[i] = 1 / float64(count)
			}
		}
		floats.CumSum(c.Weights, c.Weights)
	}

	return count
}

// NeedsReinit reports whether the chain has to be captured again before it
// can be used with a chain of count links ending in tip. This is the case if
// the chain has never been initialized, if its length or tip differ, or if the
// hierarchy has been restructured since the chain was captured.
func (c *Chain[N]) NeedsReinit(h Hierarchy[N], tip N, count int) bool {
	if len(c.Nodes) == 0 || len(c.Nodes) != count+1 || c.Tip() != tip {
		return true
	}
	for i := 1; i < len(c.Nodes); i++ {
		if p, ok := h.Parent(c.Nodes[i]); !ok || p != c.Nodes[i-1] {
			return true
		}
	}
	return false
}

func resize[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]T, n)
}
