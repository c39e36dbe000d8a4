// Package spatial holds the quadrant tree used to find collision and
// visibility candidates. A tree is built from scratch every frame and is
// not safe for concurrent use.
package spatial

import (
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Item is one entity snapshot stored in the tree. Anchor decides which node
// holds the item; Bounds and Rotated are what queries are tested against.
type Item struct {
	Anchor  dmath.Vec2
	Entity  donburi.Entity
	Bounds  gamemath.Polygon
	Rotated bool
}

// SkipFunc lets a query ignore stored entities. It is called once per
// candidate before the narrow-phase test.
type SkipFunc func(e donburi.Entity) bool

// QuadTree is a node of a region quadtree. A node holds up to capacity
// items; the next insert splits it into four quadrants. Items stored before
// the split stay in the parent.
type QuadTree struct {
	boundary gamemath.Rect
	capacity int
	depth    int
	maxDepth int

	items   []Item
	divided bool

	topLeft     *QuadTree
	topRight    *QuadTree
	bottomLeft  *QuadTree
	bottomRight *QuadTree
}

// DefaultMaxDepth bounds trees made with New. Past it, a full node keeps
// growing instead of splitting, so coincident anchors cannot recurse forever.
const DefaultMaxDepth = 10

// New creates an empty tree covering boundary, limited to DefaultMaxDepth.
func New(boundary gamemath.Rect, capacity int) *QuadTree {
	return NewWithMaxDepth(boundary, capacity, DefaultMaxDepth)
}

// NewWithMaxDepth creates an empty tree whose nodes stop subdividing at
// maxDepth (the root is depth 0). A maxDepth of 0 means unbounded.
func NewWithMaxDepth(boundary gamemath.Rect, capacity, maxDepth int) *QuadTree {
	if capacity < 1 {
		capacity = 1
	}
	return newNode(boundary, capacity, 0, maxDepth)
}

func newNode(boundary gamemath.Rect, capacity, depth, maxDepth int) *QuadTree {
	return &QuadTree{
		boundary: boundary,
		capacity: capacity,
		depth:    depth,
		maxDepth: maxDepth,
		items:    make([]Item, 0, capacity),
	}
}

// Boundary returns the region covered by this node.
func (qt *QuadTree) Boundary() gamemath.Rect {
	return qt.boundary
}

// Insert stores it in the tree. It returns false when the anchor lies
// outside the node boundary, in which case the item is dropped.
func (qt *QuadTree) Insert(it Item) bool {
	if !qt.boundary.Contains(it.Anchor) {
		return false
	}

	if len(qt.items) < qt.capacity || qt.atDepthLimit() {
		qt.items = append(qt.items, it)
		return true
	}

	if !qt.divided {
		qt.subdivide()
	}

	for _, child := range qt.children() {
		if child.Insert(it) {
			return true
		}
	}
	return false
}

func (qt *QuadTree) atDepthLimit() bool {
	return qt.maxDepth > 0 && qt.depth >= qt.maxDepth
}

func (qt *QuadTree) subdivide() {
	q := qt.boundary.Quadrants()
	qt.topLeft = newNode(q[0], qt.capacity, qt.depth+1, qt.maxDepth)
	qt.topRight = newNode(q[1], qt.capacity, qt.depth+1, qt.maxDepth)
	qt.bottomLeft = newNode(q[2], qt.capacity, qt.depth+1, qt.maxDepth)
	qt.bottomRight = newNode(q[3], qt.capacity, qt.depth+1, qt.maxDepth)
	qt.divided = true
}

func (qt *QuadTree) children() [4]*QuadTree {
	return [4]*QuadTree{qt.topLeft, qt.topRight, qt.bottomLeft, qt.bottomRight}
}

// Query returns every stored entity whose bounds overlap region. The
// entity equal to exclude is never returned, nor is any entity for which
// skip reports true; pass donburi.Null and nil to disable either filter.
// Results follow node order: a node's own items, then its quadrants.
func (qt *QuadTree) Query(region gamemath.Polygon, rotated bool, exclude donburi.Entity, skip SkipFunc) []donburi.Entity {
	return qt.query(region, rotated, exclude, skip, nil)
}

func (qt *QuadTree) query(region gamemath.Polygon, rotated bool, exclude donburi.Entity, skip SkipFunc, found []donburi.Entity) []donburi.Entity {
	// Node bounds are always axis-aligned.
	if !gamemath.Overlap(region, rotated, qt.boundary.Polygon(), false) {
		return found
	}

	for _, it := range qt.items {
		if it.Entity == exclude {
			continue
		}
		if skip != nil && skip(it.Entity) {
			continue
		}
		if gamemath.Overlap(region, rotated, it.Bounds, it.Rotated) {
			found = append(found, it.Entity)
		}
	}

	if qt.divided {
		for _, child := range qt.children() {
			found = child.query(region, rotated, exclude, skip, found)
		}
	}
	return found
}

// Len returns the number of items stored in the tree.
func (qt *QuadTree) Len() int {
	n := len(qt.items)
	if qt.divided {
		for _, child := range qt.children() {
			n += child.Len()
		}
	}
	return n
}

// Depth returns the depth of the deepest node, the root being 0.
func (qt *QuadTree) Depth() int {
	if !qt.divided {
		return qt.depth
	}
	d := qt.depth
	for _, child := range qt.children() {
		d = max(d, child.Depth())
	}
	return d
}

// Nodes returns the number of nodes in the tree.
func (qt *QuadTree) Nodes() int {
	n := 1
	if qt.divided {
		for _, child := range qt.children() {
			n += child.Nodes()
		}
	}
	return n
}
