package anchor

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/anchorlayout/engine/dom"
)

// anchorID identifies an anchor across elements.
type anchorID struct {
	element dom.Key
	name    Name
}

// linkGraph holds the back references of links. For every anchor it keeps
// the set of anchors linking to it, in insertion order. Outgoing edges are
// the link targets stored with the anchors.
type linkGraph struct {
	incoming map[anchorID]*linkedhashset.Set
}

func newLinkGraph() *linkGraph {
	return &linkGraph{incoming: make(map[anchorID]*linkedhashset.Set)}
}

func (g *linkGraph) add(from, to anchorID) {
	set, ok := g.incoming[to]
	if !ok {
		set = linkedhashset.New()
		g.incoming[to] = set
	}
	set.Add(from)
}

func (g *linkGraph) remove(from, to anchorID) {
	if set, ok := g.incoming[to]; ok {
		set.Remove(from)
		if set.Empty() {
			delete(g.incoming, to)
		}
	}
}

// linksTo returns the anchors linking to an anchor.
func (g *linkGraph) linksTo(to anchorID) []anchorID {
	set, ok := g.incoming[to]
	if !ok {
		return nil
	}
	ids := make([]anchorID, 0, set.Size())
	for _, v := range set.Values() {
		ids = append(ids, v.(anchorID))
	}
	return ids
}

// count returns the number of links to an anchor.
func (g *linkGraph) count(to anchorID) int {
	if set, ok := g.incoming[to]; ok {
		return set.Size()
	}
	return 0
}
