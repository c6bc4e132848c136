package anchor

// Link cycles are not resolved by the engine. An element linking, directly
// or indirectly, to itself may keep the layout from settling. The functions
// in this file are diagnostics only.

// targets returns the elements linked to by el, without duplicates and
// excluding el itself.
func (el *Element) targets() []*Element {
	var r []*Element
	for _, a := range el.anchors {
		if a.target == nil || a.target.element == el {
			continue
		}
		dup := false
		for _, t := range r {
			dup = dup || t == a.target.element
		}
		if !dup {
			r = append(r, a.target.element)
		}
	}
	return r
}

// closesCycle is true if from is reachable from to.
func (e *Engine) closesCycle(from, to *Element) bool {
	if from == to {
		return false
	}
	seen := map[*Element]bool{to: true}
	stack := []*Element{to}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range el.targets() {
			if t == from {
				return true
			}
			if !seen[t] {
				seen[t] = true
				stack = append(stack, t)
			}
		}
	}
	return false
}

// Cycles returns the groups of elements which depend on each other through
// their links (strongly connected components with more than one element).
// Links of an element to itself do not count, as they are never resolved.
func (e *Engine) Cycles() [][]*Element {
	index := 0
	indices := make(map[*Element]int)
	lowlink := make(map[*Element]int)
	onStack := make(map[*Element]bool)
	var stack []*Element
	var cycles [][]*Element
	var connect func(*Element)
	connect = func(v *Element) {
		indices[v], lowlink[v] = index, index
		index++
		stack = append(stack, v)
		onStack[v] = true
		for _, w := range v.targets() {
			if _, visited := indices[w]; !visited {
				connect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && indices[w] < lowlink[v] {
				lowlink[v] = indices[w]
			}
		}
		if lowlink[v] == indices[v] {
			var scc []*Element
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			if len(scc) > 1 {
				cycles = append(cycles, scc)
			}
		}
	}
	for _, el := range e.Elements() {
		if _, visited := indices[el]; !visited {
			connect(el)
		}
	}
	return cycles
}
