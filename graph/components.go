package graph

// WeakComponents partitions the nodes into weakly connected components,
// ignoring edge direction. Components are ordered by their first node in
// document order; members keep document order.
func (g *Graph) WeakComponents() [][]string {
	n := len(g.nodes)
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	for _, e := range g.edges {
		a, b := find(g.index[e.Source]), find(g.index[e.Target])
		if a == b {
			continue
		}
		if size[a] < size[b] {
			a, b = b, a
		}
		parent[b] = a
		size[a] += size[b]
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = find(i)
	}
	return g.partition(labels)
}

// StrongComponents partitions the nodes into strongly connected components
// using an iterative Tarjan traversal, so deep chains cannot overflow the
// goroutine stack. Ordering matches WeakComponents.
func (g *Graph) StrongComponents() [][]string {
	n := len(g.nodes)
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	labels := make([]int, n)
	for i := range index {
		index[i] = -1
	}

	type frame struct {
		v    int // node position
		next int // next out-edge to explore
	}

	var stack []int
	counter := 0
	components := 0

	visit := func(v int) {
		index[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true
	}

	for root := 0; root < n; root++ {
		if index[root] >= 0 {
			continue
		}
		visit(root)
		calls := []frame{{v: root}}

		for len(calls) > 0 {
			top := &calls[len(calls)-1]
			v := top.v

			if top.next < len(g.out[v]) {
				w := g.index[g.edges[g.out[v][top.next]].Target]
				top.next++
				if index[w] < 0 {
					visit(w)
					calls = append(calls, frame{v: w})
				} else if onStack[w] && index[w] < lowlink[v] {
					// Successor w is in stack and hence in current SCC
					lowlink[v] = index[w]
				}
				continue
			}

			// All successors explored; if v is a root, pop its component
			if lowlink[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					labels[w] = components
					if w == v {
						break
					}
				}
				components++
			}

			calls = calls[:len(calls)-1]
			if len(calls) > 0 {
				parent := calls[len(calls)-1].v
				if lowlink[v] < lowlink[parent] {
					lowlink[parent] = lowlink[v]
				}
			}
		}
	}

	return g.partition(labels)
}

// partition groups node ids by label, in first-appearance order
func (g *Graph) partition(labels []int) [][]string {
	slot := make(map[int]int)
	var parts [][]string
	for i, label := range labels {
		s, ok := slot[label]
		if !ok {
			s = len(parts)
			slot[label] = s
			parts = append(parts, nil)
		}
		parts[s] = append(parts[s], g.nodes[i].ID)
	}
	return parts
}

// ComponentSizes returns the size of each component, in component order
func ComponentSizes(parts [][]string) []int {
	sizes := make([]int, len(parts))
	for i, p := range parts {
		sizes[i] = len(p)
	}
	return sizes
}

// LargestComponent returns the size of the largest component, 0 for none
func LargestComponent(parts [][]string) int {
	largest := 0
	for _, p := range parts {
		if len(p) > largest {
			largest = len(p)
		}
	}
	return largest
}
