package service

import (
	"sort"
	"strings"

	"mycoordinator/domain"
)

// dependencyGraph is the adjacency view built from one registry snapshot. Nodes reference their
// dependencies by name only.
type dependencyGraph struct {
	nodes map[string]*domain.GraphNode
	names []string // sorted
	edges []domain.GraphEdge
	// blocking holds the distinct required hard dependency names of each node, sorted, registered or not.
	blocking map[string][]string
}

// newDependencyGraph groups active instances by service name. Instances are visited in (name, id) order
// so edge order is stable between rebuilds.
func newDependencyGraph(instances []domain.ServiceInstance) *dependencyGraph {
	sorted := append([]domain.ServiceInstance(nil), instances...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID < sorted[j].ID
	})

	g := &dependencyGraph{
		nodes:    make(map[string]*domain.GraphNode),
		edges:    []domain.GraphEdge{},
		blocking: make(map[string][]string),
	}
	seenBlocking := make(map[string]map[string]struct{})
	for _, inst := range sorted {
		if !inst.IsActive {
			continue
		}
		node, ok := g.nodes[inst.Name]
		if !ok {
			node = &domain.GraphNode{Name: inst.Name, InstanceIDs: []string{}, Dependencies: []domain.DependencyRef{}}
			g.nodes[inst.Name] = node
			g.names = append(g.names, inst.Name)
			seenBlocking[inst.Name] = make(map[string]struct{})
		}
		node.InstanceIDs = append(node.InstanceIDs, inst.ID)
		for _, dep := range inst.Dependencies {
			node.Dependencies = append(node.Dependencies, dep)
			g.edges = append(g.edges, domain.GraphEdge{
				From:            inst.Name,
				To:              dep.Name,
				Kind:            dep.Kind,
				Required:        dep.Required,
				TimeoutMs:       dep.TimeoutMs,
				HealthCheckPath: dep.HealthCheckPath,
			})
			if !dep.IsBlocking() {
				continue
			}
			if _, dup := seenBlocking[inst.Name][dep.Name]; dup {
				continue
			}
			seenBlocking[inst.Name][dep.Name] = struct{}{}
			g.blocking[inst.Name] = append(g.blocking[inst.Name], dep.Name)
		}
	}
	for name := range g.blocking {
		sort.Strings(g.blocking[name])
	}
	return g
}

func (g *dependencyGraph) has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// tiers assigns tier(S) = 0 without registered blocking dependencies, else 1 + max tier of them.
// A node reached again while still on the recursion path contributes tier 0 and is flagged cyclic.
func (g *dependencyGraph) tiers() (map[string]int, []string) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(g.names))
	tiers := make(map[string]int, len(g.names))
	cyclic := make(map[string]struct{})

	var visit func(name string) int
	visit = func(name string) int {
		switch state[name] {
		case done:
			return tiers[name]
		case visiting:
			cyclic[name] = struct{}{}
			return 0
		}
		state[name] = visiting
		tier := 0
		for _, dep := range g.blocking[name] {
			if !g.has(dep) {
				continue
			}
			if t := visit(dep) + 1; t > tier {
				tier = t
			}
		}
		state[name] = done
		tiers[name] = tier
		return tier
	}

	for _, name := range g.names {
		visit(name)
	}

	flagged := make([]string, 0, len(cyclic))
	for name := range cyclic {
		flagged = append(flagged, name)
	}
	sort.Strings(flagged)
	return tiers, flagged
}

// cycles walks blocking edges depth-first keeping the recursion stack. Each back edge yields the stack
// slice from its target, rotated to start at the smallest name; duplicates are dropped.
func (g *dependencyGraph) cycles() [][]string {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)
	var stack []string
	found := make(map[string][]string)

	var visit func(name string)
	visit = func(name string) {
		visiting[name] = true
		stack = append(stack, name)
		for _, dep := range g.blocking[name] {
			if !g.has(dep) {
				continue
			}
			if visiting[dep] {
				cycle := normalizeCycle(stackFrom(stack, dep))
				found[strings.Join(cycle, "\x00")] = cycle
				continue
			}
			if !visited[dep] {
				visit(dep)
			}
		}
		stack = stack[:len(stack)-1]
		delete(visiting, name)
		visited[name] = true
	}

	for _, name := range g.names {
		if !visited[name] {
			visit(name)
		}
	}

	keys := make([]string, 0, len(found))
	for k := range found {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([][]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, found[k])
	}
	return out
}

func stackFrom(stack []string, name string) []string {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == name {
			return append([]string(nil), stack[i:]...)
		}
	}
	return nil
}

func normalizeCycle(cycle []string) []string {
	if len(cycle) == 0 {
		return cycle
	}
	minIdx := 0
	for i, n := range cycle {
		if n < cycle[minIdx] {
			minIdx = i
		}
	}
	return append(append([]string(nil), cycle[minIdx:]...), cycle[:minIdx]...)
}

// waves runs layered Kahn over blocking edges. In-degree counts every distinct blocking dependency, so a
// dependency that never registered is never released. When no service is free the remainder forms one
// degraded wave and the loop stops.
func (g *dependencyGraph) waves() []domain.StartupWave {
	inDegree := make(map[string]int, len(g.names))
	dependents := make(map[string][]string)
	for _, name := range g.names {
		inDegree[name] = len(g.blocking[name])
		for _, dep := range g.blocking[name] {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	remaining := make(map[string]struct{}, len(g.names))
	for _, name := range g.names {
		remaining[name] = struct{}{}
	}

	var waves []domain.StartupWave
	for len(remaining) > 0 {
		var free []string
		for _, name := range g.names {
			if _, ok := remaining[name]; ok && inDegree[name] == 0 {
				free = append(free, name)
			}
		}
		if len(free) == 0 {
			rest := make([]string, 0, len(remaining))
			for _, name := range g.names {
				if _, ok := remaining[name]; ok {
					rest = append(rest, name)
				}
			}
			w := g.wave(len(waves), rest)
			w.Degraded = true
			waves = append(waves, w)
			break
		}
		waves = append(waves, g.wave(len(waves), free))
		for _, name := range free {
			delete(remaining, name)
			for _, dependent := range dependents[name] {
				inDegree[dependent]--
			}
		}
	}
	return waves
}

func (g *dependencyGraph) wave(number int, services []string) domain.StartupWave {
	seen := make(map[string]struct{})
	deps := []string{}
	for _, s := range services {
		for _, d := range g.blocking[s] {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			deps = append(deps, d)
		}
	}
	sort.Strings(deps)
	return domain.StartupWave{
		Number:           number,
		Services:         services,
		HardDependencies: deps,
		Parallelizable:   len(services) > 1,
	}
}

// missing lists every dependency name (any kind) that no active instance provides.
func (g *dependencyGraph) missing() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range g.edges {
		if g.has(e.To) {
			continue
		}
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}
	sort.Strings(out)
	return out
}
