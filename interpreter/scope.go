package interpreter

// arena holds every variable cell of one function activation.
type arena struct {
	cells []int64
}

// scope is the view of an arena from one block. Child scopes copy the name
// table but share the arena, so assigning to a name the parent can see
// updates the parent's cell, while names first bound in the child stay local
// to it.
type scope struct {
	arena *arena
	names map[string]int
}

// newScope starts an activation with params bound to args. A repeated
// parameter name is bound to the later argument.
func newScope(params []string, args []int64) *scope {
	s := &scope{
		arena: &arena{cells: make([]int64, 0, len(params))},
		names: make(map[string]int, len(params)),
	}
	for i, name := range params {
		s.set(name, args[i])
	}
	return s
}

func (s *scope) child() *scope {
	names := make(map[string]int, len(s.names))
	for name, idx := range s.names {
		names[name] = idx
	}
	return &scope{arena: s.arena, names: names}
}

func (s *scope) get(name string) (int64, bool) {
	idx, ok := s.names[name]
	if !ok {
		return 0, false
	}
	return s.arena.cells[idx], true
}

func (s *scope) set(name string, v int64) {
	if idx, ok := s.names[name]; ok {
		s.arena.cells[idx] = v
		return
	}
	s.names[name] = len(s.arena.cells)
	s.arena.cells = append(s.arena.cells, v)
}
