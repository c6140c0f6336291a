package compiler

// Symbol is a declared name together with its resolved Type and its
// eventual stack-frame offset. Offset is zero until code generation
// assigns a byte offset from %rbp: negative for locals, positive for
// parameters spilled beyond the sixth. A Symbol with IsGlobal set is
// addressed by label instead.
type Symbol struct {
	Name     string
	Type     Type
	Offset   int
	IsGlobal bool // file-scope variables and every function: addressed by label rather than %rbp offset
	Defined  bool // functions only: a body has been seen, not just a prototype
}

// Scope is an ordered sequence of Symbols plus a link to the enclosing
// scope (nil at the outermost scope). Declaration order is preserved: a
// function's parameters stay a prefix of its body scope, and globals are
// emitted in declaration order. find returns the first match in that order.
type Scope struct {
	symbols   []*Symbol
	enclosing *Scope
}

func newScope(enclosing *Scope) *Scope {
	return &Scope{enclosing: enclosing}
}

// find searches this scope only, not any enclosing one.
func (s *Scope) find(name string) *Symbol {
	for _, sym := range s.symbols {
		if sym.Name == name {
			return sym
		}
	}
	return nil
}

// lookup searches this scope and then walks outward through enclosing
// scopes until the outermost scope is exhausted.
func (s *Scope) lookup(name string) *Symbol {
	for sc := s; sc != nil; sc = sc.enclosing {
		if sym := sc.find(name); sym != nil {
			return sym
		}
	}
	return nil
}

// insert appends sym to this scope. Insertion is append-only; replacing an
// existing binding (e.g. a function redefinition) is done by the Checker
// via remove + insert, which keeps Scope itself a dumb, linear container.
func (s *Scope) insert(sym *Symbol) {
	s.symbols = append(s.symbols, sym)
}

// remove deletes the first Symbol named name from this scope, by linear
// scan, if present.
func (s *Scope) remove(name string) {
	for i, sym := range s.symbols {
		if sym.Name == name {
			s.symbols = append(s.symbols[:i], s.symbols[i+1:]...)
			return
		}
	}
}
