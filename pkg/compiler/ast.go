package compiler

import "fmt"

//  Expression nodes

// exprMeta is the transient codegen state every Expression node carries in
// addition to its syntactic shape: the type the checker computed for it,
// and the register binding/spill offset the code generator assigns while
// walking the tree. Folding these into one embedded struct keeps the
// bookkeeping next to the node instead of in a side table keyed by node
// identity.
type exprMeta struct {
	Type   Type
	reg    Register // noRegister until the code generator binds one
	offset int      // stack-slot offset once spilled; meaningless until reg == noRegister again
}

func (m *exprMeta) astType() Type          { return m.Type }
func (m *exprMeta) register() Register     { return m.reg }
func (m *exprMeta) setRegister(r Register) { m.reg = r }

// newExprMeta builds the initial state for a freshly-parsed node: typed,
// and explicitly unbound. Go's zero value for Register is 0 (RAX), not
// noRegister, so every constructor below goes through this rather than
// relying on struct-literal zero values.
func newExprMeta(t Type) exprMeta {
	return exprMeta{Type: t, reg: noRegister}
}

// Expr is implemented by every node that produces a value. meta exposes
// the embedded exprMeta so the register allocator (registers.go) and code
// generator can manipulate binding state generically without a type switch
// for every node kind.
type Expr interface {
	exprNode()
	String() string
	meta() *exprMeta
}

// Number is a compile-time integer constant (also used for folded
// character literals, which the lexer already reduces to their ASCII
// value).
type Number struct {
	exprMeta
	Value int64
}

func (*Number) exprNode()         {}
func (n *Number) meta() *exprMeta { return &n.exprMeta }
func (n *Number) String() string  { return fmt.Sprintf("%d", n.Value) }

// StringLit is a string literal; its Type is always char*.
type StringLit struct {
	exprMeta
	Value string
	Label string // assigned by the code generator the first time it is emitted
}

func (*StringLit) exprNode()         {}
func (s *StringLit) meta() *exprMeta { return &s.exprMeta }
func (s *StringLit) String() string  { return fmt.Sprintf("%q", s.Value) }

// Identifier is a read (or lvalue reference) to a named Symbol.
type Identifier struct {
	exprMeta
	Sym *Symbol
}

func (*Identifier) exprNode()         {}
func (i *Identifier) meta() *exprMeta { return &i.exprMeta }
func (i *Identifier) String() string  { return i.Sym.Name }

// Call is a function invocation name(args).
type Call struct {
	exprMeta
	Callee *Symbol
	Args   []Expr
}

func (*Call) exprNode()         {}
func (c *Call) meta() *exprMeta { return &c.exprMeta }
func (c *Call) String() string  { return fmt.Sprintf("%s(...)", c.Callee.Name) }

// BinOp identifies a binary/unary operator by the token Kind that spelled
// it, so one generic node shape covers the whole operator family rather
// than one Go type per operator.
type BinOp = Kind

// Binary covers the arithmetic, relational, and equality operators:
// + - * / % < > <= >= == !=.
type Binary struct {
	exprMeta
	Op    BinOp
	Left  Expr
	Right Expr
}

func (*Binary) exprNode()         {}
func (b *Binary) meta() *exprMeta { return &b.exprMeta }
func (b *Binary) String() string  { return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right) }

// Logical covers && and ||, kept distinct from Binary so the code
// generator can special-case short-circuit evaluation.
type Logical struct {
	exprMeta
	Op    BinOp
	Left  Expr
	Right Expr
}

func (*Logical) exprNode()         {}
func (l *Logical) meta() *exprMeta { return &l.exprMeta }
func (l *Logical) String() string  { return fmt.Sprintf("(%s %s %s)", l.Left, l.Op, l.Right) }

// Not is unary !.
type Not struct {
	exprMeta
	Operand Expr
}

func (*Not) exprNode()         {}
func (n *Not) meta() *exprMeta { return &n.exprMeta }
func (n *Not) String() string  { return fmt.Sprintf("(!%s)", n.Operand) }

// Negate is unary -.
type Negate struct {
	exprMeta
	Operand Expr
}

func (*Negate) exprNode()         {}
func (n *Negate) meta() *exprMeta { return &n.exprMeta }
func (n *Negate) String() string  { return fmt.Sprintf("(-%s)", n.Operand) }

// Dereference is unary *.
type Dereference struct {
	exprMeta
	Operand Expr
}

func (*Dereference) exprNode()         {}
func (d *Dereference) meta() *exprMeta { return &d.exprMeta }
func (d *Dereference) String() string  { return fmt.Sprintf("(*%s)", d.Operand) }

// Address is unary &.
type Address struct {
	exprMeta
	Operand Expr
}

func (*Address) exprNode()         {}
func (a *Address) meta() *exprMeta { return &a.exprMeta }
func (a *Address) String() string  { return fmt.Sprintf("(&%s)", a.Operand) }

// SizeofExpr is sizeof applied to a predicate-typed expression; its own
// Type is always long.
type SizeofExpr struct {
	exprMeta
	Operand Expr
}

func (*SizeofExpr) exprNode()         {}
func (s *SizeofExpr) meta() *exprMeta { return &s.exprMeta }
func (s *SizeofExpr) String() string  { return fmt.Sprintf("sizeof(%s)", s.Operand) }

// SizeofType is sizeof applied to a bare type name, e.g. sizeof(int*).
type SizeofType struct {
	exprMeta
	Operand Type
}

func (*SizeofType) exprNode()         {}
func (s *SizeofType) meta() *exprMeta { return &s.exprMeta }
func (s *SizeofType) String() string  { return fmt.Sprintf("sizeof(%s)", s.Operand) }

// Cast is an explicit (type) expr conversion.
type Cast struct {
	exprMeta
	Target  Type
	Operand Expr
}

func (*Cast) exprNode()         {}
func (c *Cast) meta() *exprMeta { return &c.exprMeta }
func (c *Cast) String() string  { return fmt.Sprintf("(%s)%s", c.Target, c.Operand) }

// Index is Left[Index].
type Index struct {
	exprMeta
	Left  Expr
	Index Expr
}

func (*Index) exprNode()         {}
func (e *Index) meta() *exprMeta { return &e.exprMeta }
func (e *Index) String() string  { return fmt.Sprintf("%s[%s]", e.Left, e.Index) }

//  Statement nodes

// Stmt is implemented by every node that does not produce a value.
type Stmt interface {
	stmtNode()
	String() string
}

// SimpleStmt is an expression evaluated for its side effects (e.g. a bare
// call statement).
type SimpleStmt struct {
	Expr Expr
}

func (*SimpleStmt) stmtNode()        {}
func (s *SimpleStmt) String() string { return fmt.Sprintf("%s;", s.Expr) }

// AssignStmt is Left = Right;
type AssignStmt struct {
	Left  Expr
	Right Expr
}

func (*AssignStmt) stmtNode()        {}
func (a *AssignStmt) String() string { return fmt.Sprintf("%s = %s;", a.Left, a.Right) }

// Block is { declarations; statements... }. Scope is the lexical scope
// opened for the block's own local declarations.
type Block struct {
	Scope *Scope
	Stmts []Stmt
}

func (*Block) stmtNode()        {}
func (b *Block) String() string { return fmt.Sprintf("{ %d stmts }", len(b.Stmts)) }

// WhileStmt is while (Cond) Body.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (*WhileStmt) stmtNode()        {}
func (w *WhileStmt) String() string { return fmt.Sprintf("while (%s) %s", w.Cond, w.Body) }

// ForStmt is for (Init; Cond; Incr) Body. Init and Incr are assignment
// statements (possibly nil); Cond may be nil.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Incr Stmt
	Body Stmt
}

func (*ForStmt) stmtNode() {}
func (f *ForStmt) String() string {
	return fmt.Sprintf("for (%s; %s; %s) %s", f.Init, f.Cond, f.Incr, f.Body)
}

// IfStmt is if (Cond) Then [else Else].
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	if i.Else != nil {
		return fmt.Sprintf("if (%s) %s else %s", i.Cond, i.Then, i.Else)
	}
	return fmt.Sprintf("if (%s) %s", i.Cond, i.Then)
}

// ReturnStmt is return Expr; (Expr is nil for a void function).
type ReturnStmt struct {
	Expr Expr
}

func (*ReturnStmt) stmtNode()        {}
func (r *ReturnStmt) String() string { return fmt.Sprintf("return %s;", r.Expr) }

//  Top level

// Function is a function definition: a Symbol (carrying the function
// Type), its formal parameter Symbols in declaration order (a prefix of
// Body.Scope's own symbols, since parameters and the body's own top-level
// locals share one lexical scope), and its Block body.
type Function struct {
	Sym    *Symbol
	Params []*Symbol
	Body   *Block
}

func (f *Function) String() string {
	return fmt.Sprintf("%s %s(...) %s", f.Sym.Type, f.Sym.Name, f.Body)
}

// Program is the root of a translation unit: every function defined in
// it, plus the outermost scope holding every global variable and function
// symbol (functions are always installed in the outermost scope
// regardless of declaration site).
type Program struct {
	Outermost *Scope
	Functions []*Function
}
