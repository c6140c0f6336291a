package compiler

import "fmt"

// Specifier is the base type keyword of a Type.
type Specifier int

const (
	SpecInt Specifier = iota
	SpecChar
	SpecLong
	SpecVoid
)

func (s Specifier) String() string {
	switch s {
	case SpecInt:
		return "int"
	case SpecChar:
		return "char"
	case SpecLong:
		return "long"
	case SpecVoid:
		return "void"
	default:
		return "?"
	}
}

// Declarator is the structural shape layered on top of a Specifier:
// a plain scalar, an array of fixed length, a function, or the absorbing
// ERROR marker used to suppress diagnostic cascades.
type Declarator int

const (
	Scalar Declarator = iota
	Array
	FuncDecl
	errorDeclarator
)

// FuncParams distinguishes a function with a known parameter list
// ("prototyped") from one declared with empty parens, whose argument shape
// is unconstrained except that each argument must be a predicate.
type FuncParams struct {
	known  bool
	params []Type
}

// Unprototyped reports a function declared with empty parens: any argument
// shape is accepted, subject only to the per-argument predicate check.
func Unprototyped() FuncParams { return FuncParams{} }

// Prototype reports a function with exactly the given parameter types.
func Prototype(params []Type) FuncParams { return FuncParams{known: true, params: params} }

func (p FuncParams) equal(o FuncParams) bool {
	if !p.known || !o.known {
		return true // an unprototyped side matches any parameter list
	}
	if len(p.params) != len(o.params) {
		return false
	}
	for i := range p.params {
		if !p.params[i].Equal(o.params[i]) {
			return false
		}
	}
	return true
}

// Type is the value type of every typed thing in the compiler: a scalar,
// array, function, or the absorbing ERROR marker. Array carries Length;
// FuncDecl carries Params. ERROR is absorbing: any check involving an
// ERROR operand yields ERROR silently, without emitting a further
// diagnostic (see Checker).
type Type struct {
	Spec        Specifier
	Indirection int // pointer depth
	Decl        Declarator
	Length      uint64     // valid when Decl == Array
	Params      FuncParams // valid when Decl == FuncDecl
}

// Err is the absorbing error type: any operator rule that sees it on either
// operand produces Err again without a fresh diagnostic.
var Err = Type{Decl: errorDeclarator}

// Scalar types used pervasively enough to deserve names.
var (
	Int     = Type{Spec: SpecInt}
	Char    = Type{Spec: SpecChar}
	Long    = Type{Spec: SpecLong}
	Void    = Type{Spec: SpecVoid}
	VoidPtr = Type{Spec: SpecVoid, Indirection: 1}
)

// Pointer returns the type one indirection level above t, e.g.
// Pointer(Int) is int*.
func Pointer(t Type) Type {
	t.Indirection++
	return t
}

// ArrayOf returns an array of length n with element type t.
func ArrayOf(t Type, n uint64) Type {
	t.Decl = Array
	t.Length = n
	return t
}

// FuncType returns a function type returning ret with the given parameters.
func FuncType(ret Type, params FuncParams) Type {
	ret.Decl = FuncDecl
	ret.Params = params
	return ret
}

func (t Type) IsError() bool    { return t.Decl == errorDeclarator }
func (t Type) IsScalar() bool   { return t.Decl == Scalar }
func (t Type) IsArray() bool    { return t.Decl == Array }
func (t Type) IsFunction() bool { return t.Decl == FuncDecl }

// IsPointer reports whether t decays to, or already is, a pointer: true for
// any scalar with Indirection > 0 and for any array (array-to-pointer
// promotion happens at the use site, but the predicate is useful before
// promotion too).
func (t Type) IsPointer() bool {
	return (t.IsScalar() && t.Indirection > 0) || t.IsArray()
}

// IsNumeric reports whether t is an unqualified int/long/char scalar.
func (t Type) IsNumeric() bool {
	return t.IsScalar() && t.Indirection == 0 &&
		(t.Spec == SpecInt || t.Spec == SpecLong || t.Spec == SpecChar)
}

// IsPredicate reports whether t can be tested against zero: any numeric
// scalar, or any pointer. FuncDecl and void-scalar types are not
// predicates, nor is ERROR (callers must check IsError separately since
// ERROR must never reach a "invalid type for test expression" diagnostic).
func (t Type) IsPredicate() bool {
	if t.IsError() {
		return false
	}
	return t.IsNumeric() || t.IsPointer()
}

// IsVoidPointer reports whether t is exactly void* (any higher indirection
// off void, e.g. void**, is an ordinary pointer, not the special void*
// wildcard used by IsCompatibleWith).
func (t Type) IsVoidPointer() bool {
	return t.IsScalar() && t.Spec == SpecVoid && t.Indirection == 1
}

// Promote applies the implicit conversions that precede most operators:
// array T[N] decays to pointer T*, a function type becomes the scalar one
// indirection above its return type (int f() promotes to int*; the result
// is not a function type and keeps no parameter list), and a char scalar
// widens to int. Every other type is unchanged.
// Promote is idempotent: t.Promote().Promote() == t.Promote().
func (t Type) Promote() Type {
	switch {
	case t.IsError():
		return t
	case t.IsArray():
		return Type{Spec: t.Spec, Indirection: t.Indirection + 1, Decl: Scalar}
	case t.IsFunction():
		return Type{Spec: t.Spec, Indirection: t.Indirection + 1, Decl: Scalar}
	case t.IsScalar() && t.Spec == SpecChar && t.Indirection == 0:
		return Type{Spec: SpecInt, Decl: Scalar}
	default:
		return t
	}
}

// IsCompatibleWith reports whether t and other may stand on either side of
// an operator requiring matching operands (==, !=, assignment, argument
// passing, return), after both sides have been promoted by the caller.
// Compatible means: structurally equal, or one side is void* and the other
// is any non-function pointer, or both are numeric scalars (of any width:
// int and long are compatible).
func (t Type) IsCompatibleWith(other Type) bool {
	if t.IsError() || other.IsError() {
		return true // ERROR poisons silently; caller already forced the result to Err
	}
	if t.Equal(other) {
		return true
	}
	if t.IsVoidPointer() && other.IsPointer() && !other.IsFunction() {
		return true
	}
	if other.IsVoidPointer() && t.IsPointer() && !t.IsFunction() {
		return true
	}
	if t.IsNumeric() && other.IsNumeric() {
		return true
	}
	return false
}

// Size returns t's size in bytes: char=1, int=4, long=8, any pointer=8,
// array = length * element size. The size of a function type is never
// meaningful; callers must not ask.
func (t Type) Size() int {
	if t.IsFunction() {
		panic("Type.Size: function types have no meaningful size")
	}
	if t.IsArray() {
		elem := t
		elem.Decl = Scalar
		elem.Length = 0
		return int(t.Length) * elem.Size()
	}
	if t.Indirection > 0 {
		return 8
	}
	switch t.Spec {
	case SpecChar:
		return 1
	case SpecInt:
		return 4
	case SpecLong:
		return 8
	default:
		return 0
	}
}

// Equal is structural equality over all fields: Spec, Indirection, Decl,
// and (for Array) Length, or (for FuncDecl) the parameter sequence, with
// an unprototyped function equal to any function of matching return
// specifier/indirection.
func (t Type) Equal(o Type) bool {
	if t.IsError() || o.IsError() {
		return t.IsError() && o.IsError()
	}
	if t.Spec != o.Spec || t.Indirection != o.Indirection || t.Decl != o.Decl {
		return false
	}
	switch t.Decl {
	case Array:
		return t.Length == o.Length
	case FuncDecl:
		return t.Params.equal(o.Params)
	default:
		return true
	}
}

func (t Type) String() string {
	if t.IsError() {
		return "<error type>"
	}
	suffix := ""
	for i := 0; i < t.Indirection; i++ {
		suffix += "*"
	}
	switch t.Decl {
	case Array:
		return fmt.Sprintf("%s%s[%d]", t.Spec, suffix, t.Length)
	case FuncDecl:
		if !t.Params.known {
			return fmt.Sprintf("%s%s()", t.Spec, suffix)
		}
		return fmt.Sprintf("%s%s(%d params)", t.Spec, suffix, len(t.Params.params))
	default:
		return t.Spec.String() + suffix
	}
}
