package selftypes

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Context is the frame-stack classifier environment: a persistent,
// immutable linked list of four kinds of frame, generalizing the teacher's
// flat []Context slice of {Name, Binding} pairs (fullsimple.go) into an
// explicit stack so that a ClosureContext frame can bundle three maps at
// once rather than one binding at a time.
type Context interface{ isContext() }

// EmptyContext terminates the stack.
type EmptyContext struct{}

func (EmptyContext) isContext() {}

// TypingContext binds a single term-name to its type, the classifier a
// TermAbsTm/TypeAbsTm/KindAbsTm binder pushes while checking its body.
type TypingContext struct {
	Name Name
	Type Type
	Rest Context
}

func (TypingContext) isContext() {}

// KindingContext binds a single type-name to its kind, the classifier a
// TermAbsTy/TypeAbsTy/KindAbsTy binder pushes while checking its body.
type KindingContext struct {
	Name Name
	Kind Kind
	Rest Context
}

func (KindingContext) isContext() {}

// ClosureContext installs a whole batch of top-level definitions at once,
// the frame ElaborateProgram pushes once per Stmt.
type ClosureContext struct {
	Closure Closure
	Rest    Context
}

func (ClosureContext) isContext() {}

// TermBinding pairs a defined term's body with its declared type, so that
// the reducer can δ-expand a TermRef and the checker can classify one
// without re-synthesizing its body's type every time.
type TermBinding struct {
	Type Type
	Body Term
}

// TypeBinding pairs a defined type's body with its declared kind.
type TypeBinding struct {
	Kind Kind
	Type Type
}

// Closure bundles the three namespace-indexed binding maps a single
// top-level definition batch contributes. WellFormedClosure classifies each
// binding against the Context as it stood before this Closure was pushed,
// not extended by any binding of the Closure itself, and rejects a binding
// whose body mentions another name bound in the same Closure. A binding
// therefore cannot refer to any other entry of its own Closure, earlier or
// not; its free names must resolve to names bound further out.
type Closure struct {
	Terms map[Name]TermBinding
	Types map[Name]TypeBinding
	Kinds map[Name]Kind
}

// LookupTermType finds the declared type of a term-name, searching a
// TypingContext frame's single binding or a ClosureContext frame's Terms
// map, outward through the stack.
func LookupTermType(ctx Context, name Name) (Type, bool) {
	switch c := ctx.(type) {
	case EmptyContext:
		return nil, false
	case TypingContext:
		if c.Name == name {
			return c.Type, true
		}
		return LookupTermType(c.Rest, name)
	case KindingContext:
		return LookupTermType(c.Rest, name)
	case ClosureContext:
		if b, ok := c.Closure.Terms[name]; ok {
			return b.Type, true
		}
		return LookupTermType(c.Rest, name)
	default:
		panic("selftypes: unreachable context form")
	}
}

// LookupTermBody finds the δ-expansion body of a term-name, if any was
// declared by a ClosureContext frame. A TypingContext binding has no body
// to expand — it is an opaque hypothesis, not a definition.
func LookupTermBody(ctx Context, name Name) (Term, bool) {
	switch c := ctx.(type) {
	case EmptyContext:
		return nil, false
	case TypingContext:
		return LookupTermBody(c.Rest, name)
	case KindingContext:
		return LookupTermBody(c.Rest, name)
	case ClosureContext:
		if b, ok := c.Closure.Terms[name]; ok {
			return b.Body, true
		}
		return LookupTermBody(c.Rest, name)
	default:
		panic("selftypes: unreachable context form")
	}
}

// LookupTypeKind finds the declared kind of a type-name.
func LookupTypeKind(ctx Context, name Name) (Kind, bool) {
	switch c := ctx.(type) {
	case EmptyContext:
		return nil, false
	case TypingContext:
		return LookupTypeKind(c.Rest, name)
	case KindingContext:
		if c.Name == name {
			return c.Kind, true
		}
		return LookupTypeKind(c.Rest, name)
	case ClosureContext:
		if b, ok := c.Closure.Types[name]; ok {
			return b.Kind, true
		}
		return LookupTypeKind(c.Rest, name)
	default:
		panic("selftypes: unreachable context form")
	}
}

// LookupTypeBody finds the δ-expansion body of a type-name, if declared by
// a ClosureContext frame.
func LookupTypeBody(ctx Context, name Name) (Type, bool) {
	switch c := ctx.(type) {
	case EmptyContext:
		return nil, false
	case TypingContext:
		return LookupTypeBody(c.Rest, name)
	case KindingContext:
		return LookupTypeBody(c.Rest, name)
	case ClosureContext:
		if b, ok := c.Closure.Types[name]; ok {
			return b.Type, true
		}
		return LookupTypeBody(c.Rest, name)
	default:
		panic("selftypes: unreachable context form")
	}
}

// LookupKind finds a kind-name's bound kind. Kind-names are only ever
// introduced by a ClosureContext frame — there is no KindingContext-level
// binder for them, since nothing in the grammar abstracts over a kind.
func LookupKind(ctx Context, name Name) (Kind, bool) {
	switch c := ctx.(type) {
	case EmptyContext:
		return nil, false
	case TypingContext:
		return LookupKind(c.Rest, name)
	case KindingContext:
		return LookupKind(c.Rest, name)
	case ClosureContext:
		if k, ok := c.Closure.Kinds[name]; ok {
			return k, true
		}
		return LookupKind(c.Rest, name)
	default:
		panic("selftypes: unreachable context form")
	}
}

// ExtendTyping pushes a TypingContext frame, the operation every
// *Abs*-checking rule performs before recursing into a binder's body.
func ExtendTyping(ctx Context, name Name, typ Type) Context {
	return TypingContext{Name: name, Type: typ, Rest: ctx}
}

// ExtendKinding pushes a KindingContext frame.
func ExtendKinding(ctx Context, name Name, kind Kind) Context {
	return KindingContext{Name: name, Kind: kind, Rest: ctx}
}

// ExtendClosure pushes a ClosureContext frame, the operation
// ElaborateProgram performs once per accepted Stmt.
func ExtendClosure(ctx Context, c Closure) Context {
	return ClosureContext{Closure: c, Rest: ctx}
}

// closureTermNames and closureTypeNames list a Closure's bound names in
// each namespace, used by WellFormedClosure to test sibling-reference
// membership. lo.Keys generalizes the teacher's own map-key extraction
// idiom (fullsimple.go builds equivalent lookups over []TyField/[]Field by
// hand; lo.Keys is the direct library replacement for that pattern).
func closureTermNames(c Closure) []Name { return lo.Keys(c.Terms) }
func closureTypeNames(c Closure) []Name { return lo.Keys(c.Types) }

// WellFormedContext walks the four frames of ctx outward, checking each
// frame's own classifier against the tail it was pushed onto: a
// TypingContext's Type must have kind ⋆, a KindingContext's Kind must be
// well-formed, and a ClosureContext's Closure must be well-formed, in each
// case under Rest rather than under the frame itself.
func WellFormedContext(ctx Context) error {
	switch c := ctx.(type) {
	case EmptyContext:
		return nil
	case TypingContext:
		if err := CheckKind(c.Type, KindUnit{}, c.Rest); err != nil {
			return err
		}
		return WellFormedContext(c.Rest)
	case KindingContext:
		if err := WellFormedKind(c.Kind, c.Rest); err != nil {
			return err
		}
		return WellFormedContext(c.Rest)
	case ClosureContext:
		if err := WellFormedClosure(c.Closure, c.Rest); err != nil {
			return err
		}
		return WellFormedContext(c.Rest)
	default:
		panic("selftypes: unreachable context form")
	}
}

// WellFormedClosure checks every binding in c against ctx (not against c
// itself extended into ctx): each term binding's type must have kind ⋆ and
// its body must check against that type, each type binding's type must
// check against its declared kind, each kind binding must be well-formed,
// and no binding's body may mention a sibling name bound in the same
// Closure. That last check is the closure law against mutual recursion:
// since c's three maps carry no ordering of their own, "refers only to
// earlier entries" is enforced here as "refers to no entry in this same
// batch at all" — the strictest reading consistent with an unordered
// representation, and exactly what ElaborateProgram's one-binding-per-
// Closure batches already satisfy trivially. slices.Contains here plays
// the membership-test role the teacher's own slices.Contains call plays
// over a Context in untyped.go.
func WellFormedClosure(c Closure, ctx Context) error {
	termNames := closureTermNames(c)
	typeNames := closureTypeNames(c)

	checkNoSiblingRefs := func(e Expr, definer Name) error {
		for free := range FreeTermNames(e) {
			if free != definer && slices.Contains(termNames, free) {
				return fmt.Errorf("%w: %s refers to %s, defined in the same batch (no mutual recursion)", ErrIllKinded, definer, free)
			}
		}
		for free := range FreeTypeNames(e) {
			if free != definer && slices.Contains(typeNames, free) {
				return fmt.Errorf("%w: %s refers to %s, defined in the same batch (no mutual recursion)", ErrIllKinded, definer, free)
			}
		}
		return nil
	}

	for name, b := range c.Terms {
		if err := CheckKind(b.Type, KindUnit{}, ctx); err != nil {
			return err
		}
		if err := CheckType(b.Body, b.Type, ctx); err != nil {
			return err
		}
		if err := checkNoSiblingRefs(ExprTerm(b.Body), name); err != nil {
			return err
		}
	}
	for name, b := range c.Types {
		if err := WellFormedKind(b.Kind, ctx); err != nil {
			return err
		}
		if err := CheckKind(b.Type, b.Kind, ctx); err != nil {
			return err
		}
		if err := checkNoSiblingRefs(ExprType(b.Type), name); err != nil {
			return err
		}
	}
	for name, k := range c.Kinds {
		if err := WellFormedKind(k, ctx); err != nil {
			return err
		}
		if err := checkNoSiblingRefs(ExprKind(k), name); err != nil {
			return err
		}
	}
	return nil
}
