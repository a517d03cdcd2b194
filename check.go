package selftypes

import "fmt"

// SynthesizeKind infers the kind of a Type under ctx, following the
// synthesize half of the bidirectional kind-checking judgement. It
// generalizes the teacher's typeOf (fullsimple.go) from a single
// synthesize-only judgement to one of the four synthesize/check pairs this
// calculus needs, returning an error instead of calling errExit.
func SynthesizeKind(t Type, ctx Context) (Kind, error) {
	switch t := t.(type) {
	case TypeRef:
		k, ok := LookupTypeKind(ctx, t.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndeclaredName, t.Name)
		}
		return k, nil
	case TypeAbsTm:
		if err := CheckKind(t.VarType, KindUnit{}, ctx); err != nil {
			return nil, err
		}
		inner := ExtendTyping(ctx, t.Var, t.VarType)
		bodyKind, err := SynthesizeKind(t.Body, inner)
		if err != nil {
			return nil, err
		}
		return KindAbsTm{Var: t.Var, VarType: t.VarType, Body: bodyKind}, nil
	case TypeAppTm:
		fnKind, err := SynthesizeKind(t.Fn, ctx)
		if err != nil {
			return nil, err
		}
		abs, ok := whnfKind(fnKind, ctx).(KindAbsTm)
		if !ok {
			return nil, fmt.Errorf("%w: %s has kind %s, expected a term-abstracted kind", ErrInvalidApplicant, t.Fn, fnKind)
		}
		if err := CheckType(t.Arg, abs.VarType, ctx); err != nil {
			return nil, err
		}
		return Substitute(ExprKind(abs.Body), abs.Var, ExprTerm(t.Arg)).AsKind(), nil
	case TypeAbsTy:
		if err := WellFormedKind(t.VarKind, ctx); err != nil {
			return nil, err
		}
		inner := ExtendKinding(ctx, t.Var, t.VarKind)
		bodyKind, err := SynthesizeKind(t.Body, inner)
		if err != nil {
			return nil, err
		}
		return KindAbsTy{Var: t.Var, VarKind: t.VarKind, Body: bodyKind}, nil
	case TypeAppTy:
		fnKind, err := SynthesizeKind(t.Fn, ctx)
		if err != nil {
			return nil, err
		}
		abs, ok := whnfKind(fnKind, ctx).(KindAbsTy)
		if !ok {
			return nil, fmt.Errorf("%w: %s has kind %s, expected a type-abstracted kind", ErrInvalidApplicant, t.Fn, fnKind)
		}
		if err := CheckKind(t.Arg, abs.VarKind, ctx); err != nil {
			return nil, err
		}
		return Substitute(ExprKind(abs.Body), abs.Var, ExprType(t.Arg)).AsKind(), nil
	case TypeIota:
		inner := ExtendTyping(ctx, t.Var, t)
		if err := CheckKind(t.Body, KindUnit{}, inner); err != nil {
			return nil, err
		}
		return KindUnit{}, nil
	default:
		panic("selftypes: unreachable type form")
	}
}

// CheckKind checks t against an expected kind by synthesizing t's actual
// kind and unifying it against expected, the generic synthesize-then-
// compare shape the teacher's typeOf already follows for its one
// judgement, here made explicit as its own function because callers
// (SynthesizeKind's own AbsTm/AppTy/Iota cases) need to check, not just
// synthesize.
func CheckKind(t Type, expected Kind, ctx Context) error {
	actual, err := SynthesizeKind(t, ctx)
	if err != nil {
		return err
	}
	return Unify(ExprKind(actual), ExprKind(expected), ctx)
}

// WellFormedKind checks that a Kind's own constituents are well-formed:
// every term-domain it binds has kind ⋆, and every type-domain it binds is
// itself well-formed. Kinds have no classifier of their own, so there is
// no SynthesizeKind-of-a-Kind judgement — this is the closest analogue.
func WellFormedKind(k Kind, ctx Context) error {
	switch k := k.(type) {
	case KindUnit:
		return nil
	case KindAbsTm:
		if err := CheckKind(k.VarType, KindUnit{}, ctx); err != nil {
			return err
		}
		return WellFormedKind(k.Body, ExtendTyping(ctx, k.Var, k.VarType))
	case KindAbsTy:
		if err := WellFormedKind(k.VarKind, ctx); err != nil {
			return err
		}
		return WellFormedKind(k.Body, ExtendKinding(ctx, k.Var, k.VarKind))
	default:
		panic("selftypes: unreachable kind form")
	}
}

func whnfKind(k Kind, ctx Context) Kind {
	return Evaluate(ExprKind(k), ctx).AsKind()
}

func whnfType(t Type, ctx Context) Type {
	return Evaluate(ExprType(t), ctx).AsType()
}

// SynthesizeType infers the type of a Term under ctx. It generalizes the
// teacher's typeOf the same way SynthesizeKind does, one level up. It never
// introduces a TypeIota itself; see CheckType for the SelfGen
// (introduction) and SelfInst (elimination) rules of the self type.
func SynthesizeType(a Term, ctx Context) (Type, error) {
	switch a := a.(type) {
	case TermRef:
		t, ok := LookupTermType(ctx, a.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndeclaredName, a.Name)
		}
		return t, nil
	case TermAbsTm:
		if err := CheckKind(a.VarType, KindUnit{}, ctx); err != nil {
			return nil, err
		}
		inner := ExtendTyping(ctx, a.Var, a.VarType)
		bodyType, err := SynthesizeType(a.Body, inner)
		if err != nil {
			return nil, err
		}
		return TypeAbsTm{Var: a.Var, VarType: a.VarType, Body: bodyType}, nil
	case TermAppTm:
		fnType, err := SynthesizeType(a.Fn, ctx)
		if err != nil {
			return nil, err
		}
		abs, ok := whnfType(fnType, ctx).(TypeAbsTm)
		if !ok {
			return nil, fmt.Errorf("%w: %s has type %s, expected a term-abstracted type", ErrInvalidApplicant, a.Fn, fnType)
		}
		if err := CheckType(a.Arg, abs.VarType, ctx); err != nil {
			return nil, err
		}
		return Substitute(ExprType(abs.Body), abs.Var, ExprTerm(a.Arg)).AsType(), nil
	case TermAbsTy:
		if err := WellFormedKind(a.VarKind, ctx); err != nil {
			return nil, err
		}
		inner := ExtendKinding(ctx, a.Var, a.VarKind)
		bodyType, err := SynthesizeType(a.Body, inner)
		if err != nil {
			return nil, err
		}
		return TypeAbsTy{Var: a.Var, VarKind: a.VarKind, Body: bodyType}, nil
	case TermAppTy:
		fnType, err := SynthesizeType(a.Fn, ctx)
		if err != nil {
			return nil, err
		}
		abs, ok := whnfType(fnType, ctx).(TypeAbsTy)
		if !ok {
			return nil, fmt.Errorf("%w: %s has type %s, expected a type-abstracted type", ErrInvalidApplicant, a.Fn, fnType)
		}
		if err := CheckKind(a.Arg, abs.VarKind, ctx); err != nil {
			return nil, err
		}
		return Substitute(ExprType(abs.Body), abs.Var, ExprType(a.Arg)).AsType(), nil
	default:
		panic("selftypes: unreachable term form")
	}
}

// CheckType checks a against an expected Type, handling the self type's
// two directions explicitly before falling back to synthesize-then-unify:
//
//   - SelfGen (introduction): if the expected type itself unfolds to
//     ιx.T', a term satisfying the unfolded obligation [x:=a]T' also
//     satisfies ιx.T', so checking against ιx.T' recurses into checking
//     against its unfolding — provided ιx.T' is itself well-kinded (⋆),
//     which is checked first rather than assumed.
//   - SelfInst (elimination): if a's own synthesized type unfolds to
//     ιx.T'0, a is usable at the unfolding of the *expected* type T with
//     a substituted for x, so the comparison unifies [x:=a]T against T'0
//     rather than T against the synthesized type directly.
func CheckType(a Term, expected Type, ctx Context) error {
	if iota, ok := whnfType(expected, ctx).(TypeIota); ok {
		if err := CheckKind(iota, KindUnit{}, ctx); err != nil {
			return err
		}
		unfolded := Substitute(ExprType(iota.Body), iota.Var, ExprTerm(a)).AsType()
		return CheckType(a, unfolded, ctx)
	}
	actual, err := SynthesizeType(a, ctx)
	if err != nil {
		return err
	}
	if iota0, ok := whnfType(actual, ctx).(TypeIota); ok {
		substituted := Substitute(ExprType(expected), iota0.Var, ExprTerm(a)).AsType()
		return Unify(ExprType(substituted), ExprType(iota0.Body), ctx)
	}
	return Unify(ExprType(actual), ExprType(expected), ctx)
}
