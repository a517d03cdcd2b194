package selftypes

import "errors"

// errNoReduction signals that an expression is already in weak-head normal
// form: there is no redex at the head and no δ-expansion available for a
// head Ref. It never escapes this file — Evaluate turns it into a clean
// fixed point rather than propagating it as a checker-visible error,
// mirroring the teacher's noRuleApplies sentinel in untyped.go/
// simplebool.go, which plays exactly this role for eval1.
var errNoReduction = errors.New("selftypes: no reduction applies")

// reduce performs one weak-head reduction step: β-reduce a redex at the
// head of the spine, or δ-expand a head Ref bound by a Closure, without
// ever reducing under a binder or inside an argument. Kinds have no App
// form anywhere in the grammar, so a Kind-sorted Expr is always already in
// normal form.
func reduce(e Expr, ctx Context) (Expr, error) {
	switch e.Sort() {
	case SortTerm:
		t, err := reduceTerm(e.AsTerm(), ctx)
		if err != nil {
			return e, err
		}
		return ExprTerm(t), nil
	case SortType:
		ty, err := reduceType(e.AsType(), ctx)
		if err != nil {
			return e, err
		}
		return ExprType(ty), nil
	case SortKind:
		return e, errNoReduction
	default:
		panic("selftypes: unreachable sort")
	}
}

func reduceTerm(t Term, ctx Context) (Term, error) {
	switch t := t.(type) {
	case TermRef:
		if body, ok := LookupTermBody(ctx, t.Name); ok {
			return body, nil
		}
		return t, errNoReduction
	case TermAppTm:
		if fn, ok := t.Fn.(TermAbsTm); ok {
			return Substitute(ExprTerm(fn.Body), fn.Var, ExprTerm(t.Arg)).AsTerm(), nil
		}
		fn, err := reduceTerm(t.Fn, ctx)
		if err != nil {
			return t, err
		}
		return TermAppTm{Fn: fn, Arg: t.Arg}, nil
	case TermAppTy:
		if fn, ok := t.Fn.(TermAbsTy); ok {
			return Substitute(ExprTerm(fn.Body), fn.Var, ExprType(t.Arg)).AsTerm(), nil
		}
		fn, err := reduceTerm(t.Fn, ctx)
		if err != nil {
			return t, err
		}
		return TermAppTy{Fn: fn, Arg: t.Arg}, nil
	case TermAbsTm, TermAbsTy:
		return t, errNoReduction
	default:
		panic("selftypes: unreachable term form")
	}
}

func reduceType(ty Type, ctx Context) (Type, error) {
	switch ty := ty.(type) {
	case TypeRef:
		if body, ok := LookupTypeBody(ctx, ty.Name); ok {
			return body, nil
		}
		return ty, errNoReduction
	case TypeAppTm:
		if fn, ok := ty.Fn.(TypeAbsTm); ok {
			return Substitute(ExprType(fn.Body), fn.Var, ExprTerm(ty.Arg)).AsType(), nil
		}
		fn, err := reduceType(ty.Fn, ctx)
		if err != nil {
			return ty, err
		}
		return TypeAppTm{Fn: fn, Arg: ty.Arg}, nil
	case TypeAppTy:
		if fn, ok := ty.Fn.(TypeAbsTy); ok {
			return Substitute(ExprType(fn.Body), fn.Var, ExprType(ty.Arg)).AsType(), nil
		}
		fn, err := reduceType(ty.Fn, ctx)
		if err != nil {
			return ty, err
		}
		return TypeAppTy{Fn: fn, Arg: ty.Arg}, nil
	case TypeAbsTm, TypeAbsTy, TypeIota:
		return ty, errNoReduction
	default:
		panic("selftypes: unreachable type form")
	}
}

// Evaluate drives reduce to a fixed point: the weak-head normal form of e
// under ctx. A Kind-sorted Expr is returned unchanged on the first step,
// since it is already normal. This generalizes the teacher's
// evalSmallStep loop (untyped.go) with δ-expansion through a Context,
// which the teacher's calculi never needed since they have no named
// top-level definitions.
func Evaluate(e Expr, ctx Context) Expr {
	for {
		next, err := reduce(e, ctx)
		if err != nil {
			return e
		}
		e = next
	}
}
