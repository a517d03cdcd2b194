package selftypes

import "fmt"

// Unify decides β/δ-convertibility of two expressions of the same sort
// under ctx: it reduces both sides to weak-head normal form, matches their
// head constructors, and recurses congruently into their children,
// resolving α-equivalence by substituting a Ref to the left operand's
// binder for the right operand's binder rather than generating a fresh
// name. This is full convertibility, not pure structural comparison,
// generalizing the teacher's typeEquals (fullsimple.go), which already
// expands one TyAbbBind on mismatch before comparing — here every
// reduction step runs first, on both sides, before any comparison at all.
func Unify(e1, e2 Expr, ctx Context) error {
	return unifyExpr(e1, e2, e1, e2, ctx)
}

func mismatchErr(cur1, cur2, orig1, orig2 Expr) error {
	return fmt.Errorf("%w: cannot unify subexpression %s with %s, in order to unify expression %s with %s",
		ErrUnifyMismatch, Print(cur1), Print(cur2), Print(orig1), Print(orig2))
}

func unifyExpr(e1, e2, orig1, orig2 Expr, ctx Context) error {
	if e1.Sort() != e2.Sort() {
		return mismatchErr(e1, e2, orig1, orig2)
	}
	w1 := Evaluate(e1, ctx)
	w2 := Evaluate(e2, ctx)
	switch w1.Sort() {
	case SortTerm:
		return unifyTerm(w1.AsTerm(), w2.AsTerm(), orig1, orig2, ctx)
	case SortType:
		return unifyType(w1.AsType(), w2.AsType(), orig1, orig2, ctx)
	case SortKind:
		return unifyKind(w1.AsKind(), w2.AsKind(), orig1, orig2, ctx)
	default:
		panic("selftypes: unreachable sort")
	}
}

func unifyTerm(t1, t2 Term, orig1, orig2 Expr, ctx Context) error {
	switch t1 := t1.(type) {
	case TermRef:
		t2, ok := t2.(TermRef)
		if !ok || t1.Name != t2.Name {
			return mismatchErr(ExprTerm(t1), ExprTerm(t2), orig1, orig2)
		}
		return nil
	case TermAbsTm:
		t2, ok := t2.(TermAbsTm)
		if !ok {
			return mismatchErr(ExprTerm(t1), ExprTerm(t2), orig1, orig2)
		}
		if err := unifyExpr(ExprType(t1.VarType), ExprType(t2.VarType), orig1, orig2, ctx); err != nil {
			return err
		}
		renamedBody := Substitute(ExprTerm(t2.Body), t2.Var, ExprTerm(TermRef{Name: t1.Var})).AsTerm()
		return unifyExpr(ExprTerm(t1.Body), ExprTerm(renamedBody), orig1, orig2, ctx)
	case TermAppTm:
		t2, ok := t2.(TermAppTm)
		if !ok {
			return mismatchErr(ExprTerm(t1), ExprTerm(t2), orig1, orig2)
		}
		if err := unifyExpr(ExprTerm(t1.Fn), ExprTerm(t2.Fn), orig1, orig2, ctx); err != nil {
			return err
		}
		return unifyExpr(ExprTerm(t1.Arg), ExprTerm(t2.Arg), orig1, orig2, ctx)
	case TermAbsTy:
		t2, ok := t2.(TermAbsTy)
		if !ok {
			return mismatchErr(ExprTerm(t1), ExprTerm(t2), orig1, orig2)
		}
		if err := unifyExpr(ExprKind(t1.VarKind), ExprKind(t2.VarKind), orig1, orig2, ctx); err != nil {
			return err
		}
		renamedBody := Substitute(ExprTerm(t2.Body), t2.Var, ExprType(TypeRef{Name: t1.Var})).AsTerm()
		return unifyExpr(ExprTerm(t1.Body), ExprTerm(renamedBody), orig1, orig2, ctx)
	case TermAppTy:
		t2, ok := t2.(TermAppTy)
		if !ok {
			return mismatchErr(ExprTerm(t1), ExprTerm(t2), orig1, orig2)
		}
		if err := unifyExpr(ExprTerm(t1.Fn), ExprTerm(t2.Fn), orig1, orig2, ctx); err != nil {
			return err
		}
		return unifyExpr(ExprType(t1.Arg), ExprType(t2.Arg), orig1, orig2, ctx)
	default:
		panic("selftypes: unreachable term form")
	}
}

func unifyType(ty1, ty2 Type, orig1, orig2 Expr, ctx Context) error {
	switch ty1 := ty1.(type) {
	case TypeRef:
		ty2, ok := ty2.(TypeRef)
		if !ok || ty1.Name != ty2.Name {
			return mismatchErr(ExprType(ty1), ExprType(ty2), orig1, orig2)
		}
		return nil
	case TypeAbsTm:
		ty2, ok := ty2.(TypeAbsTm)
		if !ok {
			return mismatchErr(ExprType(ty1), ExprType(ty2), orig1, orig2)
		}
		if err := unifyExpr(ExprType(ty1.VarType), ExprType(ty2.VarType), orig1, orig2, ctx); err != nil {
			return err
		}
		renamedBody := Substitute(ExprType(ty2.Body), ty2.Var, ExprTerm(TermRef{Name: ty1.Var})).AsType()
		return unifyExpr(ExprType(ty1.Body), ExprType(renamedBody), orig1, orig2, ctx)
	case TypeAppTm:
		ty2, ok := ty2.(TypeAppTm)
		if !ok {
			return mismatchErr(ExprType(ty1), ExprType(ty2), orig1, orig2)
		}
		if err := unifyExpr(ExprType(ty1.Fn), ExprType(ty2.Fn), orig1, orig2, ctx); err != nil {
			return err
		}
		return unifyExpr(ExprTerm(ty1.Arg), ExprTerm(ty2.Arg), orig1, orig2, ctx)
	case TypeAbsTy:
		ty2, ok := ty2.(TypeAbsTy)
		if !ok {
			return mismatchErr(ExprType(ty1), ExprType(ty2), orig1, orig2)
		}
		if err := unifyExpr(ExprKind(ty1.VarKind), ExprKind(ty2.VarKind), orig1, orig2, ctx); err != nil {
			return err
		}
		renamedBody := Substitute(ExprType(ty2.Body), ty2.Var, ExprType(TypeRef{Name: ty1.Var})).AsType()
		return unifyExpr(ExprType(ty1.Body), ExprType(renamedBody), orig1, orig2, ctx)
	case TypeAppTy:
		ty2, ok := ty2.(TypeAppTy)
		if !ok {
			return mismatchErr(ExprType(ty1), ExprType(ty2), orig1, orig2)
		}
		if err := unifyExpr(ExprType(ty1.Fn), ExprType(ty2.Fn), orig1, orig2, ctx); err != nil {
			return err
		}
		return unifyExpr(ExprType(ty1.Arg), ExprType(ty2.Arg), orig1, orig2, ctx)
	case TypeIota:
		ty2, ok := ty2.(TypeIota)
		if !ok {
			return mismatchErr(ExprType(ty1), ExprType(ty2), orig1, orig2)
		}
		renamedBody := Substitute(ExprType(ty2.Body), ty2.Var, ExprTerm(TermRef{Name: ty1.Var})).AsType()
		return unifyExpr(ExprType(ty1.Body), ExprType(renamedBody), orig1, orig2, ctx)
	default:
		panic("selftypes: unreachable type form")
	}
}

func unifyKind(k1, k2 Kind, orig1, orig2 Expr, ctx Context) error {
	switch k1 := k1.(type) {
	case KindUnit:
		if _, ok := k2.(KindUnit); !ok {
			return mismatchErr(ExprKind(k1), ExprKind(k2), orig1, orig2)
		}
		return nil
	case KindAbsTm:
		k2, ok := k2.(KindAbsTm)
		if !ok {
			return mismatchErr(ExprKind(k1), ExprKind(k2), orig1, orig2)
		}
		if err := unifyExpr(ExprType(k1.VarType), ExprType(k2.VarType), orig1, orig2, ctx); err != nil {
			return err
		}
		renamedBody := Substitute(ExprKind(k2.Body), k2.Var, ExprTerm(TermRef{Name: k1.Var})).AsKind()
		return unifyExpr(ExprKind(k1.Body), ExprKind(renamedBody), orig1, orig2, ctx)
	case KindAbsTy:
		k2, ok := k2.(KindAbsTy)
		if !ok {
			return mismatchErr(ExprKind(k1), ExprKind(k2), orig1, orig2)
		}
		if err := unifyExpr(ExprKind(k1.VarKind), ExprKind(k2.VarKind), orig1, orig2, ctx); err != nil {
			return err
		}
		renamedBody := Substitute(ExprKind(k2.Body), k2.Var, ExprType(TypeRef{Name: k1.Var})).AsKind()
		return unifyExpr(ExprKind(k1.Body), ExprKind(renamedBody), orig1, orig2, ctx)
	default:
		panic("selftypes: unreachable kind form")
	}
}
