package selftypes

import "fmt"

// String implementations give every construct distinct surrounding syntax
// (λ vs Λ vs Π vs ι, applications vs type applications), and two
// expressions built from the same source-supplied Names print identically,
// since each Name carries its own Ident and printing never consults
// position or a renaming context. Unlike the teacher's DeBruijnString/
// ContextString pair (fullsimple.go), no positional resolution is needed
// here — Name already carries the identifier a de-Bruijn Var would
// otherwise need a context slice to recover.

func (t TermRef) String() string { return t.Name.String() }

func (t TermAbsTm) String() string {
	return fmt.Sprintf("(λ%s:%s.%s)", t.Var, t.VarType, t.Body)
}

func (t TermAppTm) String() string {
	return fmt.Sprintf("(%s %s)", t.Fn, t.Arg)
}

func (t TermAbsTy) String() string {
	return fmt.Sprintf("(Λ%s:%s.%s)", t.Var, t.VarKind, t.Body)
}

func (t TermAppTy) String() string {
	return fmt.Sprintf("(%s [%s])", t.Fn, t.Arg)
}

func (t TypeRef) String() string { return t.Name.String() }

func (t TypeAbsTm) String() string {
	return fmt.Sprintf("(Π%s:%s.%s)", t.Var, t.VarType, t.Body)
}

func (t TypeAppTm) String() string {
	return fmt.Sprintf("(%s %s)", t.Fn, t.Arg)
}

func (t TypeAbsTy) String() string {
	return fmt.Sprintf("(Λ%s:%s.%s)", t.Var, t.VarKind, t.Body)
}

func (t TypeAppTy) String() string {
	return fmt.Sprintf("(%s [%s])", t.Fn, t.Arg)
}

func (t TypeIota) String() string {
	return fmt.Sprintf("(ι%s.%s)", t.Var, t.Body)
}

func (k KindUnit) String() string { return "*" }

func (k KindAbsTm) String() string {
	return fmt.Sprintf("(Π%s:%s.%s)", k.Var, k.VarType, k.Body)
}

func (k KindAbsTy) String() string {
	return fmt.Sprintf("(Π%s:%s.%s)", k.Var, k.VarKind, k.Body)
}

// Print renders an Expr of any sort for use in diagnostic messages,
// dispatching on its runtime Sort witness.
func Print(e Expr) string {
	switch e.Sort() {
	case SortTerm:
		return e.AsTerm().String()
	case SortType:
		return e.AsType().String()
	case SortKind:
		return e.AsKind().String()
	default:
		panic("selftypes: invalid sort")
	}
}
