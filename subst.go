package selftypes

// Substitute replaces every free occurrence of name in e with replacement,
// dispatching on name's Namespace to choose which of the six substitution
// shapes applies (term-into-term, term-into-type, term-into-kind,
// type-into-term, type-into-type, type-into-kind; kind-names never occur in
// Ref position anywhere in the grammar, so there is no kind-into-anything
// case). This generalizes the teacher's per-constructor subst/shift pair in
// fullsimple.go: named binders need no de Bruijn shifting, and substitution
// here never renames a binder to avoid capture, matching the calculus's
// explicit no-α-renaming discipline. Capture is the caller's responsibility
// (via globally unique binder Idents), not this function's.
func Substitute(e Expr, name Name, replacement Expr) Expr {
	switch name.Namespace {
	case NamespaceTerm:
		repl := replacement.AsTerm()
		return substTermName(e, name, repl)
	case NamespaceType:
		repl := replacement.AsType()
		return substTypeName(e, name, repl)
	default:
		panic("selftypes: cannot substitute a kind-name, kind-names never occur free")
	}
}

func substTermName(e Expr, name Name, repl Term) Expr {
	switch e.Sort() {
	case SortTerm:
		return ExprTerm(substTermInTerm(e.AsTerm(), name, repl))
	case SortType:
		return ExprType(substTermInType(e.AsType(), name, repl))
	case SortKind:
		return ExprKind(substTermInKind(e.AsKind(), name, repl))
	default:
		panic("selftypes: unreachable sort")
	}
}

func substTypeName(e Expr, name Name, repl Type) Expr {
	switch e.Sort() {
	case SortTerm:
		return ExprTerm(substTypeInTerm(e.AsTerm(), name, repl))
	case SortType:
		return ExprType(substTypeInType(e.AsType(), name, repl))
	case SortKind:
		return ExprKind(substTypeInKind(e.AsKind(), name, repl))
	default:
		panic("selftypes: unreachable sort")
	}
}

// substTermInTerm replaces free occurrences of a term-name within a Term.
func substTermInTerm(t Term, name Name, repl Term) Term {
	switch t := t.(type) {
	case TermRef:
		if t.Name == name {
			return repl
		}
		return t
	case TermAbsTm:
		varType := substTermInType(t.VarType, name, repl)
		if t.Var == name {
			return TermAbsTm{Var: t.Var, VarType: varType, Body: t.Body}
		}
		return TermAbsTm{Var: t.Var, VarType: varType, Body: substTermInTerm(t.Body, name, repl)}
	case TermAppTm:
		return TermAppTm{Fn: substTermInTerm(t.Fn, name, repl), Arg: substTermInTerm(t.Arg, name, repl)}
	case TermAbsTy:
		return TermAbsTy{
			Var:     t.Var,
			VarKind: substTermInKind(t.VarKind, name, repl),
			Body:    substTermInTerm(t.Body, name, repl),
		}
	case TermAppTy:
		return TermAppTy{Fn: substTermInTerm(t.Fn, name, repl), Arg: substTermInType(t.Arg, name, repl)}
	default:
		panic("selftypes: unreachable term form")
	}
}

// substTermInType replaces free occurrences of a term-name within a Type.
func substTermInType(ty Type, name Name, repl Term) Type {
	switch ty := ty.(type) {
	case TypeRef:
		return ty
	case TypeAbsTm:
		varType := substTermInType(ty.VarType, name, repl)
		if ty.Var == name {
			return TypeAbsTm{Var: ty.Var, VarType: varType, Body: ty.Body}
		}
		return TypeAbsTm{Var: ty.Var, VarType: varType, Body: substTermInType(ty.Body, name, repl)}
	case TypeAppTm:
		return TypeAppTm{Fn: substTermInType(ty.Fn, name, repl), Arg: substTermInTerm(ty.Arg, name, repl)}
	case TypeAbsTy:
		return TypeAbsTy{
			Var:     ty.Var,
			VarKind: substTermInKind(ty.VarKind, name, repl),
			Body:    substTermInType(ty.Body, name, repl),
		}
	case TypeAppTy:
		return TypeAppTy{Fn: substTermInType(ty.Fn, name, repl), Arg: substTermInType(ty.Arg, name, repl)}
	case TypeIota:
		if ty.Var == name {
			return ty
		}
		return TypeIota{Var: ty.Var, Body: substTermInType(ty.Body, name, repl)}
	default:
		panic("selftypes: unreachable type form")
	}
}

// substTermInKind replaces free occurrences of a term-name within a Kind.
func substTermInKind(k Kind, name Name, repl Term) Kind {
	switch k := k.(type) {
	case KindUnit:
		return k
	case KindAbsTm:
		varType := substTermInType(k.VarType, name, repl)
		if k.Var == name {
			return KindAbsTm{Var: k.Var, VarType: varType, Body: k.Body}
		}
		return KindAbsTm{Var: k.Var, VarType: varType, Body: substTermInKind(k.Body, name, repl)}
	case KindAbsTy:
		return KindAbsTy{
			Var:     k.Var,
			VarKind: substTermInKind(k.VarKind, name, repl),
			Body:    substTermInKind(k.Body, name, repl),
		}
	default:
		panic("selftypes: unreachable kind form")
	}
}

// substTypeInTerm replaces free occurrences of a type-name within a Term.
func substTypeInTerm(t Term, name Name, repl Type) Term {
	switch t := t.(type) {
	case TermRef:
		return t
	case TermAbsTm:
		return TermAbsTm{
			Var:     t.Var,
			VarType: substTypeInType(t.VarType, name, repl),
			Body:    substTypeInTerm(t.Body, name, repl),
		}
	case TermAppTm:
		return TermAppTm{Fn: substTypeInTerm(t.Fn, name, repl), Arg: substTypeInTerm(t.Arg, name, repl)}
	case TermAbsTy:
		varKind := substTypeInKind(t.VarKind, name, repl)
		if t.Var == name {
			return TermAbsTy{Var: t.Var, VarKind: varKind, Body: t.Body}
		}
		return TermAbsTy{Var: t.Var, VarKind: varKind, Body: substTypeInTerm(t.Body, name, repl)}
	case TermAppTy:
		return TermAppTy{Fn: substTypeInTerm(t.Fn, name, repl), Arg: substTypeInType(t.Arg, name, repl)}
	default:
		panic("selftypes: unreachable term form")
	}
}

// substTypeInType replaces free occurrences of a type-name within a Type.
func substTypeInType(ty Type, name Name, repl Type) Type {
	switch ty := ty.(type) {
	case TypeRef:
		if ty.Name == name {
			return repl
		}
		return ty
	case TypeAbsTm:
		return TypeAbsTm{
			Var:     ty.Var,
			VarType: substTypeInType(ty.VarType, name, repl),
			Body:    substTypeInType(ty.Body, name, repl),
		}
	case TypeAppTm:
		return TypeAppTm{Fn: substTypeInType(ty.Fn, name, repl), Arg: substTypeInTerm(ty.Arg, name, repl)}
	case TypeAbsTy:
		varKind := substTypeInKind(ty.VarKind, name, repl)
		if ty.Var == name {
			return TypeAbsTy{Var: ty.Var, VarKind: varKind, Body: ty.Body}
		}
		return TypeAbsTy{Var: ty.Var, VarKind: varKind, Body: substTypeInType(ty.Body, name, repl)}
	case TypeAppTy:
		return TypeAppTy{Fn: substTypeInType(ty.Fn, name, repl), Arg: substTypeInType(ty.Arg, name, repl)}
	case TypeIota:
		return TypeIota{Var: ty.Var, Body: substTypeInType(ty.Body, name, repl)}
	default:
		panic("selftypes: unreachable type form")
	}
}

// substTypeInKind replaces free occurrences of a type-name within a Kind.
func substTypeInKind(k Kind, name Name, repl Type) Kind {
	switch k := k.(type) {
	case KindUnit:
		return k
	case KindAbsTm:
		return KindAbsTm{
			Var:     k.Var,
			VarType: substTypeInType(k.VarType, name, repl),
			Body:    substTypeInKind(k.Body, name, repl),
		}
	case KindAbsTy:
		varKind := substTypeInKind(k.VarKind, name, repl)
		if k.Var == name {
			return KindAbsTy{Var: k.Var, VarKind: varKind, Body: k.Body}
		}
		return KindAbsTy{Var: k.Var, VarKind: varKind, Body: substTypeInKind(k.Body, name, repl)}
	default:
		panic("selftypes: unreachable kind form")
	}
}
