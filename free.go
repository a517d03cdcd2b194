package selftypes

// FreeTermNames and FreeTypeNames traverse an Expr of any sort and return
// the occurrence count of each free name in the relevant namespace,
// subtracting a bound name at every binder that introduces one. No
// α-renaming happens here — these are purely structural traversals,
// mirroring the accumulator pattern of
// glossopoeia-boba's compiler/kinds.go KindFree/freeAcc, generalized from
// one namespace to two (term-names and type-names; kind-names have no Ref
// form anywhere in the grammar, so they are never free in anything).

func FreeTermNames(e Expr) map[Name]int {
	acc := make(map[Name]int)
	freeTermNamesAcc(e, acc)
	return acc
}

func FreeTypeNames(e Expr) map[Name]int {
	acc := make(map[Name]int)
	freeTypeNamesAcc(e, acc)
	return acc
}

func mergeInto(dst, src map[Name]int) {
	for n, c := range src {
		dst[n] += c
	}
}

func removeName(acc map[Name]int, n Name) {
	delete(acc, n)
}

func freeTermNamesAcc(e Expr, acc map[Name]int) {
	switch e.Sort() {
	case SortTerm:
		freeTermNamesInTerm(e.AsTerm(), acc)
	case SortType:
		freeTermNamesInType(e.AsType(), acc)
	case SortKind:
		freeTermNamesInKind(e.AsKind(), acc)
	}
}

func freeTermNamesInTerm(t Term, acc map[Name]int) {
	switch t := t.(type) {
	case TermRef:
		acc[t.Name]++
	case TermAbsTm:
		freeTermNamesInType(t.VarType, acc)
		sub := make(map[Name]int)
		freeTermNamesInTerm(t.Body, sub)
		removeName(sub, t.Var)
		mergeInto(acc, sub)
	case TermAppTm:
		freeTermNamesInTerm(t.Fn, acc)
		freeTermNamesInTerm(t.Arg, acc)
	case TermAbsTy:
		freeTermNamesInKind(t.VarKind, acc)
		freeTermNamesInTerm(t.Body, acc)
	case TermAppTy:
		freeTermNamesInTerm(t.Fn, acc)
		freeTermNamesInType(t.Arg, acc)
	default:
		panic("selftypes: unreachable term form")
	}
}

func freeTermNamesInType(ty Type, acc map[Name]int) {
	switch ty := ty.(type) {
	case TypeRef:
		// type-names are never term-free.
	case TypeAbsTm:
		freeTermNamesInType(ty.VarType, acc)
		sub := make(map[Name]int)
		freeTermNamesInType(ty.Body, sub)
		removeName(sub, ty.Var)
		mergeInto(acc, sub)
	case TypeAppTm:
		freeTermNamesInType(ty.Fn, acc)
		freeTermNamesInTerm(ty.Arg, acc)
	case TypeAbsTy:
		freeTermNamesInKind(ty.VarKind, acc)
		freeTermNamesInType(ty.Body, acc)
	case TypeAppTy:
		freeTermNamesInType(ty.Fn, acc)
		freeTermNamesInType(ty.Arg, acc)
	case TypeIota:
		sub := make(map[Name]int)
		freeTermNamesInType(ty.Body, sub)
		removeName(sub, ty.Var)
		mergeInto(acc, sub)
	default:
		panic("selftypes: unreachable type form")
	}
}

func freeTermNamesInKind(k Kind, acc map[Name]int) {
	switch k := k.(type) {
	case KindUnit:
	case KindAbsTm:
		freeTermNamesInType(k.VarType, acc)
		sub := make(map[Name]int)
		freeTermNamesInKind(k.Body, sub)
		removeName(sub, k.Var)
		mergeInto(acc, sub)
	case KindAbsTy:
		freeTermNamesInKind(k.VarKind, acc)
		freeTermNamesInKind(k.Body, acc)
	default:
		panic("selftypes: unreachable kind form")
	}
}

func freeTypeNamesAcc(e Expr, acc map[Name]int) {
	switch e.Sort() {
	case SortTerm:
		freeTypeNamesInTerm(e.AsTerm(), acc)
	case SortType:
		freeTypeNamesInType(e.AsType(), acc)
	case SortKind:
		freeTypeNamesInKind(e.AsKind(), acc)
	}
}

func freeTypeNamesInTerm(t Term, acc map[Name]int) {
	switch t := t.(type) {
	case TermRef:
		// term-names are never type-free.
	case TermAbsTm:
		freeTypeNamesInType(t.VarType, acc)
		freeTypeNamesInTerm(t.Body, acc)
	case TermAppTm:
		freeTypeNamesInTerm(t.Fn, acc)
		freeTypeNamesInTerm(t.Arg, acc)
	case TermAbsTy:
		freeTypeNamesInKind(t.VarKind, acc)
		sub := make(map[Name]int)
		freeTypeNamesInTerm(t.Body, sub)
		removeName(sub, t.Var)
		mergeInto(acc, sub)
	case TermAppTy:
		freeTypeNamesInTerm(t.Fn, acc)
		freeTypeNamesInType(t.Arg, acc)
	default:
		panic("selftypes: unreachable term form")
	}
}

func freeTypeNamesInType(ty Type, acc map[Name]int) {
	switch ty := ty.(type) {
	case TypeRef:
		acc[ty.Name]++
	case TypeAbsTm:
		freeTypeNamesInType(ty.VarType, acc)
		freeTypeNamesInType(ty.Body, acc)
	case TypeAppTm:
		freeTypeNamesInType(ty.Fn, acc)
		freeTypeNamesInTerm(ty.Arg, acc)
	case TypeAbsTy:
		freeTypeNamesInKind(ty.VarKind, acc)
		sub := make(map[Name]int)
		freeTypeNamesInType(ty.Body, sub)
		removeName(sub, ty.Var)
		mergeInto(acc, sub)
	case TypeAppTy:
		freeTypeNamesInType(ty.Fn, acc)
		freeTypeNamesInType(ty.Arg, acc)
	case TypeIota:
		freeTypeNamesInType(ty.Body, acc)
	default:
		panic("selftypes: unreachable type form")
	}
}

func freeTypeNamesInKind(k Kind, acc map[Name]int) {
	switch k := k.(type) {
	case KindUnit:
	case KindAbsTm:
		freeTypeNamesInType(k.VarType, acc)
		freeTypeNamesInKind(k.Body, acc)
	case KindAbsTy:
		freeTypeNamesInKind(k.VarKind, acc)
		sub := make(map[Name]int)
		freeTypeNamesInKind(k.Body, sub)
		removeName(sub, k.Var)
		mergeInto(acc, sub)
	default:
		panic("selftypes: unreachable kind form")
	}
}
