package selftypes

import "testing"

func names(ns ...Name) map[Name]int {
	m := make(map[Name]int)
	for _, n := range ns {
		m[n]++
	}
	return m
}

func mapEq(a, b map[Name]int) bool {
	if len(a) != len(b) {
		return false
	}
	for n, c := range a {
		if b[n] != c {
			return false
		}
	}
	return true
}

func TestFreeTermNamesRemovesBinder(t *testing.T) {
	x := TermName("x")
	y := TermName("y")
	base := TypeRef{Name: TypeName("Base")}
	term := TermAbsTm{Var: x, VarType: base, Body: TermAppTm{Fn: TermRef{Name: x}, Arg: TermRef{Name: y}}}
	got := FreeTermNames(ExprTerm(term))
	want := names(y)
	if !mapEq(got, want) {
		t.Fatalf("FreeTermNames = %v, want %v", got, want)
	}
}

func TestFreeTermNamesThroughIota(t *testing.T) {
	x := TermName("self")
	y := TermName("other")
	base := TypeRef{Name: TypeName("Base")}
	ty := TypeIota{Var: x, Body: TypeAppTm{Fn: base, Arg: TermRef{Name: x}}}
	got := FreeTermNames(ExprType(ty))
	if len(got) != 0 {
		t.Fatalf("FreeTermNames = %v, want empty (self is bound)", got)
	}
	ty2 := TypeIota{Var: x, Body: TypeAppTm{Fn: base, Arg: TermRef{Name: y}}}
	got2 := FreeTermNames(ExprType(ty2))
	if !mapEq(got2, names(y)) {
		t.Fatalf("FreeTermNames = %v, want %v", got2, names(y))
	}
}

func TestFreeTypeNamesRemovesTypeBinder(t *testing.T) {
	X := TypeName("X")
	Y := TypeName("Y")
	star := KindUnit{}
	term := TermAbsTy{Var: X, VarKind: star, Body: TermAppTy{Fn: TermRef{Name: TermName("f")}, Arg: TypeAppTy{Fn: TypeRef{Name: X}, Arg: TypeRef{Name: Y}}}}
	got := FreeTypeNames(ExprTerm(term))
	want := names(Y)
	if !mapEq(got, want) {
		t.Fatalf("FreeTypeNames = %v, want %v", got, want)
	}
}

func TestFreeNamesIndependentAcrossNamespaces(t *testing.T) {
	x := TermName("v")
	X := TypeName("v")
	ref := TypeAppTm{Fn: TypeRef{Name: X}, Arg: TermRef{Name: x}}
	termFree := FreeTermNames(ExprType(ref))
	typeFree := FreeTypeNames(ExprType(ref))
	if !mapEq(termFree, names(x)) {
		t.Fatalf("FreeTermNames = %v, want %v", termFree, names(x))
	}
	if !mapEq(typeFree, names(X)) {
		t.Fatalf("FreeTypeNames = %v, want %v", typeFree, names(X))
	}
}
