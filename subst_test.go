package selftypes

import "testing"

func TestSubstituteTermIntoTerm(t *testing.T) {
	x := TermName("x")
	a := TermName("a")
	base := TypeRef{Name: TypeName("Base")}
	body := TermAppTm{Fn: TermRef{Name: x}, Arg: TermRef{Name: x}}
	repl := TermRef{Name: a}
	got := Substitute(ExprTerm(body), x, ExprTerm(repl)).AsTerm()
	want := TermAppTm{Fn: repl, Arg: repl}
	if got != want {
		t.Fatalf("Substitute = %#v, want %#v", got, want)
	}
	_ = base
}

func TestSubstituteStopsAtShadowingBinder(t *testing.T) {
	x := TermName("x")
	a := TermName("a")
	base := TypeRef{Name: TypeName("Base")}
	inner := TermAbsTm{Var: x, VarType: base, Body: TermRef{Name: x}}
	got := Substitute(ExprTerm(inner), x, ExprTerm(TermRef{Name: a})).AsTerm()
	if got != inner {
		t.Fatalf("Substitute under shadowing binder = %#v, want unchanged %#v", got, inner)
	}
}

func TestSubstituteTermIntoType(t *testing.T) {
	x := TermName("x")
	a := TermName("a")
	vec := TypeRef{Name: TypeName("Vec")}
	ty := TypeAppTm{Fn: vec, Arg: TermRef{Name: x}}
	got := Substitute(ExprType(ty), x, ExprTerm(TermRef{Name: a})).AsType()
	want := TypeAppTm{Fn: vec, Arg: TermRef{Name: a}}
	if got != want {
		t.Fatalf("Substitute = %#v, want %#v", got, want)
	}
}

func TestSubstituteTypeIntoTerm(t *testing.T) {
	X := TypeName("X")
	Y := TypeName("Y")
	f := TermName("f")
	term := TermAppTy{Fn: TermRef{Name: f}, Arg: TypeRef{Name: X}}
	got := Substitute(ExprTerm(term), X, ExprType(TypeRef{Name: Y})).AsTerm()
	want := TermAppTy{Fn: TermRef{Name: f}, Arg: TypeRef{Name: Y}}
	if got != want {
		t.Fatalf("Substitute = %#v, want %#v", got, want)
	}
}

func TestSubstituteDoesNotCrossNamespaces(t *testing.T) {
	sameIdent := "v"
	x := TermName(sameIdent)
	X := TypeName(sameIdent)
	term := TermAppTy{Fn: TermRef{Name: x}, Arg: TypeRef{Name: X}}
	got := Substitute(ExprTerm(term), x, ExprTerm(TermRef{Name: TermName("replaced")})).AsTerm()
	want := TermAppTy{Fn: TermRef{Name: TermName("replaced")}, Arg: TypeRef{Name: X}}
	if got != want {
		t.Fatalf("Substitute = %#v, want %#v — type-name %s must survive a term-name substitution", got, want, X)
	}
}

func TestSubstituteIotaStopsAtSelfBinder(t *testing.T) {
	self := TermName("self")
	a := TermName("a")
	base := TypeRef{Name: TypeName("Base")}
	ty := TypeIota{Var: self, Body: TypeAppTm{Fn: base, Arg: TermRef{Name: self}}}
	got := Substitute(ExprType(ty), self, ExprTerm(TermRef{Name: a})).AsType()
	if got != ty {
		t.Fatalf("Substitute under iota's own binder = %#v, want unchanged %#v", got, ty)
	}
}
