package selftypes

import "testing"

func TestEvaluateBetaTerm(t *testing.T) {
	x := TermName("x")
	base := TypeRef{Name: TypeName("Base")}
	id := TermAbsTm{Var: x, VarType: base, Body: TermRef{Name: x}}
	arg := TermRef{Name: TermName("a")}
	app := TermAppTm{Fn: id, Arg: arg}
	got := Evaluate(ExprTerm(app), EmptyContext{}).AsTerm()
	if got != arg {
		t.Fatalf("Evaluate(id a) = %v, want %v", got, arg)
	}
}

func TestEvaluateDeltaExpandsClosureBinding(t *testing.T) {
	f := TermName("f")
	base := TypeRef{Name: TypeName("Base")}
	body := TermRef{Name: TermName("impl")}
	closure := Closure{
		Terms: map[Name]TermBinding{f: {Type: base, Body: body}},
		Types: map[Name]TypeBinding{},
		Kinds: map[Name]Kind{},
	}
	ctx := ExtendClosure(EmptyContext{}, closure)
	got := Evaluate(ExprTerm(TermRef{Name: f}), ctx).AsTerm()
	if got != body {
		t.Fatalf("Evaluate(f) = %v, want δ-expansion %v", got, body)
	}
}

func TestEvaluateStopsAtHypothesis(t *testing.T) {
	x := TermName("x")
	base := TypeRef{Name: TypeName("Base")}
	ctx := ExtendTyping(EmptyContext{}, x, base)
	want := TermRef{Name: x}
	got := Evaluate(ExprTerm(TermRef{Name: x}), ctx).AsTerm()
	if got != want {
		t.Fatalf("Evaluate(x) under a hypothesis binding = %v, want x unchanged", got)
	}
}

func TestEvaluateDoesNotReduceUnderBinder(t *testing.T) {
	x := TermName("x")
	y := TermName("y")
	base := TypeRef{Name: TypeName("Base")}
	id := TermAbsTm{Var: y, VarType: base, Body: TermRef{Name: y}}
	stuckBody := TermAppTm{Fn: id, Arg: TermRef{Name: TermName("z")}}
	outer := TermAbsTm{Var: x, VarType: base, Body: stuckBody}
	got := Evaluate(ExprTerm(outer), EmptyContext{}).AsTerm()
	if got != outer {
		t.Fatalf("Evaluate reduced under a binder: got %v, want unchanged %v", got, outer)
	}
}

func TestEvaluateTypeBeta(t *testing.T) {
	x := TermName("x")
	base := TypeRef{Name: TypeName("Base")}
	family := TypeAbsTm{Var: x, VarType: base, Body: TypeAppTm{Fn: TypeRef{Name: TypeName("Vec")}, Arg: TermRef{Name: x}}}
	arg := TermRef{Name: TermName("n")}
	applied := TypeAppTm{Fn: family, Arg: arg}
	got := Evaluate(ExprType(applied), EmptyContext{}).AsType()
	want := TypeAppTm{Fn: TypeRef{Name: TypeName("Vec")}, Arg: arg}
	if got != want {
		t.Fatalf("Evaluate = %v, want %v", got, want)
	}
}
