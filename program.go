package selftypes

// ElaborateProgram folds a Prgm's Stmts into ctx left to right, pushing one
// ClosureContext frame per accepted Stmt so that later statements can refer
// to earlier ones but never the reverse. It generalizes the teacher's
// main() loop over lexer.cmds (fullsimple.go), minus identifier
// resolution: the grammar collaborator already hands back resolved Names.
// The first ill-typed or ill-kinded statement stops elaboration and
// returns its error; nothing is partially committed for that statement.
func ElaborateProgram(p Prgm, ctx Context) (Context, error) {
	for _, stmt := range p {
		next, err := elaborateStmt(stmt, ctx)
		if err != nil {
			return ctx, err
		}
		ctx = next
	}
	return ctx, nil
}

func elaborateStmt(stmt Stmt, ctx Context) (Context, error) {
	var closure Closure
	switch stmt := stmt.(type) {
	case DefnTm:
		closure = Closure{
			Terms: map[Name]TermBinding{stmt.Name: {Type: stmt.Type, Body: stmt.Body}},
			Types: map[Name]TypeBinding{},
			Kinds: map[Name]Kind{},
		}
	case DefnTy:
		closure = Closure{
			Terms: map[Name]TermBinding{},
			Types: map[Name]TypeBinding{stmt.Name: {Kind: stmt.Kind, Type: stmt.Type}},
			Kinds: map[Name]Kind{},
		}
	default:
		panic("selftypes: unreachable stmt form")
	}
	if err := WellFormedClosure(closure, ctx); err != nil {
		return ctx, err
	}
	return ExtendClosure(ctx, closure), nil
}
