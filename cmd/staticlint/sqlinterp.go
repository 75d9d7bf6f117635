package main

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// sqlMethods методы, первым строковым аргументом которых является текст SQL запроса.
// nolint:gochecknoglobals
var sqlMethods = map[string]bool{
	"Raw":             true,
	"Exec":            true,
	"ExecContext":     true,
	"Where":           true,
	"Query":           true,
	"QueryContext":    true,
	"QueryRow":        true,
	"QueryRowContext": true,
}

// SQLInterp определяет анализатор, который находит SQL, собранный конкатенацией или fmt.Sprintf
// и переданный в Raw/Exec/Where/Query/QueryRow. Значения должны идти плейсхолдерами.
// nolint:gochecknoglobals
var SQLInterp = &analysis.Analyzer{
	Name:     "sqlinterp",
	Doc:      "check for SQL strings built by concatenation or fmt.Sprintf",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runSQLInterp,
}

func runSQLInterp(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector) //nolint:errcheck,forcetypeassert

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr) //nolint:errcheck,forcetypeassert
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || !sqlMethods[sel.Sel.Name] {
			return
		}
		query := firstStringArg(pass, call.Args)
		if query == nil {
			return
		}
		if isInterpolated(pass, query) {
			pass.Reportf(query.Pos(), "SQL passed to %s is built dynamically, use placeholders", sel.Sel.Name)
		}
	})
	return nil, nil //nolint:nilnil
}

func firstStringArg(pass *analysis.Pass, args []ast.Expr) ast.Expr {
	for _, arg := range args {
		t := pass.TypesInfo.TypeOf(arg)
		if t == nil {
			continue
		}
		if b, ok := t.Underlying().(*types.Basic); ok && b.Info()&types.IsString != 0 {
			return arg
		}
	}
	return nil
}

// isInterpolated true для неконстантной конкатенации строк и вызова fmt.Sprintf.
func isInterpolated(pass *analysis.Pass, expr ast.Expr) bool {
	if tv, ok := pass.TypesInfo.Types[expr]; ok && tv.Value != nil {
		return false
	}

	switch e := ast.Unparen(expr).(type) {
	case *ast.BinaryExpr:
		return e.Op == token.ADD
	case *ast.CallExpr:
		sel, ok := e.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Sprintf" {
			return false
		}
		obj, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
		return ok && obj.Pkg() != nil && obj.Pkg().Path() == "fmt"
	}
	return false
}
