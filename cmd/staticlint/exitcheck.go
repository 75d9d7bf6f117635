package main

import (
	"go/ast"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// NoDirectOsExit определяет анализатор, который запрещает прямой вызов os.Exit
// в функции main пакета main: сервер должен завершаться через отмену контекста.
// nolint:gochecknoglobals
var NoDirectOsExit = &analysis.Analyzer{
	Name:     "nodirectosexit",
	Doc:      "check for direct os.Exit calls in main function",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runExitCheck,
}

func runExitCheck(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil //nolint:nilnil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector) //nolint:errcheck,forcetypeassert

	insp.WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push || !insideMain(stack) {
			return true
		}
		call := n.(*ast.CallExpr) //nolint:errcheck,forcetypeassert
		if !isOsExit(pass, call) {
			return true
		}

		position := pass.Fset.Position(call.Pos())
		// файлы из кэша сборки генерируются go test
		if strings.Contains(position.Filename, "go-build") {
			return true
		}
		pass.Reportf(
			call.Pos(),
			"%s:%d: direct call os.Exit is not allowed in main function",
			filepath.Base(position.Filename),
			position.Line,
		)
		return true
	})
	return nil, nil //nolint:nilnil
}

// insideMain true, если ближайшая объемлющая функция верхнего уровня - main.
func insideMain(stack []ast.Node) bool {
	for _, n := range stack {
		if fn, ok := n.(*ast.FuncDecl); ok {
			return fn.Recv == nil && fn.Name.Name == "main"
		}
	}
	return false
}

func isOsExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Exit" {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "os"
}
