package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// ExitAnalyzer сообщает о вызовах, завершающих процесс из функции main
// пакета main. Такие вызовы пропускают отложенные действия: закрытие
// хранилища и остановку серверов.
var ExitAnalyzer = &analysis.Analyzer{
	Name:     "exitcheck",
	Doc:      "reports os.Exit and log.Fatal calls in func main of package main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runExitCheck,
}

var exitFuncs = map[string]map[string]bool{
	"os":  {"Exit": true},
	"log": {"Fatal": true, "Fatalf": true, "Fatalln": true},
}

func runExitCheck(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{(*ast.FuncDecl)(nil)}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
			return
		}

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			callee, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
			if !ok || callee.Pkg() == nil {
				return true
			}
			if exitFuncs[callee.Pkg().Path()][callee.Name()] {
				pass.Reportf(call.Pos(), "%s.%s called in main, return an error instead", callee.Pkg().Name(), callee.Name())
			}
			return true
		})
	})

	return nil, nil
}
