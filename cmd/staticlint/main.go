// Command staticlint запускает анализаторы, которыми проверяется проект:
//
//   - atomic, printf, shadow и structtag из golang.org/x/tools;
//   - все проверки SA из staticcheck;
//   - ST1000 (комментарий пакета) из stylecheck;
//   - errcheck;
//   - exitcheck, запрещающий os.Exit и log.Fatal в функции main.
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/kisielk/errcheck/errcheck"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		atomic.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
	}

	for _, v := range staticcheck.Analyzers {
		if strings.HasPrefix(v.Analyzer.Name, "SA") {
			list = append(list, v.Analyzer)
		}
	}
	for _, v := range stylecheck.Analyzers {
		if v.Analyzer.Name == "ST1000" {
			list = append(list, v.Analyzer)
		}
	}

	return append(list, errcheck.Analyzer, ExitAnalyzer)
}

func main() {
	multichecker.Main(analyzers()...)
}
