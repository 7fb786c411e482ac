// annot - AST annotator
//
// Reads a source file and the external parser's raw AST dump (JSON), runs
// the annotation pass, and prints the annotated tree for inspection.
// Uses manual argument parsing so flags compose the way the rest of the
// toolchain expects (e.g. 'annot -k Binary prog.ms ast.json').
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coregx/coregex"

	"github.com/kolkov/annot"
	"github.com/kolkov/annot/ast"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
)

const (
	shortUsage = "usage: annot [-k kindregex] [-j] [-w window] srcfile [astfile]"
	longUsage  = `Arguments:
  srcfile           original source text
  astfile           raw AST dump (JSON) from the parser; stdin if omitted

Output options:
  -k kindregex      print only nodes whose kind matches the regex
  -j                print the annotated tree as JSON

Annotation options:
  -w window         positional search window (default 3)

Other:
  -h, --help        show this help message
  -version          show annot version and exit
`
)

func main() {
	kindPattern := ""
	jsonOut := false
	window := 0

	var i int
	for i = 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-k":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -k")
			}
			i++
			kindPattern = os.Args[i]
		case "-j":
			jsonOut = true
		case "-w":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -w")
			}
			i++
			n, err := strconv.Atoi(os.Args[i])
			if err != nil || n < 1 {
				errorExitf("invalid search window %q", os.Args[i])
			}
			window = n
		case "-h", "--help":
			fmt.Println(shortUsage)
			fmt.Println()
			fmt.Print(longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Println("annot", version)
			os.Exit(0)
		default:
			errorExitf("unknown flag %q\n%s", arg, shortUsage)
		}
	}

	args := os.Args[i:]
	if len(args) < 1 || len(args) > 2 {
		errorExitf("%s", shortUsage)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		errorExitf("%v", err)
	}

	var rawAST []byte
	if len(args) == 2 {
		rawAST, err = os.ReadFile(args[1])
	} else {
		rawAST, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		errorExitf("%v", err)
	}

	root, err := ast.Decode(rawAST)
	if err != nil {
		errorExitf("%v", err)
	}
	if root == nil {
		errorExitf("empty AST")
	}

	opts := &annot.Options{SearchWindow: window}
	if err := annot.AnnotateWithOptions(string(source), root, opts); err != nil {
		errorExitf("%v", err)
	}

	switch {
	case kindPattern != "":
		if err := printMatching(root, kindPattern); err != nil {
			errorExitf("%v", err)
		}
	case jsonOut:
		out, err := json.MarshalIndent(ast.NodeToMap(root), "", "  ")
		if err != nil {
			errorExitf("%v", err)
		}
		fmt.Println(string(out))
	default:
		if err := ast.Fprint(os.Stdout, root); err != nil {
			errorExitf("%v", err)
		}
	}
}

// printMatching prints one line per node whose kind name matches pattern.
// The pattern is anchored so 'For' does not also select 'Function'.
func printMatching(root ast.Node, pattern string) error {
	re, err := coregex.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return fmt.Errorf("invalid kind regex: %w", err)
	}
	return ast.Walk(root, func(n ast.Node) error {
		if re.MatchString(n.Kind().String()) {
			fmt.Println(ast.Describe(n))
		}
		return nil
	})
}

func errorExitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "annot: "+format+"\n", args...)
	os.Exit(2)
}
