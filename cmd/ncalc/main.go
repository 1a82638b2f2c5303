package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agenthands/ncalc/pkg/interp/lexer"
	"github.com/agenthands/ncalc/pkg/interp/parser"
)

const prompt = "calc> "

func main() {
	if len(os.Args) > 1 {
		// One-shot mode: evaluate each argument as one expression.
		code := 0
		for _, arg := range os.Args[1:] {
			result, err := evalLine([]byte(arg))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				code = 1
				continue
			}
			fmt.Println(result)
		}
		os.Exit(code)
	}

	if err := repl(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// repl reads one line per cycle, evaluates it with a fresh scanner and
// evaluator, and prints the result or a diagnostic. It returns when the
// input stream ends; a failed line never stops the loop.
func repl(r io.Reader, w io.Writer) error {
	in := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, prompt)
		if !in.Scan() {
			fmt.Fprintln(w)
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		result, err := evalLine([]byte(line))
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(w, result)
	}
}

func evalLine(src []byte) (int64, error) {
	s := lexer.NewScanner(src)
	e, err := parser.New(s)
	if err != nil {
		return 0, err
	}
	return e.Evaluate()
}
