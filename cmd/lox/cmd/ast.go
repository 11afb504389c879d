package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/astjson"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/spf13/cobra"
)

var astPretty bool

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a Lox file and print its AST as JSON",
	Long: `Parse a Lox program and print its Abstract Syntax Tree as JSON.

If no file is given, reads from stdin. Use --pretty for indented output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().BoolVar(&astPretty, "pretty", false, "indent the JSON output")
}

func runAST(cmd *cobra.Command, args []string) error {
	input, err := readSource(args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Input length: %d bytes\n", len(input))
	}

	l := lexer.New(input)
	tokens := l.ScanTokens()
	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", e.Line, e.Message)
		}
		return fmt.Errorf("found %d lexical error(s)", len(lexErrs))
	}

	p := parser.New(tokens)
	statements := p.Parse()
	if parseErrs := p.Errors(); len(parseErrs) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(parseErrs, false))
		return fmt.Errorf("parsing failed with %d error(s)", len(parseErrs))
	}

	doc, err := astjson.Marshal(statements, astPretty)
	if err != nil {
		return fmt.Errorf("failed to render AST: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Total nodes: %d\n", astjson.NodeCount(doc))
	}

	fmt.Println(doc)
	return nil
}
