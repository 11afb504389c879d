package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a Lox file and print the resulting tokens",
	Long: `Tokenize (lex) a Lox program and print the resulting tokens,
one per line, useful for debugging the lexer.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
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

	for _, tok := range tokens {
		fmt.Println(tok.String())
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Total tokens: %d\n", len(tokens))
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", e.Line, e.Message)
		}
		return fmt.Errorf("found %d lexical error(s)", len(errs))
	}

	return nil
}

func readSource(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
