package cmd

import (
	"bufio"
	"fmt"
	"os"

	lox "github.com/cwbudde/go-lox"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox script, or start a REPL with no file",
	Long: `Execute a Lox program from a file, from -e, or interactively.

Examples:
  # Run a script file
  lox run script.lox

  # Evaluate inline source
  lox run -e "print 1 + 2;"

  # Start a REPL
  lox run`,
	Args: cobra.ArbitraryArgs,
	Run:  runLox,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of a file")
}

func runLox(cmd *cobra.Command, args []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	if evalExpr != "" {
		runSource(evalExpr, verbose)
		return
	}

	if len(args) > 1 {
		os.Exit(64)
	}

	if len(args) == 1 {
		runFile(args[0], verbose)
		return
	}

	runPrompt(verbose)
}

func runFile(path string, verbose bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		exitWithError("%v", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Running: %s\n", path)
		fmt.Fprintf(os.Stderr, "Input length: %d bytes\n", len(content))
	}

	interpreter := lox.New(os.Stdout, os.Stderr)
	interpreter.Run(string(content))

	if interpreter.HadError() {
		os.Exit(65)
	}
	if interpreter.HadRuntimeError() {
		os.Exit(70)
	}
}

func runSource(source string, verbose bool) {
	if verbose {
		fmt.Fprintf(os.Stderr, "Running inline source (%d bytes)\n", len(source))
	}

	interpreter := lox.New(os.Stdout, os.Stderr)
	interpreter.Run(source)

	if interpreter.HadError() {
		os.Exit(65)
	}
	if interpreter.HadRuntimeError() {
		os.Exit(70)
	}
}

func runPrompt(verbose bool) {
	interpreter := lox.New(os.Stdout, os.Stderr)
	scanner := bufio.NewScanner(os.Stdin)

	if verbose {
		fmt.Fprintln(os.Stderr, "Starting REPL (type exit() to quit)")
	}

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "exit()" {
			return
		}
		interpreter.Run(line)
		interpreter.ResetErrors()
	}
}
