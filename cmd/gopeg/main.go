package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/codegen"
	"github.com/npillmayer/gopeg/grammar"
	"github.com/npillmayer/gopeg/interp"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// tracer traces with key 'gopeg.cli'.
func tracer() tracing.Trace {
	return tracing.Select("gopeg.cli")
}

var (
	grammarPath string
	inputPath   string
	tlevel      string
	moduleDir   string
	keepTemp    bool
)

// main() starts the gopeg command: given a PEG grammar it prints the
// generated parser source, or — with an input file — compiles the
// generated parser and prints the input's syntax-tree dump. The repl
// subcommand parses input lines interactively with the interpreted
// grammar.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()

	rootCmd := &cobra.Command{
		Use:           "gopeg",
		Short:         "Generate recursive-descent parsers from PEG grammars",
		Long:          "gopeg generates Go parsers from Parsing Expression Grammars.\nWith only a grammar it prints the generated parser source; with an\ninput file it compiles the parser and prints the input's syntax tree.",
		SilenceUsage:  false,
		SilenceErrors: true,
		RunE:          runGenerate,
	}
	addCommonFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to input `FILE` to parse with the grammar")
	rootCmd.Flags().StringVar(&moduleDir, "module-dir", "", "Local path of the gopeg module for compiling generated parsers")
	rootCmd.Flags().BoolVar(&keepTemp, "keep-temp", false, "Keep the temporary build module")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse input lines interactively with an interpreted grammar",
		RunE:  runRepl,
	}
	rootCmd.AddCommand(replCmd)

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func addCommonFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&grammarPath, "grammar", "g", "", "Path to PEG grammar `FILE`")
	flags.StringVar(&tlevel, "trace", "Info", "Trace level [Debug|Info|Error]")
}

func loadGrammarTree() (*gopeg.Node, []byte, error) {
	if grammarPath == "" {
		return nil, nil, fmt.Errorf("missing -g option")
	}
	src, err := ioutil.ReadFile(grammarPath)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't read grammar file: %w", err)
	}
	tree, ok := grammar.Parse(src)
	if !ok {
		return nil, nil, fmt.Errorf("couldn't parse given PEG grammar")
	}
	return tree, src, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tracer().SetTraceLevel(traceLevel(tlevel))
	tree, _, err := loadGrammarTree()
	if err != nil {
		return err
	}
	code, err := codegen.Generate(tree)
	if err != nil {
		return err
	}
	if inputPath == "" {
		fmt.Print(code)
		return nil
	}
	cfg := codegen.Config{
		ModuleDir: moduleDir,
		KeepTemp:  keepTemp,
	}
	status, err := cfg.PrintParseTree(code, inputPath)
	if err != nil {
		return err
	}
	if status != 0 {
		os.Exit(status)
	}
	return nil
}

func runRepl(cmd *cobra.Command, args []string) error {
	tracer().SetTraceLevel(traceLevel(tlevel))
	_, src, err := loadGrammarTree()
	if err != nil {
		return err
	}
	g, err := interp.NewGrammar(src)
	if err != nil {
		return err
	}
	pterm.Info.Println("Welcome to the gopeg REPL")
	pterm.Info.Printf("Entry rule is %s\n", g.EntryRule())
	tracer().Infof("Quit with <ctrl>D")
	repl, err := readline.New("gopeg> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		root, ok := g.Parse([]byte(line))
		if !ok {
			pterm.Error.Println("input does not match the grammar")
			continue
		}
		printTree(root)
	}
	return nil
}

func printTree(root *gopeg.Node) {
	fmt.Print(root.TreeString())
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
