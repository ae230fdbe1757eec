// Command parsedemo drives the increparse runtime against a YAML-scripted
// sequence of edits for one of the languages in the languages package,
// printing the resulting tree after each step. It exists to exercise the
// public API (New, Parse with and without an edit, SetDebugger) the way a
// real embedding host would, and to give a human a way to watch
// incremental reconciliation happen step by step.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/odvcencio/increparse"
	"github.com/odvcencio/increparse/languages"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "parsedemo:", err)
		os.Exit(1)
	}
}

func run() error {
	scenarioPath := pflag.StringP("scenario", "s", "", "path to a YAML edit scenario")
	languageFlag := pflag.StringP("language", "l", "", "override the scenario's language (arithmetic|flagset)")
	trace := pflag.BoolP("debug", "d", false, "attach a trace Debugger and print shift/reduce/error/reuse events")
	pflag.Parse()

	if *scenarioPath == "" {
		return errors.New("--scenario is required")
	}

	sc, err := loadScenario(*scenarioPath)
	if err != nil {
		return err
	}
	languageName := sc.Language
	if *languageFlag != "" {
		languageName = *languageFlag
	}

	lang, err := resolveLanguage(languageName)
	if err != nil {
		return err
	}

	parser, err := increparse.New(lang)
	if err != nil {
		return errors.Wrap(err, "construct parser")
	}
	defer parser.Destroy()

	if *trace {
		parser.SetDebugger(&traceDebugger{out: os.Stderr})
	}

	buf := newTextBuffer(sc.Initial)
	fmt.Printf("step 0: parse %q\n", buf.String())
	tree := parser.Parse(buf, nil)
	dumpTree(os.Stdout, tree, lang.SymbolNames, buf.bytes)

	for i, e := range sc.Edits {
		ie := buf.apply(e)
		fmt.Printf("step %d: edit %+v -> %q\n", i+1, ie, buf.String())
		tree = parser.Parse(buf, &ie)
		dumpTree(os.Stdout, tree, lang.SymbolNames, buf.bytes)
	}

	return nil
}

func resolveLanguage(name string) (*increparse.Language, error) {
	switch name {
	case "arithmetic":
		return languages.Arithmetic(), nil
	case "flagset":
		return languages.Flagset(), nil
	default:
		return nil, errors.Errorf("unknown language %q (want arithmetic or flagset)", name)
	}
}
