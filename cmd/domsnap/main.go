/*
Command domsnap writes a static snapshot of an HTML document.

    domsnap [flags] [file]

The document is read from file or, if missing, from stdin. The snapshot
is written as markup to stdout, as an outline with --tree, or as a
Graphviz digraph with --dot.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/domsnap"
	"github.com/npillmayer/domsnap/clone"
	"github.com/npillmayer/domsnap/dom/domdbg"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var traceKeys = []string{"domsnap.clone", "domsnap.dom", "domsnap.host", "domsnap.style"}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "domsnap: %s\n", err)
		os.Exit(1)
	}
}

type flags struct {
	root      string
	exclude   []string
	css       []string
	serialize bool
	tree      bool
	dot       bool
	verbose   bool
}

func rootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "domsnap [file]",
		Short: "Write a static snapshot of an HTML document",
		Long: `domsnap clones a subtree of an HTML document into static markup.

Styles are resolved from the document's <style> elements and inline
styles and written to style attributes. Canvases become images, iframes
with srcdoc are inlined and declarative shadow trees are flattened.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}
			return run(in, cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&f.root, "root", "r", "body", "selector for the root element")
	cmd.Flags().StringSliceVarP(&f.exclude, "exclude", "x", nil, "selectors for elements to leave out")
	cmd.Flags().StringSliceVar(&f.css, "css", nil, "additional stylesheet files")
	cmd.Flags().BoolVar(&f.serialize, "serialize", false, "copy resolved styles as serialized text")
	cmd.Flags().BoolVar(&f.tree, "tree", false, "print an outline instead of markup")
	cmd.Flags().BoolVar(&f.dot, "dot", false, "print a Graphviz digraph instead of markup")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "trace at debug level")
	return cmd
}

func run(in io.Reader, out io.Writer, f flags) error {
	level := tracing.LevelError
	if f.verbose {
		level = tracing.LevelDebug
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	cfg := domsnap.Config{
		Root:      f.root,
		Exclude:   f.exclude,
		Serialize: f.serialize,
		Diagnostics: func(d clone.Diagnostic) {
			fmt.Fprintf(os.Stderr, "domsnap: warning: %s\n", d)
		},
	}
	for _, name := range f.css {
		text, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		cfg.StyleSheets = append(cfg.StyleSheets, string(text))
	}
	snap, err := domsnap.Snapshot(in, cfg)
	if err != nil {
		return err
	}
	if snap == nil {
		return fmt.Errorf("root %q is excluded from the snapshot", f.root)
	}
	switch {
	case f.tree:
		_, err = fmt.Fprintln(out, domdbg.Clone(snap))
		return err
	case f.dot:
		return domdbg.ToGraphViz(snap, out, nil)
	}
	if err = domsnap.Render(out, snap); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}
