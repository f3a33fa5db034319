// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/mdhender/domtree"
	"github.com/mdhender/domtree/edits"
	"github.com/mdhender/domtree/htmlsrc"
	"github.com/mdhender/domtree/parser"
	"github.com/mdhender/domtree/pipelines/stages"
	"github.com/mdhender/domtree/renderer"
	store "github.com/mdhender/domtree/stores/sqlite"
	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "domtree",
		Short: "line-format document tree utility",
		Long:  `Build, edit and render trees from one-token-per-line markup documents`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			} else if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				slog.SetLogLoggerLevel(slog.LevelError)
			}

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("domtree: version %q\n", domtree.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdRender())
	cmdRoot.AddCommand(cmdPrint())
	cmdRoot.AddCommand(cmdLex())
	cmdRoot.AddCommand(cmdRename())
	cmdRoot.AddCommand(cmdRemove())
	cmdRoot.AddCommand(cmdWrap())
	cmdRoot.AddCommand(cmdBold())
	cmdRoot.AddCommand(cmdEdit())
	cmdRoot.AddCommand(cmdImport())
	cmdRoot.AddCommand(cmdHistory())
	cmdRoot.AddCommand(cmdInitDB())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

// debugLogger returns the default logger with --debug, otherwise nil.
// Warnings are reported by the commands themselves.
func debugLogger(cmd *cobra.Command) *slog.Logger {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return slog.Default()
	}
	return nil
}

// parseFile builds the tree for path and reports lexer warnings on stderr
// unless --quiet is set.
func parseFile(cmd *cobra.Command, path string) (*domtree.Tree, error) {
	quiet, _ := cmd.Flags().GetBool("quiet")
	p, err := parser.New(path, parser.WithStripCR(true), parser.WithLogger(debugLogger(cmd)))
	if err != nil {
		return nil, err
	}
	tree, diags, err := p.Parse(context.Background())
	if err != nil {
		return nil, err
	}
	if !quiet {
		for _, diag := range diags {
			domtree.PrintDiagnostic(os.Stderr, diag, path, p.Input())
		}
	}
	return tree, nil
}

func cmdRender() *cobra.Command {
	var outline, crlf, html bool
	var outputFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&crlf, "crlf", crlf, "end lines with CR LF")
		cmd.Flags().BoolVar(&html, "html", html, "input is an HTML document")
		cmd.Flags().BoolVar(&outline, "outline", outline, "render as an indented outline")
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save rendering to file")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "render <file>",
		Short:        "build a tree from a file and render it",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tree *domtree.Tree
			if html {
				var err error
				if tree, err = importHTML(args[0]); err != nil {
					return err
				}
			} else {
				var err error
				if tree, err = parseFile(cmd, args[0]); err != nil {
					return err
				}
			}

			options := []renderer.Option{}
			if outline {
				options = append(options, renderer.WithMode(renderer.Outline))
			}
			if crlf {
				options = append(options, renderer.WithLineEnding("\r\n"))
			}
			r, err := renderer.New(options...)
			if err != nil {
				return err
			}

			w := os.Stdout
			if outputFile != "" {
				fp, err := os.Create(outputFile)
				if err != nil {
					return err
				}
				defer fp.Close()
				w = fp
			}
			return r.Render(w, tree)
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdPrint() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "print <file>",
		Short:        "print the tree built from a file as an outline",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := parseFile(cmd, args[0])
			if err != nil {
				return err
			}
			return tree.Print(os.Stdout)
		},
	}
	return cmd
}

func cmdLex() *cobra.Command {
	unknownOnly := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&unknownOnly, "unknown-only", unknownOnly, "only show lines that look like tags but are text")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "lex <file>",
		Short:        "list the tokens of a file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			input, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			l := domtree.NewLexer(context.Background(), file, input, debugLogger(cmd))
			tokenCounter, maxTokens := 0, len(input)+1
			for tokenCounter < maxTokens {
				tok := l.Scan()
				if tok == nil {
					panic("assert(l.scan != nil)")
				}
				tokenCounter++
				if tok.Kind == domtree.EndOfInput {
					break
				}
				if !unknownOnly {
					fmt.Printf("%-35s %5d %-10s %q\n", fmt.Sprintf("%s:%d:%d:", file, tok.Line, tok.Column), tokenCounter, tok.Kind, tok.Lexeme(input))
				}
			}
			for _, diag := range l.Diagnostics() {
				domtree.PrintDiagnostic(os.Stdout, diag, file, input)
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// editFlags are shared by every command that changes a document.
type editFlags struct {
	outputFile string
	dbPath     string
	docName    string
	html       bool
}

func (f *editFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dbPath, "db", f.dbPath, "record revisions in this database")
	cmd.Flags().StringVar(&f.docName, "doc", f.docName, "document name for revisions (default is the input path)")
	cmd.Flags().BoolVar(&f.html, "html", f.html, "input is an HTML document")
	cmd.Flags().StringVarP(&f.outputFile, "output", "o", f.outputFile, "save result to file")
}

// run applies the script (or the script file) to the input and prints or
// saves the result.
func (f *editFlags) run(cmd *cobra.Command, input string, script *edits.Script, scriptPath string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var revStore stages.RevisionStore
	if f.dbPath != "" {
		sqlStore, err := store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: f.dbPath})
		if err != nil {
			return err
		}
		defer sqlStore.Close()
		revStore = sqlStore
	}

	svc := stages.NewEditService(revStore, debugLogger(cmd))
	result, err := svc.Run(context.Background(), stages.EditRequest{
		Input:      input,
		HTML:       f.html,
		Output:     f.outputFile,
		Script:     script,
		ScriptPath: scriptPath,
		Document:   f.docName,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", stages.ErrorCode(err), err)
	}

	if !quiet {
		for _, diag := range result.Diagnostics {
			log.Printf("%s:%d:%d: %s\n", input, diag.Span.Line, diag.Span.Column, diag.Message)
		}
	}
	if verbose {
		for _, rev := range result.Revisions {
			log.Printf("revision %d: %s %s\n", rev.Seq, rev.Hash[:12], rev.Op)
		}
	}
	if f.outputFile == "" {
		fmt.Print(result.Text)
	} else if !quiet {
		log.Printf("%s: wrote %d bytes\n", f.outputFile, len(result.Text))
	}
	return nil
}

func singleStep(step edits.Step) *edits.Script {
	return &edits.Script{Edits: []edits.Step{step}}
}

func cmdRename() *cobra.Command {
	var flags editFlags
	var cmd = &cobra.Command{
		Use:          "rename <file> <old-tag> <new-tag>",
		Short:        "rename every element with a given tag",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, args[0], singleStep(edits.Step{Op: edits.OpRename, Old: args[1], New: args[2]}), "")
		},
	}
	flags.add(cmd)
	return cmd
}

func cmdRemove() *cobra.Command {
	var flags editFlags
	var cmd = &cobra.Command{
		Use:          "remove <file> <tag>",
		Short:        "remove every element with a given tag, keeping its children",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, args[0], singleStep(edits.Step{Op: edits.OpRemove, Tag: args[1]}), "")
		},
	}
	flags.add(cmd)
	return cmd
}

func cmdWrap() *cobra.Command {
	var flags editFlags
	var cmd = &cobra.Command{
		Use:          "wrap <file> <word> <tag>",
		Short:        "wrap every whole-word occurrence of a word in a tag",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, args[0], singleStep(edits.Step{Op: edits.OpWrap, Word: args[1], Tag: args[2]}), "")
		},
	}
	flags.add(cmd)
	return cmd
}

func cmdBold() *cobra.Command {
	var flags editFlags
	var cmd = &cobra.Command{
		Use:          "bold <file> <row>",
		Short:        "bold the cells of a table row (rows start at 1)",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("row: %w", err)
			}
			return flags.run(cmd, args[0], singleStep(edits.Step{Op: edits.OpBold, Row: row}), "")
		},
	}
	flags.add(cmd)
	return cmd
}

func cmdEdit() *cobra.Command {
	var flags editFlags
	var scriptFile string
	var cmd = &cobra.Command{
		Use:          "edit <file>",
		Short:        "apply a YAML edit script to a file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, args[0], nil, scriptFile)
		},
	}
	flags.add(cmd)
	cmd.Flags().StringVarP(&scriptFile, "script", "s", scriptFile, "edit script")
	if err := cmd.MarkFlagRequired("script"); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func importHTML(path string) (*domtree.Tree, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	lines, err := htmlsrc.Segment(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return domtree.BuildLines(lines), nil
}

func cmdImport() *cobra.Command {
	var outputFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save document to file")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "import <html-file>",
		Short:        "convert an HTML document to the line format",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := importHTML(args[0])
			if err != nil {
				return err
			}
			text := tree.Render()
			if outputFile == "" {
				fmt.Print(text)
				return nil
			}
			if err := os.WriteFile(outputFile, []byte(text), 0o644); err != nil {
				return err
			}
			log.Printf("%s: wrote %d bytes\n", outputFile, len(text))
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdHistory() *cobra.Command {
	var dbPath, docName string
	var showText bool
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "revision database")
		cmd.Flags().StringVar(&docName, "doc", docName, "document name")
		cmd.Flags().BoolVar(&showText, "show-text", showText, "print the text of each revision")
		if err := cmd.MarkFlagRequired("db"); err != nil {
			return err
		}
		return cmd.MarkFlagRequired("doc")
	}
	var cmd = &cobra.Command{
		Use:          "history",
		Short:        "list the revisions recorded for a document",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sqlStore, err := store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: dbPath})
			if err != nil {
				return err
			}
			defer sqlStore.Close()

			doc, err := sqlStore.GetDocumentByName(ctx, docName)
			if err != nil {
				return err
			} else if doc == nil {
				return fmt.Errorf("%s: no such document", docName)
			}
			revs, err := sqlStore.ListRevisions(ctx, doc.ID)
			if err != nil {
				return err
			}
			for _, rev := range revs {
				fmt.Printf("%4d  %s  %s  %s\n", rev.Seq, rev.CreatedAt.Format("2006-01-02 15:04:05"), rev.Hash[:12], rev.Op)
				if showText {
					fmt.Print(rev.Text)
				}
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdInitDB() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "init-db <path>",
		Short:        "create a new revision database",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.InitDatabase(args[0]); err != nil {
				return err
			}
			log.Printf("%s: created database\n", args[0])
			return nil
		},
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(domtree.Version().String())
				return nil
			}
			fmt.Println(domtree.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
