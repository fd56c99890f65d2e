package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/psychoticbeef/mcdctree/analysis"
	"github.com/psychoticbeef/mcdctree/internal/hostgo"
	"github.com/psychoticbeef/mcdctree/treecheck"
)

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mcdctree", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "emit structured JSON output")
	summaryOut := fs.Bool("summary", false, "print only the aggregate summary")
	maxReorder := fs.Int("max-reorder-vars", 0, "maximum decision arity eligible for reorder search (0 = use config/default)")
	exclude := fs.String("exclude", "", "comma-separated glob patterns to exclude")
	ext := fs.String("file-ext", ".go", "file extension handled by the host binding when a path argument is a plain file")
	fs.Usage = usage
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("mcdctree: at least one file or directory argument required")
	}

	// The analysis root is the first path argument, or its directory when
	// that argument is a plain file.
	root := fs.Arg(0)
	if info, statErr := os.Stat(root); statErr == nil && !info.IsDir() {
		root = filepath.Dir(root)
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if *maxReorder > 0 {
		cfg.MaxReorderVars = *maxReorder
	}
	if *exclude != "" {
		cfg.Excludes = strings.Split(*exclude, ",")
	}

	opts := []treecheck.Option{treecheck.WithMaxReorderVariables(cfg.MaxReorderVars)}
	facade := analysis.NewFacade(hostgo.NewFileParser(), hostgo.NewDirLoader(cfg.Excludes), opts...)

	var files []analysis.FileAnalysis
	var ioErrs []error
	for _, arg := range fs.Args() {
		info, statErr := os.Stat(arg)
		if statErr != nil {
			ioErrs = append(ioErrs, statErr)
			continue
		}
		if info.IsDir() {
			multi, parseErrs := facade.AnalyzeDir(arg)
			files = append(files, multi.Files...)
			for _, e := range parseErrs {
				log.Printf("mcdctree: %v", e)
			}
			continue
		}
		if filepath.Ext(arg) != *ext {
			continue
		}
		fa, parseErr := facade.AnalyzeFile(arg)
		if parseErr != nil {
			// ParseError: the file is reported and skipped without any
			// partial analysis of what did parse; a single file's parse
			// failure is not fatal to the run.
			log.Printf("mcdctree: %v", parseErr)
			continue
		}
		files = append(files, fa)
	}
	if len(ioErrs) > 0 {
		return errors.Join(ioErrs...)
	}

	report := analysis.MultiFileAnalysis{Files: files, Summary: analysis.Summarize(files)}
	return printReport(os.Stdout, report, *jsonOut, *summaryOut)
}

func printReport(w io.Writer, report analysis.MultiFileAnalysis, jsonOut, summaryOnly bool) error {
	if jsonOut {
		data, err := report.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	s := report.Summary
	fmt.Fprintf(w, "files analyzed:        %d\n", s.FilesAnalyzed)
	fmt.Fprintf(w, "functions analyzed:    %d\n", s.TotalFunctions)
	fmt.Fprintf(w, "functions w/decisions: %d\n", s.FunctionsWithDecisions)
	fmt.Fprintf(w, "decisions total:       %d\n", s.TotalDecisions)
	fmt.Fprintf(w, "  tree:                %d\n", s.TreeDecisions)
	fmt.Fprintf(w, "  correctable:         %d\n", s.CorrectableDecisions)
	fmt.Fprintf(w, "  non-correctable:     %d\n", s.NonCorrectableDecisions)
	if summaryOnly {
		return nil
	}

	for _, entry := range s.NonTreeEntries {
		fmt.Fprintf(w, "\n%s:%d %s\n", entry.File, entry.Line, entry.Function)
		for _, d := range entry.Decisions {
			fmt.Fprintf(w, "  %s (%d conditions, %d nodes)", d.Classification, d.ConditionCount, d.NodeCount)
			if d.SuggestedOrder != nil {
				fmt.Fprintf(w, " -> try order %v", d.SuggestedOrder)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
