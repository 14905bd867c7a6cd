package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/traitmix/internal/config"
	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/lexer"
	"github.com/funvibe/traitmix/internal/parser"
	"github.com/funvibe/traitmix/internal/pipeline"
	"github.com/funvibe/traitmix/internal/prettyprinter"
	"github.com/funvibe/traitmix/internal/registry"
	"github.com/funvibe/traitmix/internal/store"
	"github.com/funvibe/traitmix/internal/transform"
)

var (
	outDir    = flag.String("o", "", "directory for generated files (default: next to each input)")
	toStdout  = flag.Bool("stdout", false, "write expanded source to stdout instead of files")
	checkOnly = flag.Bool("check", false, "report diagnostics without writing any output")
	cachePath = flag.String("cache", "", "path of the persistent registry cache database")
	verbose   = flag.Bool("verbose", false, "log per-file progress to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file>... (or pipe from stdin)\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	os.Exit(run(flag.Args()))
}

func run(files []string) int {
	cfg, err := loadProjectConfig(files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	if *outDir != "" {
		cfg.Out = *outDir
	}
	if *cachePath != "" {
		cfg.Cache = *cachePath
	}

	session := registry.NewSession()
	if *verbose {
		fmt.Fprintf(os.Stderr, "traitmix: session %s\n", session.ID())
	}

	hadErrors := false

	var st *store.Store
	if cfg.Cache != "" {
		st, err = store.Open(cfg.Cache)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return 1
		}
		defer st.Close()

		if errs := st.Load(session); len(errs) > 0 {
			printDiagnostics(errs)
			hadErrors = true
		} else if *verbose {
			fmt.Fprintf(os.Stderr, "traitmix: loaded registry cache %s\n", cfg.Cache)
		}
	}

	if len(files) == 0 {
		source, err := readStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return 1
		}
		ctx := processUnit(source, "<stdin>", session)
		if len(ctx.Errors) > 0 {
			printDiagnostics(ctx.Errors)
			hadErrors = true
		} else if !*checkOnly {
			fmt.Print(ctx.Output)
		}
	}

	for _, path := range files {
		if !cfg.IsSourceFile(path) {
			fmt.Fprintf(os.Stderr, "Error: %s is not a recognized source file\n", path)
			hadErrors = true
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
			hadErrors = true
			continue
		}

		ctx := processUnit(string(data), path, session)
		if len(ctx.Errors) > 0 {
			printDiagnostics(ctx.Errors)
			hadErrors = true
			continue // no artifact for a failing unit
		}
		if *checkOnly {
			if *verbose {
				fmt.Fprintf(os.Stderr, "traitmix: %s ok\n", path)
			}
			continue
		}
		if *toStdout {
			fmt.Print(ctx.Output)
			continue
		}

		outPath := cfg.OutputPath(path)
		if err := writeOutput(outPath, ctx.Output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			hadErrors = true
			continue
		}
		if *verbose {
			fmt.Fprintf(os.Stderr, "traitmix: %s -> %s\n", path, outPath)
		}
	}

	if st != nil && !*checkOnly {
		if err := st.Save(session); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			hadErrors = true
		}
	}

	if hadErrors {
		return 1
	}
	return 0
}

// processUnit runs one translation unit through the full pipeline. The
// session is shared across units so registrations from earlier files are
// visible to later ones.
func processUnit(source, path string, session *registry.Session) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path
	ctx.Session = session

	processingPipeline := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&transform.Processor{},
		&prettyprinter.PrintProcessor{},
	)
	return processingPipeline.Run(ctx)
}

// loadProjectConfig finds traitmix.yaml upward from the first input file's
// directory (or the working directory for stdin) and falls back to defaults
// when none exists.
func loadProjectConfig(files []string) (*config.Config, error) {
	dir := "."
	if len(files) > 0 {
		dir = filepath.Dir(files[0])
	}
	path, err := config.FindConfig(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.ParseConfig(nil, "<defaults>")
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "traitmix: using config %s\n", path)
	}
	return config.LoadConfig(path)
}

func readStdin() (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("Usage: %s [flags] <file>... or pipe from stdin", os.Args[0])
	}
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("Error reading input: %w", err)
	}
	return string(input), nil
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printDiagnostics(errs []*diagnostics.DiagnosticError) {
	colorize := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	for _, err := range errs {
		if colorize {
			fmt.Fprintf(os.Stderr, "- \x1b[31m%s\x1b[0m\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "- %s\n", err.Error())
		}
	}
}
