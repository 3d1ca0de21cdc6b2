package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kakkky/codesearch/errs"
	"github.com/kakkky/codesearch/render"
	"github.com/kakkky/codesearch/repl"
	"github.com/kakkky/codesearch/search"
	"github.com/kakkky/codesearch/types"
	"github.com/kakkky/codesearch/version"
)

var (
	searchPath  string
	language    string
	symbolOnly  bool
	searchKey   string
	useRegex    bool
	interactive bool
	verbose     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "codesearch",
	Short: "a command line code search engine",
	Long: `codesearch searches source files under a path.

By default every line containing the key is listed. With --symbol only
declared names (functions, types, classes) are matched, using tree-sitter
grammars. With --interactive a symbol index is built and a prompt is opened.`,
	Version:       version.VERSION,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
	RunE: run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		version.PrintVersion()
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&searchPath, "path", "p", ".", "search path, a file or a directory")
	flags.StringVarP(&language, "language", "l", "", "only search files with this extension, e.g. rs, md")
	flags.BoolVarP(&symbolOnly, "symbol", "s", false, "only search symbols such as class and function names")
	flags.StringVarP(&searchKey, "key", "k", "", "keyword to search for")
	flags.BoolVarP(&useRegex, "reg", "r", false, "treat the key as a regular expression (slower)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "build a symbol index and start interactive mode")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

func initLogger() error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return errs.NewInternalError("failed to initialize logger").Wrap(err)
	}
	logger = l
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errs.HandleError(err)
		stop()
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	defer func() {
		_ = logger.Sync()
	}()

	if interactive {
		return runInteractive(cmd.Context())
	}
	if searchKey == "" {
		return errs.NewBadInputError("--key is required unless --interactive is set")
	}

	m, err := search.NewMatcher(searchKey, useRegex)
	if err != nil {
		return err
	}
	searcher := newSearcher()
	defer searcher.Close()

	results, err := searcher.Search(cmd.Context(), search.Options{
		Root:        searchPath,
		Extension:   types.Extension(language),
		Matcher:     m,
		SymbolsOnly: symbolOnly,
	})
	if err != nil {
		return err
	}
	render.Results(cmd.OutOrStdout(), results, m)
	return nil
}

func runInteractive(ctx context.Context) error {
	searcher := newSearcher()
	defer searcher.Close()

	index, err := searcher.BuildIndex(ctx, searchPath)
	if err != nil {
		return err
	}
	executor := repl.NewExecutor(index, searcher, logger)
	completer := repl.NewCompleter(index)
	repl.NewRepl(completer, executor).Run()
	return nil
}

// 端末に出力している場合のみ、走査の進捗をstderrに表示する
func newSearcher() *search.Searcher {
	searcher := search.NewSearcher(logger)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		searcher.SetProgress(render.NewProgressBar(os.Stderr))
	}
	return searcher
}
