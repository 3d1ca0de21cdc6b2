package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kakkky/codesearch/errs"
	"github.com/kakkky/codesearch/lang"
	"github.com/kakkky/codesearch/render"
	"github.com/kakkky/codesearch/search"
	"github.com/kakkky/codesearch/symbols"
	"github.com/kakkky/codesearch/types"
)

const (
	quitCommand    = "quit()"
	helpCommand    = "help"
	outlineCommand = "outline"
	searchCommand  = "search"
)

const helpText = `commands:
  outline <file>        print the outline of a source file
  search <path> <key>   search text under path
  help                  show this help
  quit()                exit interactive mode
anything else is looked up in the symbol index`

// Executor は対話モードで入力された1行を解釈して実行する
type Executor struct {
	index    *search.Index
	searcher *search.Searcher
	selector fileSelector
	out      io.Writer
	logger   *zap.Logger
}

// NewExecutor はExecutorのインスタンスを生成する
func NewExecutor(index *search.Index, searcher *search.Searcher, logger *zap.Logger) *Executor {
	return newExecutor(index, searcher, newPromptFileSelector(os.Stdout), os.Stdout, logger)
}

func newExecutor(index *search.Index, searcher *search.Searcher, selector fileSelector, out io.Writer, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		index:    index,
		searcher: searcher,
		selector: selector,
		out:      out,
		logger:   logger,
	}
}

// Execute はgo-promptのExecutorとして呼ばれる
// エラーは表示するだけで、対話モードは継続する
func (e *Executor) Execute(input string) {
	if err := e.execute(input); err != nil {
		errs.HandleError(err)
	}
}

// ShouldExit はquit()が確定入力された場合にtrueを返す
func (e *Executor) ShouldExit(input string, breakline bool) bool {
	return breakline && input == quitCommand
}

func (e *Executor) execute(input string) error {
	fields := strings.Fields(input)
	e.logger.Debug("execute", zap.String("input", input))
	switch {
	case input == quitCommand:
		fmt.Fprintln(e.out, "exit interactive mode")
		return nil
	case len(fields) > 0 && fields[0] == outlineCommand:
		return e.outline(fields[1:])
	case len(fields) > 0 && fields[0] == searchCommand:
		return e.search(fields[1:])
	case strings.TrimRight(input, " \t") == helpCommand:
		fmt.Fprintln(e.out, helpText)
		return nil
	case len(fields) == 0:
		return errs.NewBadInputError("keyword must not be empty")
	default:
		render.IndexHits(e.out, e.index.Lookup(input), input)
		return nil
	}
}

func (e *Executor) outline(args []string) error {
	if len(args) != 1 {
		return errs.NewBadInputError("invalid arguments: usage outline <file>")
	}
	path, err := e.resolveFile(args[0])
	if err != nil {
		return err
	}
	ext := search.ExtensionOf(string(path))
	q, ok := lang.ForExtension(ext)
	if !ok {
		return errs.NewUnsupportedLanguageError(string(ext))
	}
	code, err := os.ReadFile(string(path))
	if err != nil {
		return errs.NewInternalError(fmt.Sprintf("failed to read file %s", path)).Wrap(err)
	}
	entries, err := e.searcher.Parser().Outline(context.Background(), code, q)
	if err != nil {
		return err
	}
	symbols.WriteOutline(e.out, entries)
	return nil
}

// resolveFile は作業ディレクトリ、インデックスのルートの順にパスを解決する
// どちらにも存在しなければ、同名のファイルをインデックスから探す
func (e *Executor) resolveFile(arg string) (types.FilePath, error) {
	for _, candidate := range []string{arg, filepath.Join(e.index.Root(), arg)} {
		if isSourceFile(candidate) {
			return types.FilePath(candidate), nil
		}
	}
	matched := e.index.FilesByBase(filepath.Base(arg))
	switch len(matched) {
	case 0:
		return "", errs.NewBadInputError(fmt.Sprintf("file path does not exist: %s", arg))
	case 1:
		return matched[0], nil
	default:
		return e.selector.selectFile(matched)
	}
}

func isSourceFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return search.ExtensionOf(path) != ""
}

func (e *Executor) search(args []string) error {
	if len(args) < 2 {
		return errs.NewBadInputError("invalid arguments: usage search <path> <key>")
	}
	root := args[0]
	if _, err := os.Stat(root); err != nil {
		root = filepath.Join(e.index.Root(), root)
	}
	m, err := search.NewMatcher(strings.Join(args[1:], " "), false)
	if err != nil {
		return err
	}
	results, err := e.searcher.Search(context.Background(), search.Options{
		Root:    root,
		Matcher: m,
	})
	if err != nil {
		return err
	}
	render.Results(e.out, results, m)
	return nil
}
