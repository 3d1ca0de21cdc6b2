package search

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/kakkky/codesearch/lang"
	"github.com/kakkky/codesearch/symbols"
	"github.com/kakkky/codesearch/types"
)

// Options は一回の検索の条件を表す
type Options struct {
	Root      string
	Extension types.Extension
	Matcher   *Matcher
	// SymbolsOnly がtrueの場合、関数名や型名などのシンボルだけを検索する
	SymbolsOnly bool
}

// Progress はファイル走査の進捗を受け取る
type Progress interface {
	Start(total int)
	Advance()
	Finish()
}

type nopProgress struct{}

func (nopProgress) Start(int) {}
func (nopProgress) Advance()  {}
func (nopProgress) Finish()   {}

// Searcher はディレクトリ配下のファイルを検索する
type Searcher struct {
	parser   *symbols.Parser
	progress Progress
	logger   *zap.Logger
}

// NewSearcher はSearcherのインスタンスを生成する
func NewSearcher(logger *zap.Logger) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Searcher{
		parser:   symbols.NewParser(logger),
		progress: nopProgress{},
		logger:   logger,
	}
}

// SetProgress は検索とインデックス構築の進捗の通知先を設定する
func (s *Searcher) SetProgress(p Progress) {
	if p == nil {
		p = nopProgress{}
	}
	s.progress = p
}

// Close は構文解析器を解放する
func (s *Searcher) Close() {
	s.parser.Close()
}

// Parser はアウトライン表示などで使う構文解析器を返す
func (s *Searcher) Parser() *symbols.Parser {
	return s.parser
}

// Search はopts.Root配下のファイルを走査し、一致した結果をファイル順に返す
func (s *Searcher) Search(ctx context.Context, opts Options) ([]types.Result, error) {
	paths, err := CollectFiles(opts.Root, opts.Extension)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("files collected", zap.String("root", opts.Root), zap.Int("files", len(paths)))

	s.progress.Start(len(paths))
	defer s.progress.Finish()

	results := make([]types.Result, 0)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.progress.Advance()
		var hits []types.Hit
		if opts.SymbolsOnly {
			hits, err = s.searchSymbols(ctx, path, opts.Matcher)
		} else {
			hits, err = FindTextInFile(path, opts.Matcher)
		}
		if err != nil {
			return nil, err
		}
		for _, hit := range hits {
			results = append(results, types.Result{Path: path, Hit: hit})
		}
	}
	return results, nil
}

func (s *Searcher) searchSymbols(ctx context.Context, path types.FilePath, m *Matcher) ([]types.Hit, error) {
	q, ok := lang.ForExtension(ExtensionOf(string(path)))
	if !ok {
		s.logger.Debug("no grammar, skipped", zap.String("path", string(path)))
		return nil, nil
	}
	code := readOrEmpty(path, s.logger)
	// キーワードを含まないファイルは構文解析しない
	if !m.Match(string(code)) {
		return nil, nil
	}
	return s.parser.Symbols(ctx, code, q, m.Match)
}

// 読み込めないファイルは空のファイルとして扱う
func readOrEmpty(path types.FilePath, logger *zap.Logger) []byte {
	code, err := os.ReadFile(string(path))
	if err != nil {
		logger.Warn("failed to read file", zap.String("path", string(path)), zap.Error(err))
		return nil
	}
	return code
}
