package search

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kakkky/codesearch/errs"
	"github.com/kakkky/codesearch/lang"
	"github.com/kakkky/codesearch/types"
)

// Index はプロジェクト内の全シンボルを保持するメモリ上のインデックス
type Index struct {
	root    string
	files   []types.FilePath
	entries []types.Result
}

// BuildIndex はroot配下の、文法が用意されているすべてのファイルからシンボルを集める
// パスは絶対パスで保持する
func (s *Searcher) BuildIndex(ctx context.Context, root string) (*Index, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errs.NewInternalError("failed to resolve root path").Wrap(err)
	}
	paths, err := CollectFiles(absRoot, "")
	if err != nil {
		return nil, err
	}

	idx := &Index{
		root:    absRoot,
		files:   make([]types.FilePath, 0),
		entries: make([]types.Result, 0),
	}
	s.progress.Start(len(paths))
	defer s.progress.Finish()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.progress.Advance()
		q, ok := lang.ForExtension(ExtensionOf(string(path)))
		if !ok {
			continue
		}
		idx.files = append(idx.files, path)
		hits, err := s.parser.Symbols(ctx, readOrEmpty(path, s.logger), q, nil)
		if err != nil {
			return nil, err
		}
		for _, hit := range hits {
			idx.entries = append(idx.entries, types.Result{Path: path, Hit: hit})
		}
	}
	s.logger.Debug("index built",
		zap.String("root", absRoot),
		zap.Int("files", len(idx.files)),
		zap.Int("symbols", len(idx.entries)))
	return idx, nil
}

// Root はインデックス対象のルートを絶対パスで返す
func (idx *Index) Root() string {
	return idx.root
}

// Files はインデックス対象となったファイルの一覧を返す
func (idx *Index) Files() []types.FilePath {
	return idx.files
}

// Lookup はkeywordを含むシンボルを返す
func (idx *Index) Lookup(keyword string) []types.Result {
	results := make([]types.Result, 0)
	for _, entry := range idx.entries {
		if strings.Contains(entry.Text, keyword) {
			results = append(results, entry)
		}
	}
	return results
}

// FilesByBase はファイル名（ディレクトリを除いた部分）がnameと一致するファイルを返す
func (idx *Index) FilesByBase(name string) []types.FilePath {
	matched := make([]types.FilePath, 0)
	for _, f := range idx.files {
		if filepath.Base(string(f)) == name {
			matched = append(matched, f)
		}
	}
	return matched
}
