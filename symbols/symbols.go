package symbols

import (
	"context"
	"fmt"
	"io"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"go.uber.org/zap"

	"github.com/kakkky/codesearch/errs"
	"github.com/kakkky/codesearch/lang"
	"github.com/kakkky/codesearch/types"
)

// Parser はtree-sitterによる構文解析を担う
// 内部のパーサーは使い回すため、並行に呼び出してはならない
type Parser struct {
	parser *sitter.Parser
	logger *zap.Logger
}

// OutlineEntry はアウトラインの1行を表す
type OutlineEntry struct {
	Indent     int
	Definition string
}

// NewParser はParserのインスタンスを生成する
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		parser: sitter.NewParser(),
		logger: logger,
	}
}

// Close はパーサーが保持するリソースを解放する
func (p *Parser) Close() {
	p.parser.Close()
}

func (p *Parser) parse(ctx context.Context, code []byte, q lang.SymbolQuery) (*sitter.Tree, error) {
	p.parser.SetLanguage(q.Language())
	tree, err := p.parser.ParseCtx(ctx, nil, code)
	if err != nil {
		return nil, errs.NewInternalError(fmt.Sprintf("failed to parse %s source", q.Name())).Wrap(err)
	}
	return tree, nil
}

// Symbols はcode中で宣言されたシンボルのうち、matchが真を返す名前を文書順に返す
// matchがnilの場合はすべてのシンボルを返す
func (p *Parser) Symbols(ctx context.Context, code []byte, q lang.SymbolQuery, match func(name string) bool) ([]types.Hit, error) {
	tree, err := p.parse(ctx, code, q)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	hits := make([]types.Hit, 0)
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if nameNode := q.SymbolName(n); nameNode != nil {
			name := nameNode.Content(code)
			if match == nil || match(name) {
				hits = append(hits, types.Hit{
					Line: types.LineNumber(nameNode.StartPoint().Row + 1),
					Text: name,
				})
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(tree.RootNode())

	p.logger.Debug("symbols extracted", zap.String("language", q.Name()), zap.Int("hits", len(hits)))
	return hits, nil
}

// Outline はアウトライン対象ノードの宣言部分を、木の深さに応じたインデント付きで返す
func (p *Parser) Outline(ctx context.Context, code []byte, q lang.SymbolQuery) ([]OutlineEntry, error) {
	tree, err := p.parse(ctx, code, q)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	entries := make([]OutlineEntry, 0)
	var walk func(n *sitter.Node, indent int)
	walk = func(n *sitter.Node, indent int) {
		if q.IsKeyNode(n) {
			entries = append(entries, OutlineEntry{
				Indent:     indent,
				Definition: q.Definition(n, code),
			})
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i), indent+2)
		}
	}
	walk(tree.RootNode(), 0)
	return entries, nil
}

// WriteOutline はアウトラインを1エントリ1行で書き出す
func WriteOutline(w io.Writer, entries []OutlineEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", e.Indent), e.Definition)
	}
}
