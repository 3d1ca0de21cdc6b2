package lang

import (
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kakkky/codesearch/render"
	"github.com/kakkky/codesearch/types"
)

// SymbolQuery は言語ごとのシンボル抽出・アウトライン表示のルールを表す
type SymbolQuery interface {
	// Name は言語名を返す
	Name() string
	// Language はtree-sitterの文法を返す
	Language() *sitter.Language
	// SymbolName はnodeが宣言するシンボルの名前ノードを返す。シンボルでなければnil
	SymbolName(node *sitter.Node) *sitter.Node
	// IsKeyNode はnodeがアウトラインに表示されるかどうかを返す
	IsKeyNode(node *sitter.Node) bool
	// Definition はnodeの宣言部分（本体を除く）を文字列で返す
	Definition(node *sitter.Node, src []byte) string
}

// nameRule は宣言ノードから名前ノードへの辿り方
type nameRule struct {
	field string
	// repeat がtrueの場合、fieldを名前ノードに到達するまで繰り返し辿る（Cの宣言子）
	repeat bool
	// nameTypes は名前ノードとして認める型
	nameTypes []string
	// requireField が空でない場合、そのフィールドを持つノードのみを宣言とみなす
	requireField string
}

type grammar struct {
	name     string
	language func() *sitter.Language
	symbols  map[string]nameRule
	// headers はアウトライン対象ノードの型と、宣言部分の終端となる子ノードの型
	headers  map[string]string
	keywords []string
	// define は言語固有の宣言表示。falseを返した場合はheadersによる表示にフォールバックする
	define func(node *sitter.Node, src []byte) (string, bool)
}

func (g *grammar) Name() string {
	return g.name
}

func (g *grammar) Language() *sitter.Language {
	return g.language()
}

func (g *grammar) SymbolName(node *sitter.Node) *sitter.Node {
	rule, ok := g.symbols[node.Type()]
	if !ok {
		return nil
	}
	if rule.requireField != "" && node.ChildByFieldName(rule.requireField) == nil {
		return nil
	}
	cur := node.ChildByFieldName(rule.field)
	for cur != nil {
		if slices.Contains(rule.nameTypes, cur.Type()) {
			return cur
		}
		if !rule.repeat {
			return nil
		}
		cur = cur.ChildByFieldName(rule.field)
	}
	return nil
}

func (g *grammar) IsKeyNode(node *sitter.Node) bool {
	_, ok := g.headers[node.Type()]
	return ok
}

func (g *grammar) Definition(node *sitter.Node, src []byte) string {
	if g.define != nil {
		if def, ok := g.define(node, src); ok {
			return def
		}
	}
	end, ok := g.headers[node.Type()]
	if !ok {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == end {
			break
		}
		for _, word := range strings.Split(child.Content(src), " ") {
			sb.WriteString(g.highlight(word))
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func (g *grammar) highlight(word string) string {
	if slices.Contains(g.keywords, word) {
		return render.Keyword(word)
	}
	return word
}

var grammars = map[types.Extension]SymbolQuery{
	"c":    cGrammar,
	"h":    cGrammar,
	"cpp":  cppGrammar,
	"hpp":  cppGrammar,
	"go":   goGrammar,
	"py":   pythonGrammar,
	"java": javaGrammar,
	"js":   javascriptGrammar,
	"rs":   rustGrammar,
	"cs":   csharpGrammar,
}

// ForExtension は拡張子に対応するSymbolQueryを返す
// 対応する文法がない拡張子の場合はfalseを返す
func ForExtension(ext types.Extension) (SymbolQuery, bool) {
	q, ok := grammars[types.Extension(strings.ToLower(string(ext)))]
	return q, ok
}
