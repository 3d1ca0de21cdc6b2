package lang

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/kakkky/codesearch/render"
)

var javascriptGrammar = &grammar{
	name:     "javascript",
	language: javascript.GetLanguage,
	symbols: map[string]nameRule{
		"function_declaration": {field: "name", nameTypes: []string{"identifier"}},
	},
	headers: map[string]string{
		"function_declaration": "formal_parameters",
		"class_declaration":    "class_body",
		"method_definition":    "formal_parameters",
		"lexical_declaration":  "",
	},
	keywords: []string{"function", "async", "const", "let", "var", "class"},
	define:   defineJavascript,
}

// lexical_declaration は初期化式が長くなりがちなので、キーワードと変数名だけを表示する
func defineJavascript(node *sitter.Node, src []byte) (string, bool) {
	if node.Type() != "lexical_declaration" {
		return "", false
	}
	var names []string
	var kind string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "const", "let":
			kind = render.Keyword(child.Type())
		case "variable_declarator":
			if name := child.ChildByFieldName("name"); name != nil {
				names = append(names, name.Content(src))
			}
		}
	}
	return kind + " " + strings.Join(names, ", ") + " ", true
}
