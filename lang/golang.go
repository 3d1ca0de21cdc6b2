package lang

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/kakkky/codesearch/render"
)

var goGrammar = &grammar{
	name:     "go",
	language: golang.GetLanguage,
	symbols: map[string]nameRule{
		"function_declaration": {field: "name", nameTypes: []string{"identifier"}},
		"type_spec":            {field: "name", nameTypes: []string{"type_identifier"}},
	},
	headers: map[string]string{
		"function_declaration": "parameter_list",
		"method_declaration":   "block",
		// 文法のバージョンによってインターフェースのメソッドの型名が異なる
		"method_elem":       "parameter_list",
		"method_spec":       "parameter_list",
		"type_declaration":  "",
		"field_declaration": "",
	},
	keywords: []string{"func", "type"},
	define:   defineGo,
}

func defineGo(node *sitter.Node, src []byte) (string, bool) {
	switch node.Type() {
	case "type_declaration":
		return defineGoType(node, src), true
	case "method_declaration":
		return defineGoMethod(node, src), true
	case "field_declaration":
		return defineGoField(node, src), true
	default:
		return "", false
	}
}

func defineGoType(node *sitter.Node, src []byte) string {
	var sb strings.Builder
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type":
			sb.WriteString(render.Keyword("type"))
		case "type_spec", "type_alias":
			for j := 0; j < int(child.ChildCount()); j++ {
				sub := child.Child(j)
				switch sub.Type() {
				case "struct_type":
					sb.WriteString(render.Keyword("struct"))
				case "interface_type":
					sb.WriteString(render.Keyword("interface"))
				default:
					sb.WriteString(sub.Content(src))
				}
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

func defineGoMethod(node *sitter.Node, src []byte) string {
	var sb strings.Builder
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "block" {
			break
		}
		if child.Type() == "func" {
			sb.WriteString(render.Keyword("func"))
		} else {
			sb.WriteString(child.Content(src))
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

// 埋め込みフィールドは名前を持たないので型を表示する
func defineGoField(node *sitter.Node, src []byte) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return name.Content(src)
	}
	if typ := node.ChildByFieldName("type"); typ != nil {
		return typ.Content(src)
	}
	return node.Content(src)
}
