package lang

import "github.com/smacker/go-tree-sitter/c"

var cGrammar = &grammar{
	name:     "c",
	language: c.GetLanguage,
	symbols: map[string]nameRule{
		// ポインタを返す関数は pointer_declarator を挟むため、識別子に到達するまで辿る
		"function_definition": {field: "declarator", repeat: true, nameTypes: []string{"identifier"}},
		// 本体のない struct_specifier は型の参照なので対象外
		"struct_specifier": {field: "name", nameTypes: []string{"type_identifier"}, requireField: "body"},
	},
	headers: map[string]string{
		"function_definition": "compound_statement",
	},
	keywords: []string{"struct", "int", "char", "void", "float", "double", "long", "unsigned", "signed"},
}
