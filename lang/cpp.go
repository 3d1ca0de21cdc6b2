package lang

import "github.com/smacker/go-tree-sitter/cpp"

var cppGrammar = &grammar{
	name:     "cpp",
	language: cpp.GetLanguage,
	symbols: map[string]nameRule{
		// クラス内で定義されたメソッドは field_identifier になる
		"function_definition": {field: "declarator", repeat: true, nameTypes: []string{"identifier", "field_identifier"}},
		"struct_specifier":    {field: "name", nameTypes: []string{"type_identifier"}, requireField: "body"},
		"class_specifier":     {field: "name", nameTypes: []string{"type_identifier"}, requireField: "body"},
	},
	headers: map[string]string{
		"function_definition": "compound_statement",
		"struct_specifier":    "field_declaration_list",
		"class_specifier":     "field_declaration_list",
		"field_declaration":   ";",
	},
	keywords: []string{"struct", "class", "public", "private", "protected", "virtual", "static", "const", "void"},
}
