package lang

import "github.com/smacker/go-tree-sitter/csharp"

var csharpGrammar = &grammar{
	name:     "csharp",
	language: csharp.GetLanguage,
	symbols: map[string]nameRule{
		"struct_declaration": {field: "name", nameTypes: []string{"identifier"}},
		"class_declaration":  {field: "name", nameTypes: []string{"identifier"}},
		"method_declaration": {field: "name", nameTypes: []string{"identifier"}},
	},
	headers: map[string]string{
		"namespace_declaration": "declaration_list",
		"struct_declaration":    "declaration_list",
		"class_declaration":     "declaration_list",
		"method_declaration":    "parameter_list",
	},
	keywords: []string{"struct", "class", "public", "private", "protected", "internal", "static", "void"},
}
