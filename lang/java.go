package lang

import "github.com/smacker/go-tree-sitter/java"

var javaGrammar = &grammar{
	name:     "java",
	language: java.GetLanguage,
	symbols: map[string]nameRule{
		"method_declaration":    {field: "name", nameTypes: []string{"identifier"}},
		"class_declaration":     {field: "name", nameTypes: []string{"identifier"}},
		"interface_declaration": {field: "name", nameTypes: []string{"identifier"}},
	},
	headers: map[string]string{
		"class_declaration":     "class_body",
		"method_declaration":    "formal_parameters",
		"interface_declaration": "interface_body",
	},
	keywords: []string{"static", "class", "extends", "public", "private", "protected", "interface"},
}
