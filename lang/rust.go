package lang

import "github.com/smacker/go-tree-sitter/rust"

var rustGrammar = &grammar{
	name:     "rust",
	language: rust.GetLanguage,
	symbols: map[string]nameRule{
		"function_item": {field: "name", nameTypes: []string{"identifier"}},
		"struct_item":   {field: "name", nameTypes: []string{"type_identifier"}},
	},
	headers: map[string]string{
		"function_item":           "parameters",
		"impl_item":               "declaration_list",
		"struct_item":             "field_declaration_list",
		"trait_item":              "declaration_list",
		"function_signature_item": "parameters",
	},
	keywords: []string{"fn", "for", "impl", "where", "struct", "pub", "trait"},
}
