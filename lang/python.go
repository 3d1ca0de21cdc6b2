package lang

import "github.com/smacker/go-tree-sitter/python"

var pythonGrammar = &grammar{
	name:     "python",
	language: python.GetLanguage,
	symbols: map[string]nameRule{
		"function_definition": {field: "name", nameTypes: []string{"identifier"}},
		"class_definition":    {field: "name", nameTypes: []string{"identifier"}},
	},
	headers: map[string]string{
		"class_definition":    "block",
		"function_definition": "parameters",
	},
	keywords: []string{"class", "def"},
}
