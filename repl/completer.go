package repl

import (
	"path/filepath"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/kakkky/codesearch/search"
)

var commandSuggests = []prompt.Suggest{
	{Text: helpCommand, Description: "Show help"},
	{Text: outlineCommand + " ", Description: "outline <file>"},
	{Text: searchCommand + " ", Description: "search <path> <key>"},
	{Text: quitCommand, Description: "Exit interactive mode"},
}

// Completer はコマンドとファイルパスの補完を担う
// go-promptのCompleterインターフェースを実装している
type Completer struct {
	index *search.Index
}

func NewCompleter(index *search.Index) *Completer {
	return &Completer{
		index: index,
	}
}

// Complete は入力途中のコマンド、またはoutlineの引数となるファイルパスの候補を返す
func (c *Completer) Complete(input prompt.Document) []prompt.Suggest {
	text := input.Text
	if text == "" {
		return []prompt.Suggest{}
	}
	if arg, ok := strings.CutPrefix(text, outlineCommand+" "); ok {
		return c.findFileSuggestions(arg)
	}
	suggestions := make([]prompt.Suggest, 0)
	for _, s := range commandSuggests {
		if strings.HasPrefix(s.Text, text) {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}

// インデックス済みのファイルをルートからの相対パスで返す
func (c *Completer) findFileSuggestions(prefix string) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0)
	for _, f := range c.index.Files() {
		rel, err := filepath.Rel(c.index.Root(), string(f))
		if err != nil {
			continue
		}
		if strings.HasPrefix(rel, prefix) {
			suggestions = append(suggestions, prompt.Suggest{Text: rel, Description: "File"})
		}
	}
	return suggestions
}
