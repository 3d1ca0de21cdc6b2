package repl

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/kakkky/go-prompt"

	"github.com/kakkky/codesearch/errs"
	"github.com/kakkky/codesearch/render"
	"github.com/kakkky/codesearch/types"
)

//go:generate mockgen -package=repl -source=./selector.go -destination=./selector_mock.go
type fileSelector interface {
	selectFile(candidates []types.FilePath) (types.FilePath, error)
}

// promptFileSelector は同名のファイルが複数インデックスされている場合に、
// 番号かパスで1つを選ばせる
type promptFileSelector struct {
	out  io.Writer
	read func(candidates []types.FilePath) string
}

func newPromptFileSelector(out io.Writer) *promptFileSelector {
	return &promptFileSelector{
		out:  out,
		read: readSelection,
	}
}

func (pfs *promptFileSelector) selectFile(candidates []types.FilePath) (types.FilePath, error) {
	fmt.Fprintln(pfs.out, render.Prompt(fmt.Sprintf("%d indexed files share this name:", len(candidates))))
	for i, candidate := range candidates {
		fmt.Fprintf(pfs.out, "  %s %s\n", render.Prompt(fmt.Sprintf("[%d]", i+1)), candidate)
	}
	fmt.Fprintln(pfs.out, render.Prompt("enter a number or a path (Tab completes paths)"))
	return pickCandidate(candidates, pfs.read(candidates))
}

func readSelection(candidates []types.FilePath) string {
	suggests := make([]prompt.Suggest, len(candidates))
	for i, candidate := range candidates {
		suggests[i] = prompt.Suggest{Text: string(candidate)}
	}
	completer := func(d prompt.Document) []prompt.Suggest {
		return prompt.FilterHasPrefix(suggests, d.TextBeforeCursor(), false)
	}
	return prompt.Input(
		"pick> ",
		completer,
		prompt.OptionPrefixTextColor(prompt.Blue),
		prompt.OptionPreviewSuggestionTextColor(prompt.Turquoise),
	)
}

// pickCandidate は入力された番号（1始まり）またはパスに対応する候補を返す
func pickCandidate(candidates []types.FilePath, answer string) (types.FilePath, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", errs.NewBadInputError("no file selected")
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(candidates) {
			return "", errs.NewBadInputError(fmt.Sprintf("selection out of range: %d", n))
		}
		return candidates[n-1], nil
	}
	if !slices.Contains(candidates, types.FilePath(answer)) {
		return "", errs.NewBadInputError(fmt.Sprintf("not one of the candidates: %s", answer))
	}
	return types.FilePath(answer), nil
}
