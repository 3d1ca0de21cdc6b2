package search

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kakkky/codesearch/errs"
	"github.com/kakkky/codesearch/types"
)

// FindTextInFile はファイルを1行ずつ読み、一致した行を行番号付きで返す
// 行の長さに上限はない（minifyされたファイルも1行として扱う）
func FindTextInFile(path types.FilePath, m *Matcher) ([]types.Hit, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, errs.NewInternalError(fmt.Sprintf("failed to read file %s", path)).Wrap(err)
	}
	defer f.Close()

	hits := make([]types.Hit, 0)
	reader := bufio.NewReader(f)
	var lineNumber types.LineNumber
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, errs.NewInternalError(fmt.Sprintf("failed to read file %s", path)).Wrap(err)
		}
		// 末尾に改行のないファイルでも最後の行を読む
		if line != "" {
			lineNumber++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if m.Match(line) {
				hits = append(hits, types.Hit{Line: lineNumber, Text: line})
			}
		}
		if err != nil {
			return hits, nil
		}
	}
}
