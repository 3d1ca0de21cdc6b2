package search

import (
	"regexp"
	"strings"

	"github.com/kakkky/codesearch/errs"
)

// Matcher は検索キーワードとの一致判定を担う
// 正規表現モードでない場合は単純な部分文字列一致で判定する
type Matcher struct {
	key string
	re  *regexp.Regexp
}

// NewMatcher はMatcherのインスタンスを生成する
func NewMatcher(key string, useRegex bool) (*Matcher, error) {
	m := &Matcher{key: key}
	if !useRegex {
		return m, nil
	}
	re, err := regexp.Compile(key)
	if err != nil {
		return nil, errs.NewBadInputError("invalid regular expression").Wrap(err)
	}
	m.re = re
	return m, nil
}

// Key は検索キーワードをそのまま返す
func (m *Matcher) Key() string {
	return m.key
}

// Match はsがキーワードに一致するかを返す
func (m *Matcher) Match(s string) bool {
	if m.re != nil {
		return m.re.MatchString(s)
	}
	return strings.Contains(s, m.key)
}

// Highlight はline中で強調表示すべき文字列を返す
// 正規表現モードでは行内の最後の一致を返す
func (m *Matcher) Highlight(line string) string {
	if m.re == nil {
		return m.key
	}
	matches := m.re.FindAllString(line, -1)
	if len(matches) == 0 {
		return m.key
	}
	return matches[len(matches)-1]
}
