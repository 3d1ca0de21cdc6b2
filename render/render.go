package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kakkky/codesearch/types"
)

var (
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Keyword は言語キーワードを強調表示する
func Keyword(s string) string {
	return keywordStyle.Render(s)
}

// Path はファイルパスや位置情報を表示用に装飾する
func Path(s string) string {
	return pathStyle.Render(s)
}

// Notice はREPLのバナーなどの案内文を装飾する
func Notice(s string) string {
	return noticeStyle.Render(s)
}

// Prompt は対話中の問いかけや選択肢を装飾する
func Prompt(s string) string {
	return promptStyle.Render(s)
}

// Highlight はline中のneedleをすべて強調表示する
func Highlight(line, needle string) string {
	if needle == "" {
		return line
	}
	return strings.ReplaceAll(line, needle, matchStyle.Render(needle))
}

// Highlighter は行ごとに強調すべき部分文字列を返す
type Highlighter interface {
	Highlight(line string) string
}

// Results は検索結果を「パス:行番号」と行内容の2列の表として書き出す
func Results(w io.Writer, results []types.Result, h Highlighter) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		location := fmt.Sprintf("%s:%d", r.Path, r.Line)
		rows = append(rows, []string{
			Path(location),
			Highlight(strings.TrimSpace(r.Text), h.Highlight(r.Text)),
		})
	}
	fmt.Fprintln(w)
	if len(rows) == 0 {
		return
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Rows(rows...)
	fmt.Fprintln(w, t.String())
}

// IndexHits はインデックスの検索結果を「強調済みテキスト(パス:行番号)」の形式で書き出す
func IndexHits(w io.Writer, results []types.Result, keyword string) {
	for _, r := range results {
		fmt.Fprintf(w, "%s(%s:%d)\n", Highlight(r.Text, keyword), r.Path, r.Line)
	}
}

const progressWidth = 40

// ProgressBar はファイル走査の進捗を1行のバーとして書き出す
// 描画のたびに行頭へ戻って上書きする
type ProgressBar struct {
	w     io.Writer
	bar   progress.Model
	total int
	done  int
}

func NewProgressBar(w io.Writer) *ProgressBar {
	return &ProgressBar{
		w:   w,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
	}
}

func (p *ProgressBar) Start(total int) {
	p.total = total
	p.done = 0
	p.draw()
}

func (p *ProgressBar) Advance() {
	if p.done < p.total {
		p.done++
	}
	p.draw()
}

func (p *ProgressBar) Finish() {
	fmt.Fprintln(p.w)
}

func (p *ProgressBar) draw() {
	percent := 1.0
	if p.total > 0 {
		percent = float64(p.done) / float64(p.total)
	}
	fmt.Fprintf(p.w, "\r%s %d/%d", p.bar.ViewAs(percent), p.done, p.total)
}
