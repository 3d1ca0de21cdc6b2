package repl

import (
	"fmt"
	"os"

	"github.com/c-bata/go-prompt"
)

type Repl struct {
	pt       *prompt.Prompt
	executor *Executor
}

func NewRepl(completer *Completer, executor *Executor) *Repl {
	pt := prompt.New(
		executor.Execute,
		completer.Complete,
		prompt.OptionTitle("codesearch"),
		prompt.OptionPrefix(">> "),
		prompt.OptionPrefixTextColor(prompt.Green),
		prompt.OptionSetExitCheckerOnInput(executor.ShouldExit),
		prompt.OptionAddKeyBind(keyBinds...),
	)
	return &Repl{
		pt:       pt,
		executor: executor,
	}
}

// Run はバナーを表示してから対話モードを開始する
// quit() が入力されるまで戻らない
func (r *Repl) Run() {
	printBanner(os.Stdout, r.executor.index.Root())
	r.pt.Run()
}

var keyBinds = []prompt.KeyBind{
	{
		Key: prompt.ControlC,
		Fn: func(buf *prompt.Buffer) {
			fmt.Println("\nExit on Ctrl+C")
			os.Exit(0)
		},
	},
}
