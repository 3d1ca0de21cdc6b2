package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/kakkky/codesearch/render"
)

func printBanner(w io.Writer, root string) {
	fmt.Fprintln(w, render.Notice("root: "+root))
	if modPath, ok := readModulePath(root); ok {
		fmt.Fprintln(w, render.Notice("module: "+modPath))
	}
	fmt.Fprintln(w, "type help to list commands")
}

// ルートにgo.modがあればモジュールパスを返す
func readModulePath(root string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", false
	}
	mf, err := modfile.Parse("go.mod", data, nil)
	if err != nil || mf.Module == nil {
		return "", false
	}
	return mf.Module.Mod.Path, true
}
