package search

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kakkky/codesearch/errs"
	"github.com/kakkky/codesearch/types"
)

// 検索対象とする拡張子
var validExtensions = []types.Extension{
	"rs", "js", "ts", "java", "py", "go", "c", "cpp", "md", "txt", "html", "css", "cs", "kt",
	"swift", "php", "rb", "sh", "sql", "vb", "lua", "hs", "scala", "erl", "m", "r", "h", "hpp",
	"toml", "yaml", "yml", "properties",
}

// ExtensionOf はドットを除いた拡張子を返す
func ExtensionOf(path string) types.Extension {
	return types.Extension(strings.TrimPrefix(filepath.Ext(path), "."))
}

// CollectFiles はrootを再帰的に走査し、検索対象のファイルを列挙する
// filterが空でない場合は、その拡張子のファイルのみを対象とする
func CollectFiles(root string, filter types.Extension) ([]types.FilePath, error) {
	paths := make([]types.FilePath, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := ExtensionOf(path)
		if ext == "" {
			return nil
		}
		if filter != "" && filter != ext {
			return nil
		}
		if !slices.Contains(validExtensions, ext) {
			return nil
		}
		paths = append(paths, types.FilePath(path))
		return nil
	})
	if err != nil {
		return nil, errs.NewInternalError("failed to walk directory").Wrap(err)
	}
	return paths, nil
}
