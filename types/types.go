package types

// FilePath は検索対象ファイルのパスを表す。
type FilePath string

// Extension はドットを含まないファイル拡張子を表す（例: "go", "cpp"）。
type Extension string

// LineNumber は1始まりの行番号を表す。
type LineNumber int

// Hit はファイル内で一致した1行（またはシンボル名）を表す。
type Hit struct {
	Line LineNumber
	Text string
}

// Result はファイルパス付きの一致結果を表す。
type Result struct {
	Path FilePath
	Hit
}
