package version

import "fmt"

// VERSION は現在のcodesearchのバージョンを表す
const VERSION = "v0.1.0"

// PrintVersion は現在のcodesearchのバージョンを表示する
func PrintVersion() {
	fmt.Println("   " + VERSION)
}
