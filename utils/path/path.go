package path

import (
	"path/filepath"
	"runtime"
)

// RootPath 傳回專案根目錄的絕對路徑（/project/utils/path/path.go → /project）
func RootPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("unable to resolve caller location")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}
