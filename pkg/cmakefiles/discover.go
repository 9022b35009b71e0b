// Package cmakefiles locates CMakeLists.txt files under a directory tree.
package cmakefiles

import (
	"io/fs"
	"path/filepath"
)

// MarkerName is the file name that identifies a directory as a CMake target.
const MarkerName = "CMakeLists.txt"

// Discover walks the tree rooted at root and returns the path of every
// CMakeLists.txt file found, in descent order. The order is stable within
// one run (WalkDir visits entries in lexical order). Symbolic links are
// not followed; walk errors are returned as-is.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == MarkerName {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
