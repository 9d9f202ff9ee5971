package wordfreq

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/JVitoroliv3ira/go-data-structures/queue"
)

func matchExt(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// Walk returns the files to read for roots. A root that is a file is always
// returned; directories are searched breadth-first and contribute the files
// whose extension is in exts. Roots come first, in order, followed by the files
// found in each directory level.
func Walk(fs afero.Fs, roots []string, exts []string) ([]string, error) {
	pending := queue.New[string]()
	var files []string
	for _, root := range roots {
		info, err := fs.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", root)
		}
		if info.IsDir() {
			pending.Enqueue(root)
		} else {
			files = append(files, root)
		}
	}

	for {
		dir, ok := pending.Dequeue()
		if !ok {
			break
		}
		// ReadDir sorts by name
		infos, err := afero.ReadDir(fs, dir)
		if err != nil {
			return nil, errors.Wrapf(err, "read dir %s", dir)
		}
		for _, info := range infos {
			path := filepath.Join(dir, info.Name())
			if info.IsDir() {
				pending.Enqueue(path)
			} else if matchExt(path, exts) {
				files = append(files, path)
			}
		}
	}
	return files, nil
}
