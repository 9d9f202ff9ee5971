// Package wordfreq counts word occurrences across text files and reports the
// most frequent ones.
package wordfreq

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Run counts the words in the files found under paths, or in stdin if paths is
// empty, and writes the top cfg.Top words to out as "<count>\t<word>" lines.
func Run(fs afero.Fs, cfg Config, paths []string, stdin io.Reader, out io.Writer, log *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	counter := NewCounter(cfg)

	if len(paths) == 0 {
		n, err := counter.CountReader(stdin)
		if err != nil {
			return errors.Wrap(err, "stdin")
		}
		log.Debug("counted stdin", zap.Uint64("words", n))
	} else {
		files, err := Walk(fs, paths, cfg.Extensions)
		if err != nil {
			return err
		}
		log.Debug("found files", zap.Int("files", len(files)))
		for _, path := range files {
			if err := countFile(fs, counter, path, log); err != nil {
				return err
			}
		}
	}

	log.Info("counted words",
		zap.Uint64("total", counter.Total()),
		zap.Uint64("distinct", counter.Distinct()))

	for _, wc := range counter.Top(cfg.Top) {
		if _, err := fmt.Fprintf(out, "%d\t%s\n", wc.Count, wc.Word); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}

func countFile(fs afero.Fs, counter *Counter, path string, log *zap.Logger) error {
	f, err := fs.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	n, err := counter.CountReader(f)
	if err != nil {
		return errors.Wrapf(err, "count %s", path)
	}
	log.Debug("counted file", zap.String("path", path), zap.Uint64("words", n))
	return nil
}
