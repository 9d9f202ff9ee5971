package wordfreq

import (
	"bufio"
	"cmp"
	"io"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goose-lang/std"
	"github.com/pkg/errors"

	"github.com/JVitoroliv3ira/go-data-structures/hashmap"
)

type WordCount struct {
	Word  string
	Count uint64
}

// Counter tallies word occurrences. It is not safe for concurrent use.
type Counter struct {
	counts    *hashmap.HashMap[string, uint64]
	total     uint64
	minLength uint64
	lowercase bool
}

func NewCounter(cfg Config) *Counter {
	return &Counter{
		counts:    hashmap.NewWithHasher[string, uint64](hashmap.StringHasher),
		minLength: cfg.MinLength,
		lowercase: cfg.Lowercase,
	}
}

// Add counts one occurrence of word exactly as given.
func (c *Counter) Add(word string) {
	n, _ := c.counts.Get(word)
	c.counts.Insert(word, std.SumAssumeNoOverflow(n, 1))
	c.total = std.SumAssumeNoOverflow(c.total, 1)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (c *Counter) addToken(tok string) {
	if uint64(utf8.RuneCountInString(tok)) < c.minLength {
		return
	}
	if c.lowercase {
		tok = strings.ToLower(tok)
	}
	c.Add(tok)
}

// CountReader splits r into maximal runs of letters and digits and counts each
// run that is at least minLength runes long. It returns the number of words
// counted.
func (c *Counter) CountReader(r io.Reader) (uint64, error) {
	before := c.total
	br := bufio.NewReader(r)
	var word strings.Builder
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return c.total - before, errors.Wrap(err, "read")
		}
		if isWordRune(ch) {
			word.WriteRune(ch)
			continue
		}
		if word.Len() > 0 {
			c.addToken(word.String())
			word.Reset()
		}
	}
	if word.Len() > 0 {
		c.addToken(word.String())
	}
	return c.total - before, nil
}

// Count returns how many times word was counted.
func (c *Counter) Count(word string) uint64 {
	n, _ := c.counts.Get(word)
	return n
}

func (c *Counter) Distinct() uint64 {
	return c.counts.Len()
}

func (c *Counter) Total() uint64 {
	return c.total
}

// Top returns the n most frequent words, most frequent first. Words with equal
// counts are ordered alphabetically.
func (c *Counter) Top(n uint64) []WordCount {
	all := make([]WordCount, 0, c.counts.Len())
	for word, count := range c.counts.All() {
		all = append(all, WordCount{Word: word, Count: count})
	}
	slices.SortFunc(all, func(a, b WordCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return strings.Compare(a.Word, b.Word)
	})
	if uint64(len(all)) > n {
		all = all[:n]
	}
	return all
}
