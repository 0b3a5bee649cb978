package compare

import (
	"sync"

	"facette.io/natsort"
	"github.com/amp-labs/amp-sort/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalStrings orders strings the way people read them: digit runs compare
// numerically, so "file2" sorts before "file10".
func NaturalStrings() Func[string] {
	return FromLess(natsort.Compare)
}

// Collated orders strings by the collation rules of a language, e.g.
// language.German puts "ä" next to "a" rather than after "z".
//
// A collate.Collator keeps scratch buffers and is not safe for concurrent
// use, so the returned Func serializes calls. Build one Func per goroutine
// when sorting many sequences in parallel.
func Collated(tag language.Tag, opts ...collate.Option) Func[string] {
	var mut sync.Mutex

	collator := collate.New(tag, opts...)

	return func(a, b string) int {
		mut.Lock()
		defer mut.Unlock()

		return collator.CompareString(a, b)
	}
}

// ParseCollation builds a Collated ordering from a BCP 47 tag such as "sv" or
// "de-DE", ignoring case differences when ignoreCase is set. An unparsable
// tag is an invalid argument.
func ParseCollation(tag string, ignoreCase bool) (Func[string], error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return nil, errors.InvalidArgument("unknown collation locale "+tag, err)
	}

	var opts []collate.Option
	if ignoreCase {
		opts = append(opts, collate.IgnoreCase)
	}

	return Collated(lang, opts...), nil
}
