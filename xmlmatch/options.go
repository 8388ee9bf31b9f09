package xmlmatch

type Option interface{ apply(*Matcher) }

type optFunc func(*Matcher)

func (f optFunc) apply(m *Matcher) { f(m) }

// WithIgnore sets an expr-lang predicate over node fields (name, text,
// attrs, depth); any element it matches is excluded, subtree included,
// from the structural key. Compiled by New; a bad expression fails there.
func WithIgnore(src string) Option { return optFunc(func(m *Matcher) { m.ignoreSrc = src }) }

// WithParallel enables/disables concurrent hashing of root children.
func WithParallel(enabled bool) Option {
	return optFunc(func(m *Matcher) { m.parallel = enabled })
}
