package swisstable

// context holds a table's type-level collaborators: a hash function, an
// equality predicate, a SIMD-width mode, and the grow/shrink capacity
// policies. It is built from functional [Option] values in the style of
// db47h/cache/lru's Option/getOpts. The collaborators are stored as func
// values, so the hot path (find/add/remove) calls hash and equal indirectly;
// they are not inlined into it.
type context[T any] struct {
	capacity int
	hash     func(T) uint64
	equal    func(a, b T) bool
	mode     Mode
	grow     func(count, capacity int) int
	shrink   func(count, capacity int) int
}

// Option configures a [Set] or [Map] at construction time.
type Option[T any] func(*context[T])

// WithCapacity hints the initial capacity (number of elements the
// container should hold without a resize).
func WithCapacity[T any](capacity int) Option[T] {
	return func(c *context[T]) { c.capacity = capacity }
}

// WithHasher overrides the default hash function.
func WithHasher[T any](hash func(T) uint64) Option[T] {
	return func(c *context[T]) { c.hash = hash }
}

// WithEqual overrides the default equality predicate.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return func(c *context[T]) { c.equal = equal }
}

// WithMode overrides the SIMD width used for control-byte layout. The
// default is [DetectMode].
func WithMode[T any](mode Mode) Option[T] {
	return func(c *context[T]) { c.mode = mode }
}

// WithGrowPolicy overrides the default growth-on-resize capacity formula.
func WithGrowPolicy[T any](grow func(count, capacity int) int) Option[T] {
	return func(c *context[T]) { c.grow = grow }
}

// WithShrinkPolicy overrides the default Trim capacity formula.
func WithShrinkPolicy[T any](shrink func(count, capacity int) int) Option[T] {
	return func(c *context[T]) { c.shrink = shrink }
}

func buildContext[T any](defaultHash func(T) uint64, defaultEqual func(a, b T) bool, opts []Option[T]) context[T] {
	c := context[T]{
		hash:   defaultHash,
		equal:  defaultEqual,
		mode:   DetectMode(),
		grow:   defaultGrowCapacity,
		shrink: defaultShrinkCapacity,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
