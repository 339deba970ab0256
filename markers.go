package proof

// Predicates shared by the pointer, allocator and vector packages. Each is a
// zero-size type; the predicate lives in its doc comment.

// NonNull: the pointer is not nil.
type NonNull struct{}

// NonNullAligned: the pointer is not nil and is aligned for its pointee.
type NonNullAligned struct{}

func (NonNullAligned) Implies() NonNull { return NonNull{} }

// ValidForRead: the pointer is non-nil, aligned and points to an initialized
// value of its pointee type.
type ValidForRead struct{}

// Unmoved: the pointee stays at its address until the proof is discharged.
type Unmoved struct{}

// Fresh: the pointer is the start of a suballocation that does not alias any
// other live suballocation of its allocator, is non-nil, and satisfies the
// requested layout. The memory is uninitialized and must be written before
// it is read.
type Fresh struct{}

func (Fresh) Implies() NonNull { return NonNull{} }

// InBounds: the index is within the bounds its consumer documents.
type InBounds struct{}

// Unvalidated: the value need not satisfy its type's usual validity
// expectations (a string may hold invalid UTF-8). Functions taking it are
// robust to any value.
type Unvalidated struct{}
