// Package ownership defines how values are duplicated, released and
// represented as "absent" inside generic containers.
//
// Containers in this module never branch on their element type. Instead they
// are handed a [Traits] descriptor at construction time and call through it:
//
//   - Duplicate produces an independent value that aliases nothing the
//     original owns. Plain values are simply copied; owning handles such as
//     [*Text] get a fresh buffer.
//   - Release frees whatever the value owns and leaves it null. Releasing an
//     already-released value does nothing.
//   - Null returns the sentinel meaning "absent": zero for numbers, "" for
//     strings, nil for owning pointers. IsNull recognizes it.
//
// [Value] is the descriptor for self-contained types. [Funcs] assembles a
// descriptor from plain functions, [Slice] lifts element traits to slices and
// [TextTraits] handles the owning text buffer.
//
// Buffers that hold owning handles must be moved, not duplicated, when a
// container grows; see [Relocate].
package ownership
