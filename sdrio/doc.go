// Package sdrio persists SDR nodes across four stream formats: Binary
// (little-endian), Portable (big-endian), JSON and XML.
//
// Every stream encodes, in order: a format/version tag, the dimension list,
// a tag naming the single stored encoding, and that encoding's payload. The
// stored encoding is whichever was authoritative at save time; saving never
// forces a conversion, so a node written via SetSparse persists its sparse
// list untouched. Loading reconstructs the dimensions and then replays the
// matching setter, which means load-time validation is exactly the setters'
// validation.
//
// Saving a Reshape view writes a materialized snapshot of the view's own
// projected encoding. The source/child relationship is not persisted:
// loading always produces a plain, independent base Pattern.
//
// The loader performs no format detection. Callers must pass the same
// Format to Load that was given to Save; a mismatch fails with ErrBadMagic
// or ErrCorrupt.
package sdrio
