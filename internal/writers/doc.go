// Package writers owns where serialized records end up.
//
// Design:
//   • File outputs go to a temp file next to the destination and are renamed
//     into place only on Commit, so a failed run never leaves partial output.
//   • "-" streams to stdout; a broken pipe there is not an error.
//   • A .gz suffix compresses the output.
package writers
