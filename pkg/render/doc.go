// Package render finalizes finished PNG figures into tool call results.
//
// Two interchangeable finalizers exist, selected by the server's deployment
// mode rather than by the caller:
//
//   - [Encoder] keeps the PNG in memory and returns the bytes.
//   - [FileSaver] writes a timestamped PNG into a temp directory, optionally
//     opens it in the platform image viewer, and returns the file path.
//
// Both paths hold no state beyond the call: the PNG bytes passed in are the
// entire figure, already detached from any drawing context.
package render
