// Package cookielog reads cookie log files line-by-line and writes them back out
//
// Design choices:
// - Stream with bufio.Scanner with a capped buffer; a line over the cap is a read failure.
// - Gzip input is detected from the magic bytes and decoded transparently.
// - A leading byte order mark is dropped before the header is seen.
// - Writer emits the same format (optionally gzip) for generated test data.
// - Errors are perr values with ErrorCodeIO; read and close failures carry different ops.
package cookielog
