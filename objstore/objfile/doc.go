// Package objfile exposes objects stored in a bucket as seekable, buffered files.
//
// A 'File' holds the entire object in memory. The object is fetched lazily, at most once, by the first operation which
// needs its contents, and written back in full by 'Flush'/'Close' only when it has been modified. Everything between
// happens against the local buffer, so reads, writes and seeks behave like those of a local file.
//
// Files are not safe for concurrent use; each open file owns its own buffer and two files opened at the same location
// aren't coordinated, the last one to be flushed wins.
package objfile
