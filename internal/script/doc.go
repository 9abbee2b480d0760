// Package script drives an editor from a stream of JSON lines.
//
// Each input line is one request object with a "cmd" field naming the
// action and flat parameter fields. Requests become queued editor commands;
// the queue is drained after every line, so each line behaves like one
// host frame. Every request produces one JSON response line reporting
// success or an error, plus any queried data.
package script
