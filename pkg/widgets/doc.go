// Package widgets provides the built-in widgets.
//
// Widgets are plain values implementing the core.Widget capability set,
// usually by embedding core.Base and overriding what they actually do. The
// centerpiece is Responsive, which defers building its content until the
// available size is known and caches the result across frames.
package widgets
