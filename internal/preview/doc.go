// Package preview implements the chart pane: it turns render commands into
// a parsed chart or an error, keeps the pending and applied chart size, and
// draws the chart through the terminal engine.
//
// Rendering happens only when the controller hands over a command. Edits to
// the document never reach this package until the user plots again, and a
// change of applied size redraws the stored chart without parsing.
package preview
