// Package controller owns the document text and coordinates the editor and
// preview panes.
//
// Rendering is driven by a tagged trigger. RequestRender moves the trigger
// to Requested and fills a single-slot command; the preview takes the
// command with TakeRenderCommand, renders once and acknowledges it. Reset
// drops any pending command and returns a ClearEvent for the preview.
package controller
