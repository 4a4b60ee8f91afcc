package mouse

// dragTracker tracks which button is held between motion reports.
type dragTracker struct {
	active bool
	button Button
}

func newDragTracker() *dragTracker {
	return &dragTracker{}
}

// start begins a new drag operation.
func (t *dragTracker) start(button Button) {
	t.active = true
	t.button = button
}

// end ends the current drag operation.
func (t *dragTracker) end() {
	*t = dragTracker{}
}

func (t *dragTracker) isActive() bool {
	return t.active
}

func (t *dragTracker) getButton() Button {
	return t.button
}
