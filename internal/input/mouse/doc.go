// Package mouse classifies terminal mouse reports.
//
// Terminal mouse reporting delivers a stream of samples, each carrying a
// position and the buttons held at that instant. The Classifier turns that
// stream into the gestures the panes react to:
//
//	c := mouse.NewClassifier()
//	ev := c.Classify(backendEvent)
//	switch ev.Action {
//	case mouse.ActionPress:   // first sample with a button held
//	case mouse.ActionDrag:    // motion while the same button stays held
//	case mouse.ActionRelease: // first sample with nothing held
//	case mouse.ActionScroll:  // wheel tick, see ParseScroll
//	}
//
// The split divider uses press/drag/release to run its drag session; the
// editor uses press to place the cursor and scroll to move its viewport.
package mouse
