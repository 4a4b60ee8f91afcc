// Package app composes the plotview screen and runs its event loop.
//
// The screen is three rows of components:
//
//	┌──────────────────────────────────────────────┐
//	│ top bar: title, Reset, Plot, GitHub          │
//	├──────────────────────┬┬──────────────────────┤
//	│ editor               ││ preview              │
//	│                      ││                      │
//	├──────────────────────┴┴──────────────────────┤
//	│ status line                                  │
//	└──────────────────────────────────────────────┘
//
// A single goroutine owns every component. Terminal events are read by a
// poll goroutine and handed to the loop over a channel; work finished on
// other goroutines, such as a config reload, is posted back as an interrupt
// event so it is applied on the loop.
package app
