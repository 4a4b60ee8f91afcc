package controller

import "errors"

// ErrClipboardUnsupported means no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("clipboard: no clipboard utility available")
