package consoleui

import "errors"

// ErrAborted is returned when the user interrupts a prompt, typically with
// Ctrl-C.
var ErrAborted = errors.New("prompt aborted")
