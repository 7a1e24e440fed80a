package grid

import "errors"

// ErrClipboardUnavailable is returned when no clipboard collaborator is
// wired or the system clipboard cannot be reached. Grid state is never
// affected by a clipboard failure.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")
