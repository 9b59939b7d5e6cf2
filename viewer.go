package rfcdoc

import "context"

// Viewer hands a document file to an external program.
type Viewer interface {
	// View opens the file at path. The program's exit status is not
	// inspected; only failures to start it are returned.
	View(ctx context.Context, path string) error
}
