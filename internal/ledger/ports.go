package ledger

import "context"

// Sharer hands an exported file to an external share facility.
type Sharer interface {
	// Available reports whether a share mechanism exists on this system.
	Available() bool
	// Share sends the file at path with the given MIME type.
	Share(ctx context.Context, path, mimeType string) error
}

// Picker asks the user for a document to import and returns its contents.
// Pick blocks until the user chooses a file or cancels; returning is the
// explicit completion signal that releases the ledger's import guard.
type Picker interface {
	Pick(ctx context.Context) ([]byte, error)
}

// PickerFunc adapts a plain function to the Picker interface.
type PickerFunc func(ctx context.Context) ([]byte, error)

// Pick implements Picker.
func (f PickerFunc) Pick(ctx context.Context) ([]byte, error) {
	return f(ctx)
}
