// Package export defines the storage seam downstream of the
// renderer. The engine itself never touches a Store; callers hand the
// finished buffer across this boundary.
package export

import "context"

// Metadata travels alongside a stored document.
type Metadata map[string]string

// Store persists a rendered document and returns a locator for it.
// Remote backends live outside this repository; the interface is the
// contract they implement.
type Store interface {
	Put(ctx context.Context, filename string, data []byte, contentType string, meta Metadata) (string, error)
}
