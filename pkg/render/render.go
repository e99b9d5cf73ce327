// Package render turns leave balance snapshots into text or images. Renderers
// only read the snapshot they are given.
package render

import (
	"encoding/base64"
	"errors"

	"github.com/poojithagummadi/Model-Context-Protocol/pkg/records"
)

// DefaultCap is the balance that fills a whole bar.
const DefaultCap = 20

// ErrEmptySnapshot is returned when there is nothing to draw.
var ErrEmptySnapshot = errors.New("snapshot has no employees")

// Renderer produces a presentation of a snapshot.
type Renderer interface {
	Render(snapshot records.Snapshot) (string, error)
}

// ImageRenderer produces encoded image bytes for a snapshot.
type ImageRenderer interface {
	Renderer
	Encode(snapshot records.Snapshot) (data []byte, mimeType string, err error)
}

// DataURI wraps encoded bytes in a data URI.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
