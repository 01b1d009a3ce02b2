package coursechef

import "context"

// Stage names a snapshot of a course tree written for inspection.
type Stage string

// Stage constants.
const (
	StageOriginal    Stage = "original"
	StageClean       Stage = "clean"
	StageTransformed Stage = "transformed"
)

// TreeWriter persists tree snapshots as JSON.
type TreeWriter interface {
	// WriteTree writes v as the stage snapshot of the course id.
	WriteTree(ctx context.Context, stage Stage, id string, v any) error

	// WriteChannel writes the channel record handed to the uploader.
	WriteChannel(ctx context.Context, ch *Channel) error
}
