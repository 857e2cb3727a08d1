// internal/snapshot/snapshot.go
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/vmihailenco/msgpack/v5"

	"go-skyfire/internal/app"
)

// Encode serializes a frame with msgpack. FrameState carries no maps,
// so equal frames always encode to equal bytes.
func Encode(fs app.FrameState) ([]byte, error) {
	b, err := msgpack.Marshal(fs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame %d: %w", fs.Tick, err)
	}
	return b, nil
}

// Decode is the inverse of Encode.
func Decode(b []byte) (app.FrameState, error) {
	var fs app.FrameState
	if err := msgpack.Unmarshal(b, &fs); err != nil {
		return app.FrameState{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	return fs, nil
}

// Digest returns the hex sha256 of the encoded frame.
func Digest(fs app.FrameState) (string, error) {
	b, err := Encode(fs)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Recorder folds every frame of a run into one rolling digest.
type Recorder struct {
	h      hash.Hash
	frames int
}

func NewRecorder() *Recorder {
	return &Recorder{h: sha256.New()}
}

// Add appends one frame to the digest.
func (r *Recorder) Add(fs app.FrameState) error {
	b, err := Encode(fs)
	if err != nil {
		return err
	}
	r.h.Write(b)
	r.frames++
	return nil
}

// Frames returns how many frames were added.
func (r *Recorder) Frames() int { return r.frames }

// Sum returns the hex digest of all frames so far.
func (r *Recorder) Sum() string {
	return hex.EncodeToString(r.h.Sum(nil))
}
