// Package skybox samples a six-face cubemap by direction.
package skybox

import (
	"errors"
	"fmt"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/texture"
)

// Face identifies one side of the cube.
type Face int

const (
	PosX Face = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
	faceCount
)

// FileStems are the face file names (without extension) looked up by Load.
var FileStems = [faceCount]string{
	PosX: "right",
	NegX: "left",
	PosY: "top",
	NegY: "bottom",
	PosZ: "front",
	NegZ: "back",
}

func (f Face) String() string {
	switch f {
	case PosX:
		return "+X"
	case NegX:
		return "-X"
	case PosY:
		return "+Y"
	case NegY:
		return "-Y"
	case PosZ:
		return "+Z"
	case NegZ:
		return "-Z"
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// ErrMissingFace is returned when a face file cannot be found.
var ErrMissingFace = errors.New("skybox: missing face")

// Skybox holds six immutable face textures.
type Skybox struct {
	faces [faceCount]*texture.Texture
}

// New builds a skybox from in-memory faces. All six must be present.
func New(faces map[Face]*texture.Texture) (*Skybox, error) {
	s := &Skybox{}
	for f := Face(0); f < faceCount; f++ {
		tex := faces[f]
		if tex == nil || tex.Width == 0 || tex.Height == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingFace, f)
		}
		s.faces[f] = tex
	}
	return s, nil
}

// Load eagerly reads all six faces from dir. Any missing or corrupt face is
// an error: the background cannot be synthesised.
func Load(dir string) (*Skybox, error) {
	idx, err := texture.BuildIndex(dir)
	if err != nil {
		return nil, fmt.Errorf("skybox: scan %s: %w", dir, err)
	}

	faces := make(map[Face]*texture.Texture, faceCount)
	for f := Face(0); f < faceCount; f++ {
		path, ok := idx.ResolvePath(FileStems[f])
		if !ok {
			return nil, fmt.Errorf("%w: %s (%s) in %s", ErrMissingFace, f, FileStems[f], dir)
		}
		tex, err := texture.Load(path)
		if err != nil {
			return nil, fmt.Errorf("skybox: face %s: %w", f, err)
		}
		faces[f] = tex
	}
	return New(faces)
}

// SelectFace picks the face hit by dir and the face-local UV in [0,1].
// The largest absolute component wins; ties resolve X, then Y, then Z.
func SelectFace(dir mathutil.Vec3) (face Face, u, v float64) {
	a := dir.Abs()

	var sc, tc float64
	switch {
	case a[0] >= a[1] && a[0] >= a[2]:
		if dir[0] > 0 {
			face, sc, tc = PosX, -dir[2]/a[0], dir[1]/a[0]
		} else {
			face, sc, tc = NegX, dir[2]/a[0], dir[1]/a[0]
		}
	case a[1] >= a[2]:
		if dir[1] > 0 {
			face, sc, tc = PosY, dir[0]/a[1], -dir[2]/a[1]
		} else {
			face, sc, tc = NegY, dir[0]/a[1], dir[2]/a[1]
		}
	default:
		if dir[2] > 0 {
			face, sc, tc = PosZ, dir[0]/a[2], dir[1]/a[2]
		} else {
			face, sc, tc = NegZ, -dir[0]/a[2], dir[1]/a[2]
		}
	}

	return face, 0.5 * (sc + 1), 0.5 * (tc + 1)
}

// Sample returns the linear RGB colour seen along dir.
func (s *Skybox) Sample(dir mathutil.Vec3) mathutil.Vec3 {
	face, u, v := SelectFace(dir)
	return s.faces[face].Sample(u, v)
}

// Face returns the texture for f.
func (s *Skybox) Face(f Face) *texture.Texture {
	return s.faces[f]
}
