package core

import "github.com/google/uuid"

// NewMeshID returns a fresh identifier for a generated mesh. Ids are only
// used to name meshes at the host boundary; the kernel never looks them up.
func NewMeshID() string {
	return uuid.NewString()
}

// ShortID trims an id to its first block, which is enough to tell meshes
// apart in object names and log lines.
func ShortID(id string) string {
	for i := 0; i < len(id); i++ {
		if id[i] == '-' {
			return id[:i]
		}
	}
	return id
}
