// Package handlers contains the debugger pages: avatars, spawnables and the
// overlay's own statistics.
package handlers

import "github.com/plus3/cckdebug/overlay"

// Parameter is a named, live value such as an animator parameter or a
// spawnable sync value.
type Parameter struct {
	Name  string
	Value overlay.Value
}

// AvatarInfo is a snapshot of one player's avatar.
type AvatarInfo struct {
	PlayerID string
	AvatarID string
	IsLocal  bool

	Parameters []Parameter
	// Pointers and Triggers name the sub-objects that can be visualized.
	Pointers []string
	Triggers []string
}

// AvatarSource lists the avatars currently in the instance.
type AvatarSource interface {
	Avatars() []AvatarInfo
}

// SpawnableInfo is a snapshot of one spawned prop.
type SpawnableInfo struct {
	InstanceID  string
	SpawnableID string
	OwnerID     string

	SyncValues []Parameter
	Pointers   []string
	Triggers   []string
	// LastUpdated is the time in seconds the sync values were last received.
	LastUpdated float64
}

// SpawnableSource lists the spawnables currently in the instance.
type SpawnableSource interface {
	Spawnables() []SpawnableInfo
}
