// Package world is an in-memory stand-in for the game instance: the players
// in it, their avatars, the spawned props and the content name caches.
package world

import (
	"slices"

	"github.com/plus3/cckdebug/handlers"
	"github.com/plus3/cckdebug/overlay"
)

// Registry holds the instance state. It implements handlers.AvatarSource and
// handlers.SpawnableSource. It is not safe for concurrent use.
type Registry struct {
	players    map[string]string
	avatars    []handlers.AvatarInfo
	spawnables []handlers.SpawnableInfo

	avatarNames    overlay.NameMap
	spawnableNames overlay.NameMap

	onRemove []func(id string)
}

// NewRegistry creates an empty instance.
func NewRegistry() *Registry {
	return &Registry{
		players:        make(map[string]string),
		avatarNames:    make(overlay.NameMap),
		spawnableNames: make(overlay.NameMap),
	}
}

// OnRemove registers fn to be called with the player or instance id of every
// avatar or spawnable that leaves the instance.
func (r *Registry) OnRemove(fn func(id string)) {
	r.onRemove = append(r.onRemove, fn)
}

func (r *Registry) removed(id string) {
	for _, fn := range r.onRemove {
		fn(id)
	}
}

// Join adds a player wearing avatar.
func (r *Registry) Join(username string, avatar handlers.AvatarInfo) {
	r.players[avatar.PlayerID] = username
	if i := r.avatarIndex(avatar.PlayerID); i >= 0 {
		r.avatars[i] = avatar
		return
	}
	r.avatars = append(r.avatars, avatar)
}

// Leave removes a player and their avatar. It reports whether the player was
// present.
func (r *Registry) Leave(playerID string) bool {
	i := r.avatarIndex(playerID)
	if i < 0 {
		return false
	}
	delete(r.players, playerID)
	r.avatars = slices.Delete(r.avatars, i, i+1)
	r.removed(playerID)
	return true
}

// SetAvatarParameter updates or appends a parameter of a player's avatar.
func (r *Registry) SetAvatarParameter(playerID, name string, v overlay.Value) bool {
	i := r.avatarIndex(playerID)
	if i < 0 {
		return false
	}
	r.avatars[i].Parameters = setParameter(r.avatars[i].Parameters, name, v)
	return true
}

// Spawn adds or replaces a spawnable by instance id.
func (r *Registry) Spawn(s handlers.SpawnableInfo) {
	if i := r.spawnableIndex(s.InstanceID); i >= 0 {
		r.spawnables[i] = s
		return
	}
	r.spawnables = append(r.spawnables, s)
}

// Despawn removes a spawnable. It reports whether it existed.
func (r *Registry) Despawn(instanceID string) bool {
	i := r.spawnableIndex(instanceID)
	if i < 0 {
		return false
	}
	r.spawnables = slices.Delete(r.spawnables, i, i+1)
	r.removed(instanceID)
	return true
}

// SetSyncValue updates or appends a sync value and stamps the spawnable as
// updated at now.
func (r *Registry) SetSyncValue(instanceID, name string, v overlay.Value, now float64) bool {
	i := r.spawnableIndex(instanceID)
	if i < 0 {
		return false
	}
	s := &r.spawnables[i]
	s.SyncValues = setParameter(s.SyncValues, name, v)
	s.LastUpdated = now
	return true
}

// NameAvatar caches the display name of avatar content.
func (r *Registry) NameAvatar(id, name string) { r.avatarNames[id] = name }

// NameSpawnable caches the display name of spawnable content.
func (r *Registry) NameSpawnable(id, name string) { r.spawnableNames[id] = name }

// Avatars returns a snapshot of the avatars in join order.
func (r *Registry) Avatars() []handlers.AvatarInfo {
	return slices.Clone(r.avatars)
}

// Spawnables returns a snapshot of the spawnables in spawn order.
func (r *Registry) Spawnables() []handlers.SpawnableInfo {
	return slices.Clone(r.spawnables)
}

// Players resolves player ids to usernames.
func (r *Registry) Players() overlay.NameResolver { return overlay.NameMap(r.players) }

// AvatarNames resolves avatar content ids.
func (r *Registry) AvatarNames() overlay.NameResolver { return r.avatarNames }

// SpawnableNames resolves spawnable content ids.
func (r *Registry) SpawnableNames() overlay.NameResolver { return r.spawnableNames }

func (r *Registry) avatarIndex(playerID string) int {
	return slices.IndexFunc(r.avatars, func(a handlers.AvatarInfo) bool { return a.PlayerID == playerID })
}

func (r *Registry) spawnableIndex(instanceID string) int {
	return slices.IndexFunc(r.spawnables, func(s handlers.SpawnableInfo) bool { return s.InstanceID == instanceID })
}

func setParameter(params []handlers.Parameter, name string, v overlay.Value) []handlers.Parameter {
	for i := range params {
		if params[i].Name == name {
			params[i].Value = v
			return params
		}
	}
	return append(params, handlers.Parameter{Name: name, Value: v})
}
