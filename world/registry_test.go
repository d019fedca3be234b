package world_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/cckdebug/handlers"
	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryPlayers(t *testing.T) {
	r := world.NewRegistry()
	var removed []string
	r.OnRemove(func(id string) { removed = append(removed, id) })

	r.Join("Nyx", handlers.AvatarInfo{PlayerID: "p1", AvatarID: "a1"})
	r.Join("Orbit", handlers.AvatarInfo{PlayerID: "p2", AvatarID: "a2"})
	r.Join("Nyx", handlers.AvatarInfo{PlayerID: "p1", AvatarID: "a3"})

	avatars := r.Avatars()
	require.Len(t, avatars, 2, "rejoining replaces the avatar")
	assert.Equal(t, "a3", avatars[0].AvatarID)

	name, ok := r.Players().Lookup("p2")
	assert.True(t, ok)
	assert.Equal(t, "Orbit", name)

	assert.True(t, r.Leave("p1"))
	assert.False(t, r.Leave("p1"))
	assert.Equal(t, []string{"p1"}, removed)

	_, ok = r.Players().Lookup("p1")
	assert.False(t, ok)
	assert.Len(t, r.Avatars(), 1)
}

func TestRegistryAvatarParameters(t *testing.T) {
	r := world.NewRegistry()
	r.Join("Nyx", handlers.AvatarInfo{PlayerID: "p1"})

	assert.True(t, r.SetAvatarParameter("p1", "Grounded", overlay.Bool(true)))
	assert.True(t, r.SetAvatarParameter("p1", "MovementX", overlay.Float(0.5)))
	assert.True(t, r.SetAvatarParameter("p1", "Grounded", overlay.Bool(false)))
	assert.False(t, r.SetAvatarParameter("missing", "Grounded", overlay.Bool(false)))

	assert.Equal(t, []handlers.Parameter{
		{Name: "Grounded", Value: overlay.Bool(false)},
		{Name: "MovementX", Value: overlay.Float(0.5)},
	}, r.Avatars()[0].Parameters)
}

func TestRegistrySpawnables(t *testing.T) {
	r := world.NewRegistry()
	var removed []string
	r.OnRemove(func(id string) { removed = append(removed, id) })

	r.Spawn(handlers.SpawnableInfo{InstanceID: "i1", SpawnableID: "s1"})
	r.NameSpawnable("s1", "Pen")

	assert.True(t, r.SetSyncValue("i1", "Charge", overlay.Float(0.25), 12))
	assert.False(t, r.SetSyncValue("i2", "Charge", overlay.Float(0.25), 12))

	spawnables := r.Spawnables()
	require.Len(t, spawnables, 1)
	assert.Equal(t, 12.0, spawnables[0].LastUpdated)
	assert.Equal(t, []handlers.Parameter{{Name: "Charge", Value: overlay.Float(0.25)}}, spawnables[0].SyncValues)

	name, ok := r.SpawnableNames().Lookup("s1")
	assert.True(t, ok)
	assert.Equal(t, "Pen", name)

	assert.True(t, r.Despawn("i1"))
	assert.False(t, r.Despawn("i1"))
	assert.Equal(t, []string{"i1"}, removed)
	assert.Empty(t, r.Spawnables())
}

func TestPopulate(t *testing.T) {
	r := world.NewRegistry()
	rng := rand.New(rand.NewPCG(1, 2))

	world.Populate(r, rng, 3, 4)

	avatars := r.Avatars()
	require.Len(t, avatars, 3)
	assert.True(t, avatars[0].IsLocal)
	assert.False(t, avatars[1].IsLocal)
	for _, a := range avatars {
		assert.Len(t, a.PlayerID, 36)
		assert.NotEmpty(t, a.Pointers)
		_, ok := r.Players().Lookup(a.PlayerID)
		assert.True(t, ok)
	}

	spawnables := r.Spawnables()
	require.Len(t, spawnables, 4)
	for _, s := range spawnables {
		_, ok := r.Players().Lookup(s.OwnerID)
		assert.True(t, ok, "spawnables are owned by players in the instance")
	}
}

func TestSimulatorChangesTelemetry(t *testing.T) {
	r := world.NewRegistry()
	r.Join("Nyx", handlers.AvatarInfo{
		PlayerID:   "p1",
		Parameters: []handlers.Parameter{{Name: "MovementX", Value: overlay.Float(0)}},
	})
	r.Spawn(handlers.SpawnableInfo{InstanceID: "i1"})

	sim := &world.Simulator{Registry: r, Rand: rand.New(rand.NewPCG(3, 4)), Rate: 1}
	sim.Execute(&overlay.Frame{Number: 1, Time: 5})

	assert.NotEqual(t, overlay.Float(0), r.Avatars()[0].Parameters[0].Value)
	assert.Equal(t, 5.0, r.Spawnables()[0].LastUpdated)
}
