package world

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/cckdebug/handlers"
	"github.com/plus3/cckdebug/overlay"
)

var (
	usernames = []string{"Kafeijao", "Nyx", "Sparrow", "Orbit", "Mellow", "Quill"}
	avatars   = []string{"Fox", "Robot", "Slime", "Knight"}
	props     = []string{"Pen", "Camera", "Chair", "Boombox", "Torch"}
)

// NewID returns a random canonical GUID.
func NewID(rng *rand.Rand) string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		rng.Uint32(), rng.Uint32()&0xffff, rng.Uint32()&0xffff, rng.Uint32()&0xffff, rng.Uint64()&0xffffffffffff)
}

// Populate fills r with random players and spawnables drawn from rng.
// Roughly a third of the content ids are left without a cached name.
func Populate(r *Registry, rng *rand.Rand, players, spawnables int) {
	for range players {
		n := len(r.avatars)
		avatar := handlers.AvatarInfo{
			PlayerID: NewID(rng),
			AvatarID: NewID(rng),
			IsLocal:  n == 0,
			Parameters: []handlers.Parameter{
				{Name: "GestureLeft", Value: overlay.Int(0)},
				{Name: "GestureRight", Value: overlay.Int(0)},
				{Name: "MovementX", Value: overlay.Float(0)},
				{Name: "MovementY", Value: overlay.Float(0)},
				{Name: "Grounded", Value: overlay.Bool(true)},
			},
			Pointers: []string{"Head", "Hand.L", "Hand.R"}[:1+rng.IntN(3)],
			Triggers: []string{"Tail", "Ears"}[:rng.IntN(3)],
		}
		if rng.IntN(3) > 0 {
			r.NameAvatar(avatar.AvatarID, avatars[rng.IntN(len(avatars))])
		}
		r.Join(usernames[n%len(usernames)], avatar)
	}

	ids := make([]string, 0, players)
	for _, a := range r.Avatars() {
		ids = append(ids, a.PlayerID)
	}
	for range spawnables {
		prop := handlers.SpawnableInfo{
			InstanceID:  NewID(rng),
			SpawnableID: NewID(rng),
			SyncValues: []handlers.Parameter{
				{Name: "Grabbed", Value: overlay.Bool(false)},
				{Name: "Charge", Value: overlay.Float(1)},
			},
			Pointers: []string{"Tip"},
		}
		if len(ids) > 0 {
			prop.OwnerID = ids[rng.IntN(len(ids))]
		}
		if rng.IntN(3) > 0 {
			r.NameSpawnable(prop.SpawnableID, props[rng.IntN(len(props))])
		}
		r.Spawn(prop)
	}
}

// Simulator is an overlay.System that moves avatar and spawnable telemetry
// every frame so the debugger has something to show.
type Simulator struct {
	Registry *Registry
	Rand     *rand.Rand
	// Rate is the chance per frame that a given value changes.
	Rate float64
}

func (s *Simulator) Execute(frame *overlay.Frame) {
	for _, a := range s.Registry.Avatars() {
		if s.Rand.Float64() < s.Rate {
			s.Registry.SetAvatarParameter(a.PlayerID, "MovementX", overlay.Float(s.Rand.Float32()*2-1))
			s.Registry.SetAvatarParameter(a.PlayerID, "MovementY", overlay.Float(s.Rand.Float32()*2-1))
		}
		if s.Rand.Float64() < s.Rate/10 {
			s.Registry.SetAvatarParameter(a.PlayerID, "GestureLeft", overlay.Int(s.Rand.IntN(8)))
			s.Registry.SetAvatarParameter(a.PlayerID, "Grounded", overlay.Bool(s.Rand.IntN(4) > 0))
		}
	}
	for _, p := range s.Registry.Spawnables() {
		if s.Rand.Float64() < s.Rate {
			s.Registry.SetSyncValue(p.InstanceID, "Charge", overlay.Float(s.Rand.Float32()), frame.Time)
		}
	}
}
