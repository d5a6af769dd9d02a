package server

import (
	"github.com/automoto/arrowfall/components"
	"github.com/automoto/arrowfall/shared/gamemath"
	"github.com/automoto/arrowfall/shared/netcomponents"
	"github.com/automoto/arrowfall/systems/factory"
	"github.com/automoto/arrowfall/terrain"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// defaultSpawn is used by levels without a spawn group.
var defaultSpawn = terrain.Spawn{Name: "default", Position: gamemath.Vec(1, 1)}

var replicatedQuery = donburi.NewQuery(filter.Contains(components.Body, netcomponents.NetPosition))

func (s *Server) spawnCharacter(name string) (*donburi.Entry, error) {
	spawn := s.nextSpawnPoint()
	entry := factory.CreateCharacter(s.World(), name, spawn.Position, spawn.Size)
	return entry, s.replicateCharacter(entry)
}

// replicateCharacter attaches the network components to a character and
// marks it for sync, with interpolation for position and velocity.
func (s *Server) replicateCharacter(entry *donburi.Entry) error {
	entry.AddComponent(netcomponents.NetPosition)
	entry.AddComponent(netcomponents.NetVelocity)
	entry.AddComponent(netcomponents.NetCharacter)
	mirrorEntry(s.World(), entry)

	entity := entry.Entity()
	return srvsync.NetworkSync(s.World(), &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetCharacter,
	)
}

func (s *Server) replicateArrow(entry *donburi.Entry) error {
	entry.AddComponent(netcomponents.NetPosition)
	entry.AddComponent(netcomponents.NetVelocity)
	entry.AddComponent(netcomponents.NetArrow)
	mirrorEntry(s.World(), entry)

	entity := entry.Entity()
	return srvsync.NetworkSync(s.World(), &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetArrow,
	)
}

// mirror copies simulation state into the replicated components.
func (s *Server) mirror() {
	w := s.World()
	replicatedQuery.Each(w, func(entry *donburi.Entry) {
		mirrorEntry(w, entry)
	})
}

func mirrorEntry(w donburi.World, entry *donburi.Entry) {
	body := components.Body.Get(entry)

	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{
		X: body.Position.X,
		Y: body.Position.Y,
	})
	if entry.HasComponent(netcomponents.NetVelocity) {
		netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{
			X: body.Velocity.X,
			Y: body.Velocity.Y,
		})
	}

	if entry.HasComponent(netcomponents.NetCharacter) && entry.HasComponent(components.Character) {
		character := components.Character.Get(entry)
		state := netcomponents.NetCharacter.Get(entry)
		state.Name = character.Name
		state.Width = body.Size.X
		state.Height = body.Size.Y
		state.Facing = facing(character.Facing)
		state.OnGround = character.OnGround
		state.Stomps = character.Stomps
		state.Hits = character.Hits
	}

	if entry.HasComponent(netcomponents.NetArrow) && entry.HasComponent(components.Arrow) {
		arrow := components.Arrow.Get(entry)
		state := netcomponents.NetArrow.Get(entry)
		state.Width = body.Size.X
		state.Height = body.Size.Y
		state.Stuck = arrow.Stuck
		state.OwnerNetworkID = 0
		if w.Valid(arrow.Owner) {
			state.OwnerNetworkID = uint(networkID(w.Entry(arrow.Owner)))
		}
	}
}

// acknowledge records the last input sequence applied to a character.
func acknowledge(entry *donburi.Entry, sequence uint32) {
	if entry.HasComponent(netcomponents.NetCharacter) {
		netcomponents.NetCharacter.Get(entry).LastSequence = sequence
	}
}

// networkID returns the esync id of entry, or 0 when it is not synced.
func networkID(entry *donburi.Entry) esync.NetworkId {
	if nid := esync.GetNetworkId(entry); nid != nil {
		return *nid
	}
	return 0
}

func facing(f float64) int {
	if f < 0 {
		return -1
	}
	return 1
}
