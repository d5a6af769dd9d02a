package server

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/arrowfall/config"
	"github.com/automoto/arrowfall/physics"
	"github.com/automoto/arrowfall/shared/messages"
	"github.com/automoto/arrowfall/shared/protocol"
	"github.com/automoto/arrowfall/systems"
	"github.com/automoto/arrowfall/systems/factory"
	"github.com/automoto/arrowfall/terrain"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

const (
	defaultTickRate = 60
	commandBuffer   = 256
)

// Peer is the part of a network client the server talks to.
// *router.NetworkClient satisfies it.
type Peer interface {
	Id() string
	SendMessage(msg any) error
}

// command runs on the loop goroutine. Network callbacks never touch the
// world directly.
type command func()

// player is the server-side record of a joined client. Its fields are only
// read and written on the loop goroutine.
type player struct {
	name   string
	entity donburi.Entity
	input  messages.PlayerInput
}

// Server runs the authoritative simulation and replicates it to clients.
type Server struct {
	sim       *systems.Simulation
	level     *terrain.Level
	cfg       config.ServerConfig
	loop      *GameLoop
	transport *transports.WsServerTransport

	commands  chan command
	nextSpawn int

	// Track which network client owns which player
	players map[Peer]*player
	mu      sync.RWMutex
}

// NewServer builds the world for level and wires the simulation. The network
// side starts with Start.
func NewServer(level *terrain.Level, cfg config.Config) (*Server, error) {
	if err := protocol.RegisterComponents(); err != nil {
		return nil, fmt.Errorf("failed to register components: %w", err)
	}

	world := donburi.NewWorld()

	// Set up the world for esync
	srvsync.UseEsync(world)

	factory.CreateLevel(world, level.Name, level.Terrain)

	s := &Server{
		sim:      systems.NewSimulation(world, physics.NewEngine(cfg.Physics)),
		level:    level,
		cfg:      cfg.Server,
		commands: make(chan command, commandBuffer),
		players:  make(map[Peer]*player),
	}
	s.loop = NewGameLoop(s, cfg.Server.TickRate)

	return s, nil
}

// Start begins the game loop and serves WebSocket clients on the given port.
func (s *Server) Start(port uint) error {
	s.setupRouterCallbacks()

	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the game loop.
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoin(client, req)
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.onPlayerInput(client, input)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) enqueue(c command) {
	select {
	case s.commands <- c:
	default:
		log.Printf("Warning: command queue full, dropping command")
	}
}

// ProcessCommands runs every queued command. Called at the start of a tick.
func (s *Server) ProcessCommands() {
	for {
		select {
		case c := <-s.commands:
			c()
		default:
			return
		}
	}
}

func (s *Server) onJoin(client Peer, req messages.JoinRequest) {
	if s.cfg.Version != "" && req.Version != s.cfg.Version {
		reason := fmt.Sprintf("version mismatch: server requires %q", s.cfg.Version)
		log.Printf("Rejecting client %s: %s", client.Id(), reason)
		if err := client.SendMessage(messages.JoinRejected{Reason: reason}); err != nil {
			log.Printf("Failed to send rejection to %s: %v", client.Id(), err)
		}
		return
	}

	s.enqueue(func() {
		s.join(client, req.PlayerName)
	})
}

func (s *Server) join(client Peer, name string) {
	s.mu.RLock()
	_, joined := s.players[client]
	s.mu.RUnlock()
	if joined {
		return
	}

	if name == "" {
		name = client.Id()
	}
	entry, err := s.spawnCharacter(name)
	if err != nil {
		log.Printf("Failed to setup network sync for player: %v", err)
		return
	}

	s.mu.Lock()
	s.players[client] = &player{name: name, entity: entry.Entity()}
	s.mu.Unlock()

	log.Printf("Player %q spawned for client %s", name, client.Id())

	accepted := messages.JoinAccepted{
		NetworkID:  networkID(s.World().Entry(entry.Entity())),
		ServerName: s.cfg.Name,
		Level:      s.level.Name,
		TickRate:   s.loop.tickRate,
	}
	if err := client.SendMessage(accepted); err != nil {
		log.Printf("Failed to send join acceptance to %s: %v", client.Id(), err)
	}
}

func (s *Server) onDisconnect(client Peer, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.enqueue(func() {
		s.mu.Lock()
		p, exists := s.players[client]
		if exists {
			delete(s.players, client)
		}
		s.mu.Unlock()

		w := s.World()
		if exists && w.Valid(p.entity) {
			w.Remove(p.entity)
			log.Printf("Player entity removed for client %s", client.Id())
		}
	})
}

func (s *Server) onPlayerInput(client Peer, input messages.PlayerInput) {
	s.enqueue(func() {
		s.mu.RLock()
		p, exists := s.players[client]
		s.mu.RUnlock()

		// Out-of-order inputs are dropped
		if !exists || input.Sequence < p.input.Sequence {
			return
		}
		p.input = input
	})
}

// Tick advances the world by dt seconds: queued commands, player controls,
// the simulation, respawns and finally the replicated components.
func (s *Server) Tick(dt float64) {
	s.ProcessCommands()
	s.applyInputs()
	s.sim.Update(dt)
	s.respawn()
	s.mirror()
}

func (s *Server) applyInputs() {
	w := s.World()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.players {
		if !w.Valid(p.entity) {
			continue
		}
		entry := w.Entry(p.entity)
		arrow := systems.ApplyControl(w, entry, controlFrom(p.input))
		if arrow != nil {
			if err := s.replicateArrow(arrow); err != nil {
				log.Printf("Failed to sync arrow: %v", err)
			}
		}
		acknowledge(entry, p.input.Sequence)

		// Jump and fire act once per message
		p.input.Jump = false
		p.input.Fire = false
	}
}

// respawn gives every player whose character was swept a new one.
func (s *Server) respawn() {
	w := s.World()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for client, p := range s.players {
		if w.Valid(p.entity) {
			continue
		}
		entry, err := s.spawnCharacter(p.name)
		if err != nil {
			log.Printf("Failed to respawn player %q: %v", p.name, err)
			continue
		}
		p.entity = entry.Entity()
		log.Printf("Player %q respawned for client %s", p.name, client.Id())
	}
}

// nextSpawnPoint cycles through the level's spawn points.
func (s *Server) nextSpawnPoint() terrain.Spawn {
	if len(s.level.Spawns) == 0 {
		return defaultSpawn
	}
	spawn := s.level.Spawns[s.nextSpawn%len(s.level.Spawns)]
	s.nextSpawn++
	return spawn
}

func controlFrom(input messages.PlayerInput) systems.Control {
	return systems.Control{
		Direction: input.Direction,
		Jump:      input.Jump,
		Fire:      input.Fire,
		Up:        input.Up,
		Down:      input.Down,
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.sim.World()
}

// PlayerCount returns the number of joined players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
