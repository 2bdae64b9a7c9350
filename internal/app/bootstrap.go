package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/voxelcube/internal/clock"
	"github.com/coreman2200/voxelcube/internal/config"
	"github.com/coreman2200/voxelcube/internal/cube"
	"github.com/coreman2200/voxelcube/internal/effects"
	"github.com/coreman2200/voxelcube/internal/geometry"
	"github.com/coreman2200/voxelcube/internal/preview"
	"github.com/coreman2200/voxelcube/internal/show"
)

// Core is a cube with everything needed to animate it.
type Core struct {
	Cube      *cube.Cube[geometry.Default]
	Seq       *effects.Sequencer
	Player    *show.Player
	Conductor *Conductor
}

// InitCore wires a cube, the effect sequencer and a player loaded with the
// configured program. sink may be nil.
func InitCore(cfg *config.Config, clk clock.Clock, sink preview.Sink, log zerolog.Logger) (*Core, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug().Int64("seed", seed).Uint8("size", geometry.Default{}.Size()).Msg("core init")

	c := cube.New[geometry.Default]()
	seq := effects.New(c, clk, rand.New(rand.NewSource(seed)), log.With().Str("component", "effects").Logger())

	player := show.NewPlayer(seq, clk, log.With().Str("component", "show").Logger())
	if err := player.Load(cfg.Program); err != nil {
		return nil, fmt.Errorf("load program: %w", err)
	}

	cond := NewConductor(c, seq, player, sink, log.With().Str("component", "conductor").Logger())
	cond.Limit = cfg.Brightness
	return &Core{Cube: c, Seq: seq, Player: player, Conductor: cond}, nil
}
