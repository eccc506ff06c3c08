package testbed

import (
	"github.com/spaghettifunk/anima-actors/engine/actors/fpcamera"
	"github.com/spaghettifunk/anima-actors/engine/config"
	"github.com/spaghettifunk/anima-actors/engine/core"
	"github.com/spaghettifunk/anima-actors/engine/world"
)

// Sponza is the walkthrough demo: a first person camera plus a scene actor
// that keeps track of the last input it saw.
type Sponza struct {
	config  *config.Config
	player  *fpcamera.Actor
	scene   *sceneActor
	retunes chan fpcamera.Tuning
}

func NewSponza(cfg *config.Config) (*Sponza, error) {
	opts, err := cfg.CameraOptions()
	if err != nil {
		core.LogError("invalid camera configuration: %s", err)
		return nil, err
	}

	s := &Sponza{
		config:  cfg,
		player:  fpcamera.NewActor(fpcamera.New(opts...)),
		scene:   &sceneActor{},
		retunes: make(chan fpcamera.Tuning, 1),
	}
	s.player.WatchTuning(s.retunes)
	return s, nil
}

// Boot populates the world. It matches engine.Scene.
func (s *Sponza) Boot(w *world.World) error {
	core.LogInfo("booting %s...", s.config.Application.Name)

	w.AddActor(w.NewGameObject("player"), s.player)
	w.AddActor(w.NewGameObject("sponza"), s.scene)
	return nil
}

// Retune hands new camera tuning to the player. A pending value that was not
// consumed yet is replaced.
func (s *Sponza) Retune(t fpcamera.Tuning) {
	select {
	case <-s.retunes:
	default:
	}
	s.retunes <- t
}

// ForwardConfigUpdates retunes the player for every config published on updates
// until the channel is closed.
func (s *Sponza) ForwardConfigUpdates(updates <-chan *config.Config) {
	for cfg := range updates {
		s.Retune(cfg.Tuning())
	}
}

func (s *Sponza) Player() *fpcamera.Actor {
	return s.player
}

// LastEvent returns the most recent input event the scene received.
func (s *Sponza) LastEvent() (core.Event, bool) {
	return s.scene.last, s.scene.seen
}

type sceneActor struct {
	last core.Event
	seen bool
}

func (a *sceneActor) OnStart(w *world.World) error {
	return nil
}

func (a *sceneActor) OnUpdate(w *world.World) error {
	events := w.Events()
	if len(events) == 0 {
		return nil
	}
	ev := events[len(events)-1]
	if a.seen && ev == a.last {
		return nil
	}
	a.last = ev
	a.seen = true
	if ev.Kind != core.EVENT_MOUSE_POS {
		core.LogDebug("last event: %s", ev)
	}
	return nil
}

func (a *sceneActor) Capabilities() world.Capability {
	return world.CapabilityInput
}
