package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/anima-actors/engine/actors/fpcamera"
	"github.com/spaghettifunk/anima-actors/engine/core"
	"github.com/spaghettifunk/anima-actors/engine/math"
)

type Config struct {
	Application ApplicationConfig `toml:"application"`
	Camera      CameraConfig      `toml:"camera"`
	// Bindings maps movement names (forward, turn_left, ...) to key codes (KeyW, ArrowLeft, ...).
	Bindings map[string]string `toml:"bindings"`
}

type ApplicationConfig struct {
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// Window starting position, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting size, if applicable.
	StartWidth  uint32 `toml:"start_width"`
	StartHeight uint32 `toml:"start_height"`
	LogLevel    string `toml:"log_level"`
	// Frames between two camera pose log lines. Zero disables the log.
	PoseLogInterval uint64 `toml:"pose_log_interval"`
	// Capacity of the per-frame input queue.
	EventQueueSize int `toml:"event_queue_size"`
}

type CameraConfig struct {
	Position         [3]float32 `toml:"position"`
	Direction        [3]float32 `toml:"direction"`
	Speed            float32    `toml:"speed"`
	AngleSpeed       float32    `toml:"angle_speed"`
	MouseSensitivity float32    `toml:"mouse_sensitivity"`
	PitchEpsilon     float32    `toml:"pitch_epsilon"`
	LookDistance     float32    `toml:"look_distance"`
}

func Default() *Config {
	return &Config{
		Application: ApplicationConfig{
			Name:            "Anima Sponza",
			StartPosX:       100,
			StartPosY:       100,
			StartWidth:      1280,
			StartHeight:     720,
			LogLevel:        "info",
			PoseLogInterval: 120,
			EventQueueSize:  256,
		},
		Camera: CameraConfig{
			Position:         [3]float32{0, 0, -3},
			Direction:        [3]float32{0, 0, 1},
			Speed:            10,
			AngleSpeed:       0.5,
			MouseSensitivity: 0.005,
			PitchEpsilon:     0.1,
			LookDistance:     1,
		},
		Bindings: map[string]string{},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := core.ParseLogLevel(c.Application.LogLevel); err != nil {
		return fmt.Errorf("%w: application.log_level: %v", core.ErrInvalidConfig, err)
	}
	if c.Application.EventQueueSize < 1 {
		return fmt.Errorf("%w: application.event_queue_size must be > 0", core.ErrInvalidConfig)
	}
	cam := c.Camera
	if cam.Speed <= 0 || cam.AngleSpeed <= 0 || cam.MouseSensitivity <= 0 || cam.LookDistance <= 0 {
		return fmt.Errorf("%w: camera speed, angle_speed, mouse_sensitivity and look_distance must be > 0", core.ErrInvalidConfig)
	}
	if cam.PitchEpsilon <= 0 || cam.PitchEpsilon >= math.K_HALF_PI {
		return fmt.Errorf("%w: camera.pitch_epsilon must be in (0, pi/2)", core.ErrInvalidConfig)
	}
	if c.direction().LengthSquared() == 0 {
		return fmt.Errorf("%w: camera.direction must not be zero", core.ErrInvalidConfig)
	}
	if _, err := fpcamera.BindingsFromNames(c.Bindings); err != nil {
		return fmt.Errorf("%w: bindings: %v", core.ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) direction() math.Vec3 {
	d := c.Camera.Direction
	return math.NewVec3(d[0], d[1], d[2])
}

// LogLevel returns the parsed application log level. Call after Validate.
func (c *Config) LogLevel() core.LogLevel {
	level, _ := core.ParseLogLevel(c.Application.LogLevel)
	return level
}

// Tuning extracts the hot-reloadable camera values.
func (c *Config) Tuning() fpcamera.Tuning {
	return fpcamera.Tuning{
		Speed:            c.Camera.Speed,
		AngleSpeed:       c.Camera.AngleSpeed,
		MouseSensitivity: c.Camera.MouseSensitivity,
		LookDistance:     c.Camera.LookDistance,
	}
}

// CameraOptions turns the camera section and bindings into controller options.
func (c *Config) CameraOptions() ([]fpcamera.Option, error) {
	bindings, err := fpcamera.BindingsFromNames(c.Bindings)
	if err != nil {
		return nil, err
	}
	p := c.Camera.Position
	return []fpcamera.Option{
		fpcamera.WithPosition(math.NewVec3(p[0], p[1], p[2])),
		fpcamera.WithDirection(c.direction()),
		fpcamera.WithPitchEpsilon(c.Camera.PitchEpsilon),
		fpcamera.WithTuning(c.Tuning()),
		fpcamera.WithBindings(bindings),
	}, nil
}
