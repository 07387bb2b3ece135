// Package conf loads the viewer configuration from an optional surveyor.yaml
// file, falling back to built-in defaults for everything the file does not
// set.
package conf

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/fieldscan/surveyor/internal/inspect"
)

// WindowSettings controls the viewer window
type WindowSettings struct {
	Width  int
	Height int
	Title  string
	FPS    int
}

// PickingSettings are the screen-space tolerances for selecting things with
// the mouse, in pixels
type PickingSettings struct {
	PointTolerancePx  float64 // Grabbing an existing measurement point
	EntityTolerancePx float64 // Selecting annotations, datums, assessments
}

// LinkingSettings controls annotation-to-measurement association
type LinkingSettings struct {
	ProximityThreshold float64 // World units from a measurement segment
}

// OverlaySettings controls screen-space label placement
type OverlaySettings struct {
	MaxLabelDistance float64       // Labels farther from the camera are hidden
	FallbackInterval time.Duration // Re-sync cadence when frames are skipped
}

// Settings is the full viewer configuration
type Settings struct {
	Debug   bool
	Window  WindowSettings
	Picking PickingSettings
	Linking LinkingSettings
	Overlay OverlaySettings
	Palette []string
	Watch   bool // Reload the model when the file changes on disk
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "surveyor")
	v.SetDefault("window.fps", 60)

	v.SetDefault("picking.pointtolerancepx", 10.0)
	v.SetDefault("picking.entitytolerancepx", 18.0)

	v.SetDefault("linking.proximitythreshold", inspect.DefaultProximityThreshold)

	v.SetDefault("overlay.maxlabeldistance", 100.0)
	v.SetDefault("overlay.fallbackinterval", 250*time.Millisecond)

	v.SetDefault("palette", inspect.DefaultPalette)

	v.SetDefault("watch", true)
}

// Load reads surveyor.yaml from the given directory, or from the current
// directory when dir is empty. A missing config file is not an error; the
// defaults apply.
func Load(dir string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("surveyor")
	v.SetConfigType("yaml")
	if dir == "" {
		dir = "."
	}
	v.AddConfigPath(dir)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func validate(s *Settings) error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Picking.PointTolerancePx <= 0 || s.Picking.EntityTolerancePx <= 0 {
		return errors.New("picking tolerances must be positive")
	}
	if s.Linking.ProximityThreshold <= 0 {
		return fmt.Errorf("linking proximity threshold must be positive, got %v", s.Linking.ProximityThreshold)
	}
	if s.Overlay.MaxLabelDistance <= 0 {
		return errors.New("overlay max label distance must be positive")
	}
	if s.Overlay.FallbackInterval <= 0 {
		return errors.New("overlay fallback interval must be positive")
	}
	if len(s.Palette) == 0 {
		return errors.New("palette must contain at least one color")
	}
	return nil
}
