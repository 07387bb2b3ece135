package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fieldscan/surveyor/internal/conf"
	"github.com/fieldscan/surveyor/internal/inspect"
	"github.com/fieldscan/surveyor/pkg/geometry"
	"github.com/fieldscan/surveyor/pkg/stl"
	"github.com/fieldscan/surveyor/pkg/viewer"
	"github.com/fieldscan/surveyor/pkg/watcher"
)

// CameraState drives the view. The viewer.Camera is the source of truth;
// the raylib camera is a mirror refreshed every frame for rendering.
type CameraState struct {
	cam   *viewer.Camera
	rlCam rl.Camera3D

	defaultDistance  float64
	defaultRotationX float64
	defaultRotationY float64
}

// ModelData holds the loaded surface model and its render mesh
type ModelData struct {
	model    *stl.Model
	mesh     rl.Mesh
	material rl.Material
	center   geometry.Vector3
	size     float64            // Max dimension, used for marker scaling
	vertices []geometry.Vector3 // Deduplicated, used for surface picking
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showOverlay   bool
	showHelp      bool
}

// InteractionState holds per-frame mouse bookkeeping
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool

	hoveredSurface    geometry.Vector3
	hasHoveredSurface bool

	// Live link candidate shown while annotate mode hovers the surface
	linkPreview *inspect.LinkedMeasurementRef
}

// ToolState holds the values the next placed entity will be created with
type ToolState struct {
	annotationType int // Index into inspect.AnnotationTypes
	severity       inspect.Severity
	flags          inspect.ComplianceFlags
	datumKind      int // Index into datumKinds
	category       int // Index into inspect.ConditionCategories
	assessmentID   int // Selected assessment receiving score keys, 0 none
}

// FileWatchState holds model auto-reload state
type FileWatchState struct {
	sourceFile       string
	fileWatcher      *watcher.FileWatcher
	needsReload      bool
	isLoading        bool
	loadingStartTime time.Time
	loadedModel      *stl.Model
}

// UIState holds rendering resources for the HUD
type UIState struct {
	font rl.Font
}

// App is the interactive inspection viewer
type App struct {
	Settings *conf.Settings

	Camera      CameraState
	Model       ModelData
	View        ViewSettings
	Interaction InteractionState
	Tool        ToolState
	FileWatch   FileWatchState
	UI          UIState

	Session *inspect.Session
	Overlay *overlayState
}
