package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goanatomy/internal/clipping"
	"github.com/philipparndt/goanatomy/internal/mpr"
	"github.com/philipparndt/goanatomy/pkg/config"
	"github.com/philipparndt/goanatomy/pkg/volume"
	"github.com/philipparndt/goanatomy/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3
	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
}

// SceneState holds the render scene and the engines driving it
type SceneState struct {
	scene  *RaylibScene
	bounds *clipping.BoundsCache
	engine *clipping.MeshClipEngine
	visual *clipping.PlaneVisualizer
	planes *clipping.PlaneManager
	mpr    *mpr.PlaneRenderer
	volume *volume.Volume
	center rl.Vector3
	maxDim float32
}

// Slider indices for the control panel. Clip sliders come first, then
// the three reconstruction plane sliders.
const (
	sliderClipX = iota
	sliderClipY
	sliderClipZ
	sliderMPRX
	sliderMPRY
	sliderMPRZ
	sliderCount
)

// PanelState holds control panel layout and interaction state
type PanelState struct {
	bounds        rl.Rectangle
	collapsed     bool
	sliderBounds  [sliderCount]rl.Rectangle
	hoveredSlider int
	activeSlider  int
	isDragging    bool
}

// InteractionState holds mouse state for camera control
type InteractionState struct {
	isPanning    bool
	lastMousePos rl.Vector2
}

// FileWatchState holds structure file watching and reload state
type FileWatchState struct {
	meshWatcher *watcher.MeshWatcher
	needsReload bool
	changedFile string
}

// UIState holds shared UI resources
type UIState struct {
	font rl.Font
}

type App struct {
	Config      *config.Config
	Camera      CameraState
	Scene       SceneState
	Panel       PanelState
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState

	structureFiles []string
}
