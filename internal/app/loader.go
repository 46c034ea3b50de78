package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/goanatomy/internal/clipping"
	"github.com/philipparndt/goanatomy/internal/render"
	"github.com/philipparndt/goanatomy/pkg/stl"
	"github.com/philipparndt/goanatomy/pkg/watcher"
)

// structurePalette colors the loaded structures in load order, cycling
// when there are more files than entries
var structurePalette = []render.Color{
	{R: 224, G: 187, B: 160, A: 255}, // bone
	{R: 186, G: 100, B: 95, A: 255},  // muscle
	{R: 120, G: 144, B: 196, A: 255}, // vessel
	{R: 214, G: 168, B: 110, A: 255},
	{R: 140, G: 182, B: 140, A: 255},
	{R: 178, G: 132, B: 190, A: 255},
}

// loadStructures parses each STL file into a renderable structure.
// Files that fail to parse are skipped with a warning; one bad file
// must not take the whole session down.
func loadStructures(files []string) []*clipping.Structure {
	structures := make([]*clipping.Structure, 0, len(files))
	for i, file := range files {
		model, err := stl.Parse(file)
		if err != nil {
			fmt.Printf("Warning: failed to load %s: %v\n", file, err)
			continue
		}
		structures = append(structures, &clipping.Structure{
			Name:    model.Name,
			Mesh:    model,
			Color:   structurePalette[i%len(structurePalette)],
			Opacity: 1.0,
		})
		fmt.Printf("Loaded %s: %d triangles\n", model.Name, model.TriangleCount())
	}
	return structures
}

// setupFileWatcher watches the structure files and flags a reload when
// one changes. The reload itself happens on the main thread in the
// render loop.
func (app *App) setupFileWatcher() error {
	mw, err := watcher.NewMeshWatcher(500*time.Millisecond, func(path string) {
		app.FileWatch.needsReload = true
		app.FileWatch.changedFile = path
	})
	if err != nil {
		return err
	}
	if err := mw.Watch(app.structureFiles); err != nil {
		mw.Close()
		return err
	}
	mw.Start()
	app.FileWatch.meshWatcher = mw
	return nil
}

// reloadStructures re-reads all structure files and pushes the fresh
// set through the engine. Bounds are invalidated in the same step so
// plane origins are derived from the new anatomy.
func (app *App) reloadStructures() {
	fmt.Printf("Reloading structures (%s changed)\n", app.FileWatch.changedFile)
	structures := loadStructures(app.structureFiles)
	if len(structures) == 0 {
		fmt.Println("Warning: reload produced no structures, keeping current set")
		return
	}

	app.Scene.engine.SetStructures(structures)
	app.Scene.bounds.SetStructures(structures)
	app.Scene.planes.Reset()
}
