package main

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"slices"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/golabel/internal/collection"
	"github.com/philipparndt/golabel/internal/config"
	"github.com/philipparndt/golabel/internal/session"
	"github.com/philipparndt/golabel/pkg/geometry"
	"github.com/philipparndt/golabel/pkg/imageio"
	"github.com/philipparndt/golabel/pkg/viewer"
	"github.com/philipparndt/golabel/pkg/watcher"
)

// App is the editor window. All fields are touched on the fyne goroutine only.
type App struct {
	window  fyne.Window
	cfg     *config.Config
	ws      *collection.Workspace
	session *session.Session
	watcher *watcher.DirWatcher
	editor  *viewer.LabelEditor

	collection string
	images     []string
	image      string
	original   image.Image
	thumbnails map[string]image.Image
	selected   string
	labelNames []string
	syncing    bool

	collectionSelect *widget.Select
	imageList        *widget.List
	labelList        *widget.List
	status           *widget.Label
	buttons          toolbarButtons
}

// NewApp builds the editor inside w
func NewApp(w fyne.Window, cfg *config.Config, ws *collection.Workspace) (*App, error) {
	dw, err := watcher.NewDirWatcher(300*time.Millisecond, imageio.IsSupported)
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	dw.Start()

	a := &App{
		window:     w,
		cfg:        cfg,
		ws:         ws,
		session:    session.New(cfg.NamePolicy()),
		watcher:    dw,
		editor:     viewer.NewLabelEditor(cfg.RenderStyle(), cfg.Editor.VertexPickRadius),
		thumbnails: make(map[string]image.Image),
	}

	a.editor.OnTapped = a.onCanvasTapped
	a.editor.OnSecondaryTapped = a.onCanvasSecondaryTapped
	a.editor.OnVertexMoved = a.onVertexMoved
	a.session.Subscribe(a.onSessionEvent)

	a.buildUI()
	a.refreshCollections()
	a.syncSession()
	return a, nil
}

// Close stops watching the collection folder
func (a *App) Close() {
	if err := a.watcher.Close(); err != nil {
		fmt.Printf("Failed to stop watcher: %v\n", err)
	}
}

// RestoreLastSession reopens the collection and image recorded in the
// settings file
func (a *App) RestoreLastSession() {
	settings, err := config.LoadSettings(a.ws.SettingsPath())
	if err != nil {
		fmt.Printf("Ignoring settings: %v\n", err)
		return
	}
	a.Restore(settings)
}

// Restore opens the given collection and image if they still exist
func (a *App) Restore(settings config.Settings) {
	if settings.Collection == "" || !a.ws.Exists(settings.Collection) {
		return
	}
	a.openCollection(settings.Collection)

	if settings.Image != "" && slices.Contains(a.images, settings.Image) {
		a.openImage(settings.Image)
	}
}

func (a *App) saveSettings() {
	settings := config.Settings{Collection: a.collection, Image: a.image}
	if err := config.SaveSettings(a.ws.SettingsPath(), settings); err != nil {
		fmt.Printf("Failed to save settings: %v\n", err)
	}
}

// openCollection switches to a collection and watches its image folder
func (a *App) openCollection(name string) {
	if name == a.collection {
		return
	}

	a.session.CloseImage()
	a.collection = name
	a.image = ""
	a.original = nil
	a.thumbnails = make(map[string]image.Image)
	a.editor.SetImage(nil, 0, 0)

	if err := a.watcher.RemoveAll(); err != nil {
		fmt.Printf("Failed to stop watching: %v\n", err)
	}
	if err := a.watcher.Watch(a.ws.ImagesDir(name), func(string) {
		fyne.Do(a.reloadImages)
	}); err != nil {
		fmt.Printf("Failed to watch %s: %v\n", a.ws.ImagesDir(name), err)
	}

	a.syncing = true
	a.collectionSelect.SetSelected(name)
	a.syncing = false

	a.reloadImages()
	a.saveSettings()
	fmt.Printf("Opened collection: %s\n", name)
}

func (a *App) reloadImages() {
	if a.collection == "" {
		a.images = nil
		a.imageList.Refresh()
		return
	}

	images, err := a.ws.Images(a.collection)
	if err != nil {
		a.showError(err)
		return
	}
	a.images = images
	a.imageList.Refresh()
	a.selectImageInList()
}

// openImage loads an image of the current collection and its labels
func (a *App) openImage(name string) {
	path := a.ws.ImagePath(a.collection, name)

	img, err := imageio.Open(path)
	if err != nil {
		a.showError(fmt.Errorf("failed to open image: %w", err))
		a.selectImageInList()
		return
	}

	a.image = name
	a.original = img
	a.selected = ""
	display, _ := imageio.Fit(img, a.cfg.Display.MaxImageWidth, a.cfg.Display.MaxImageHeight)
	bounds := img.Bounds()
	a.editor.SetImage(display, bounds.Dx(), bounds.Dy())

	if err := a.session.OpenImage(path, a.ws.LabelPath(a.collection, name)); err != nil {
		a.showError(err)
	}

	a.selectImageInList()
	a.saveSettings()
	fmt.Printf("Opened image: %s (%dx%d)\n", name, bounds.Dx(), bounds.Dy())
}

// requestImage opens an image once unsaved changes are dealt with
func (a *App) requestImage(name string) {
	if name == a.image {
		return
	}
	a.confirmDiscard(func() {
		a.openImage(name)
	}, a.selectImageInList)
}

// confirmDiscard runs proceed directly when there is nothing to lose and
// asks the user otherwise
func (a *App) confirmDiscard(proceed func(), cancelled func()) {
	if !a.session.Modified() && a.session.State() != session.Drawing {
		proceed()
		return
	}

	dialog.ShowConfirm("Unsaved changes", "Discard the changes to the current image?", func(ok bool) {
		if ok {
			proceed()
		} else if cancelled != nil {
			cancelled()
		}
	}, a.window)
}

func (a *App) thumbnail(name string) image.Image {
	if thumb, ok := a.thumbnails[name]; ok {
		return thumb
	}

	img, err := imageio.Open(a.ws.ImagePath(a.collection, name))
	if err != nil {
		fmt.Printf("Failed to load thumbnail for %s: %v\n", name, err)
		return nil
	}
	thumb := imageio.Thumbnail(img, a.cfg.Display.ThumbnailSize)
	a.thumbnails[name] = thumb
	return thumb
}

func (a *App) onCanvasTapped(p geometry.Point) {
	var err error
	switch a.session.State() {
	case session.Drawing:
		err = a.session.AddPoint(p)
	case session.Editing:
		tolerance := a.editor.ImageDistance(a.cfg.Editor.EdgePickTolerance)
		err = a.session.InsertVertex(p, tolerance)
		if errors.Is(err, session.ErrNoEdge) {
			a.status.SetText("Click closer to an edge to add a vertex")
			err = nil
		}
	case session.Idle:
		a.selectLabel(a.labelAt(p))
	}

	if err != nil {
		a.showError(err)
	}
}

func (a *App) onCanvasSecondaryTapped(geometry.Point) {
	if a.session.State() == session.Drawing {
		a.undo()
	}
}

func (a *App) onVertexMoved(old, moved geometry.Point) bool {
	ok, err := a.session.MoveVertex(old, moved)
	if err != nil {
		return false
	}
	return ok
}

// labelAt returns the topmost label containing p, or ""
func (a *App) labelAt(p geometry.Point) string {
	labels := a.session.Labels()
	for i := len(labels) - 1; i >= 0; i-- {
		if labels[i].Contains(p) {
			return labels[i].Name()
		}
	}
	return ""
}

func (a *App) selectLabel(name string) {
	a.selected = name
	a.editor.SetSelected(name)

	a.syncing = true
	if i := slices.Index(a.labelNames, name); i >= 0 {
		a.labelList.Select(i)
	} else {
		a.labelList.UnselectAll()
	}
	a.syncing = false
	a.updateButtons()
}

func (a *App) startDrawing() {
	if err := a.session.StartDrawing(); err != nil {
		a.showError(err)
	}
}

func (a *App) undo() {
	if err := a.session.Undo(); err != nil {
		a.showError(err)
	}
}

func (a *App) redo() {
	if err := a.session.Redo(); err != nil {
		a.showError(err)
	}
}

// finish completes the drawing or the edit, whichever is in progress
func (a *App) finish() {
	switch a.session.State() {
	case session.Drawing:
		a.promptName("New label", "", func(name string) error {
			committed, err := a.session.Complete(name)
			if err == nil {
				a.selectLabel(committed)
			}
			return err
		})
	case session.Editing:
		if err := a.session.FinishEdit(); err != nil {
			a.showError(err)
		}
	}
}

func (a *App) cancel() {
	if a.session.State() == session.Idle {
		a.selectLabel("")
		return
	}
	if err := a.session.Cancel(); err != nil {
		a.showError(err)
	}
}

func (a *App) editSelected() {
	if err := a.session.BeginEdit(a.selected); err != nil {
		a.showError(err)
	}
}

func (a *App) renameSelected() {
	old := a.selected
	a.promptName("Rename label", old, func(name string) error {
		renamed, err := a.session.Rename(old, name)
		if err == nil {
			a.selectLabel(renamed)
		}
		return err
	})
}

func (a *App) removeSelected() {
	name := a.selected
	dialog.ShowConfirm("Remove label", fmt.Sprintf("Remove %q?", name), func(ok bool) {
		if !ok {
			return
		}
		if err := a.session.Remove(name); err != nil {
			a.showError(err)
			return
		}
		a.selectLabel("")
	}, a.window)
}

func (a *App) save() {
	if err := a.session.Save(); err != nil {
		a.showError(err)
		return
	}
	fmt.Printf("Saved labels to: %s\n", a.session.LabelPath())
}

func (a *App) reload() {
	a.confirmDiscard(func() {
		if err := a.session.Load(); err != nil {
			a.showError(err)
		}
	}, nil)
}

// onSessionEvent keeps the widgets in step with the session
func (a *App) onSessionEvent(e session.Event) {
	switch e.Kind {
	case session.LabelRemoved:
		if e.Name == a.selected {
			a.selected = ""
		}
	case session.LabelRenamed:
		if e.OldName == a.selected {
			a.selected = e.Name
		}
	case session.LabelsReplaced:
		a.selected = ""
	}
	a.syncSession()

	if e.Kind == session.Saved {
		a.status.SetText("Saved " + filepath.Base(e.Name))
	}
}

func (a *App) syncSession() {
	s := a.session
	a.editor.SetLabels(s.Labels(), s.EditingName())
	a.editor.SetActive(s.ActiveVertices(), s.State() == session.Editing)
	a.editor.SetSelected(a.selected)

	a.labelNames = a.labelNames[:0]
	for _, p := range s.Labels() {
		a.labelNames = append(a.labelNames, p.Name())
	}
	a.labelList.Refresh()

	title := "golabel"
	if a.image != "" {
		title = fmt.Sprintf("golabel - %s/%s", a.collection, a.image)
		if s.Modified() {
			title += " *"
		}
	}
	a.window.SetTitle(title)

	a.updateStatus()
	a.updateButtons()
}

func (a *App) updateStatus() {
	s := a.session
	switch s.State() {
	case session.Drawing:
		a.status.SetText(fmt.Sprintf("Drawing: %d points. Click to add, right click to undo, Enter to finish.", len(s.ActiveVertices())))
	case session.Editing:
		a.status.SetText(fmt.Sprintf("Editing %s: drag vertices, click an edge to add one, Enter to finish.", s.EditingName()))
	default:
		if !s.HasImage() {
			a.status.SetText("Select an image")
		} else {
			a.status.SetText(fmt.Sprintf("%d labels", len(s.Labels())))
		}
	}
}

func (a *App) showError(err error) {
	fmt.Printf("Error: %v\n", err)
	dialog.ShowError(err, a.window)
}
