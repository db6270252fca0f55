package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/golabel/internal/session"
	"github.com/philipparndt/golabel/pkg/imageio"
	"github.com/philipparndt/golabel/pkg/render"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

type toolbarButtons struct {
	draw   *widget.Button
	finish *widget.Button
	cancel *widget.Button
	undo   *widget.Button
	redo   *widget.Button
	save   *widget.Button
	edit   *widget.Button
	rename *widget.Button
	remove *widget.Button
}

func (a *App) buildUI() {
	a.status = widget.NewLabel("")

	a.collectionSelect = widget.NewSelect(nil, func(name string) {
		if a.syncing || name == "" {
			return
		}
		a.confirmDiscard(func() {
			a.openCollection(name)
		}, func() {
			a.syncing = true
			a.collectionSelect.SetSelected(a.collection)
			a.syncing = false
		})
	})
	a.collectionSelect.PlaceHolder = "Select a collection"

	a.imageList = widget.NewList(
		func() int { return len(a.images) },
		func() fyne.CanvasObject {
			size := float32(a.cfg.Display.ThumbnailSize)
			thumb := canvas.NewImageFromImage(nil)
			thumb.FillMode = canvas.ImageFillContain
			thumb.SetMinSize(fyne.NewSize(size, size))
			return container.NewBorder(nil, nil, thumb, nil, widget.NewLabel(""))
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			name := a.images[id]
			row := item.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(name)
			thumb := row.Objects[1].(*canvas.Image)
			thumb.Image = a.thumbnail(name)
			thumb.Refresh()
		},
	)
	a.imageList.OnSelected = func(id widget.ListItemID) {
		if a.syncing || id >= len(a.images) {
			return
		}
		a.requestImage(a.images[id])
	}

	a.labelList = widget.NewList(
		func() int { return len(a.labelNames) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(a.labelNames[id])
		},
	)
	a.labelList.OnSelected = func(id widget.ListItemID) {
		if a.syncing || id >= len(a.labelNames) {
			return
		}
		a.selectLabel(a.labelNames[id])
	}

	a.buttons = toolbarButtons{
		draw:   widget.NewButtonWithIcon("Draw", theme.ContentAddIcon(), a.startDrawing),
		finish: widget.NewButtonWithIcon("Finish", theme.ConfirmIcon(), a.finish),
		cancel: widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), a.cancel),
		undo:   widget.NewButtonWithIcon("", theme.ContentUndoIcon(), a.undo),
		redo:   widget.NewButtonWithIcon("", theme.ContentRedoIcon(), a.redo),
		save:   widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), a.save),
		edit:   widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), a.editSelected),
		rename: widget.NewButtonWithIcon("Rename", theme.ContentCopyIcon(), a.renameSelected),
		remove: widget.NewButtonWithIcon("Remove", theme.DeleteIcon(), a.removeSelected),
	}
	b := a.buttons

	toolbar := container.NewHBox(
		b.draw, b.finish, b.cancel,
		widget.NewSeparator(),
		b.undo, b.redo,
		widget.NewSeparator(),
		b.save,
		widget.NewButtonWithIcon("", theme.ZoomFitIcon(), a.editor.ResetZoom),
	)

	left := container.NewBorder(
		container.NewVBox(
			container.NewBorder(nil, nil, nil,
				widget.NewButtonWithIcon("", theme.FolderNewIcon(), a.showNewCollection),
				a.collectionSelect),
			widget.NewButtonWithIcon("Import images", theme.FolderOpenIcon(), a.showImport),
		),
		nil, nil, nil,
		a.imageList,
	)

	right := container.NewBorder(
		widget.NewLabelWithStyle("Labels", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewVBox(b.edit, b.rename, b.remove),
		nil, nil,
		a.labelList,
	)

	center := container.NewBorder(toolbar, a.status, nil, nil, a.editor)

	split := container.NewHSplit(left, container.NewHSplit(center, right))
	split.Offset = 0.2
	split.Trailing.(*container.Split).Offset = 0.8

	a.window.SetContent(split)
	a.window.SetMainMenu(a.buildMenu())
	a.registerShortcuts()
	a.window.SetCloseIntercept(func() {
		a.confirmDiscard(a.window.Close, nil)
	})
}

func (a *App) buildMenu() *fyne.MainMenu {
	file := fyne.NewMenu("File",
		fyne.NewMenuItem("New Collection...", a.showNewCollection),
		fyne.NewMenuItem("Import Images...", a.showImport),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Labels", a.save),
		fyne.NewMenuItem("Reload Labels", a.reload),
		fyne.NewMenuItem("Export Rendered Image...", a.showExport),
	)
	edit := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Draw Label", a.startDrawing),
		fyne.NewMenuItem("Finish", a.finish),
		fyne.NewMenuItem("Cancel", a.cancel),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Undo Point", a.undo),
		fyne.NewMenuItem("Redo Point", a.redo),
	)
	return fyne.NewMainMenu(file, edit)
}

func (a *App) registerShortcuts() {
	c := a.window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		if a.session.CanUndo() {
			a.undo()
		}
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}, func(fyne.Shortcut) {
		if a.session.CanRedo() {
			a.redo()
		}
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		a.save()
	})
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			a.cancel()
		case fyne.KeyReturn, fyne.KeyEnter:
			a.finish()
		case fyne.KeyN:
			if a.session.State() == session.Idle && a.session.HasImage() {
				a.startDrawing()
			}
		}
	})
}

func (a *App) updateButtons() {
	s := a.session
	b := a.buttons
	idle := s.State() == session.Idle
	hasLabel := a.selected != "" && idle

	setEnabled(b.draw, idle && s.HasImage())
	setEnabled(b.finish, s.CanComplete() || s.State() == session.Editing)
	setEnabled(b.cancel, !idle)
	setEnabled(b.undo, s.CanUndo())
	setEnabled(b.redo, s.CanRedo())
	setEnabled(b.save, s.HasImage() && s.State() != session.Drawing)
	setEnabled(b.edit, hasLabel)
	setEnabled(b.rename, hasLabel)
	setEnabled(b.remove, hasLabel)
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

// promptName asks for a name until commit accepts it or the user gives up
func (a *App) promptName(title, initial string, commit func(string) error) {
	entry := widget.NewEntry()
	entry.SetText(initial)
	entry.SetPlaceHolder("Label name")

	items := []*widget.FormItem{widget.NewFormItem("Name", entry)}
	form := dialog.NewForm(title, "OK", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		if err := commit(entry.Text); err != nil {
			d := dialog.NewError(err, a.window)
			d.SetOnClosed(func() {
				a.promptName(title, entry.Text, commit)
			})
			d.Show()
		}
	}, a.window)
	form.Resize(fyne.NewSize(320, form.MinSize().Height))
	form.Show()
	a.window.Canvas().Focus(entry)
}

func (a *App) refreshCollections() {
	names, err := a.ws.Collections()
	if err != nil {
		a.showError(err)
		return
	}
	a.collectionSelect.SetOptions(names)
}

func (a *App) selectImageInList() {
	a.syncing = true
	defer func() { a.syncing = false }()

	for i, name := range a.images {
		if name == a.image {
			a.imageList.Select(i)
			return
		}
	}
	a.imageList.UnselectAll()
}

func (a *App) showNewCollection() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Letters and digits only")

	dialog.ShowForm("New collection", "Create", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", entry)},
		func(ok bool) {
			if !ok {
				return
			}
			name, err := a.ws.Create(entry.Text)
			if err != nil {
				a.showError(err)
				return
			}
			fmt.Printf("Created collection: %s\n", name)
			a.refreshCollections()
			a.confirmDiscard(func() {
				a.openCollection(name)
			}, nil)
		}, a.window)
}

func (a *App) showImport() {
	if a.collection == "" {
		a.showError(fmt.Errorf("select a collection first"))
		return
	}

	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError(err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		name, err := a.ws.Import(a.collection, reader.URI().Path())
		if err != nil {
			a.showError(err)
			return
		}
		fmt.Printf("Imported: %s\n", name)
		// the watcher refreshes the list as well; this covers platforms without notifications
		a.reloadImages()
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	d.Show()
}

func (a *App) showExport() {
	if a.original == nil {
		a.showError(fmt.Errorf("open an image first"))
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.showError(err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		result := render.Overlay(a.original, a.session.Labels(), a.cfg.RenderStyle())
		if err := imageio.Save(result, path); err != nil {
			a.showError(err)
			return
		}
		fmt.Printf("Exported: %s\n", path)
	}, a.window)
	d.SetFileName(strings.TrimSuffix(a.image, filepath.Ext(a.image)) + "-labels.png")
	d.Show()
}
