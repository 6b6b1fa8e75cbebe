// Package viewer shows a rendered chart image in a window. The chart
// is produced by a caller-supplied render function so it can be
// re-rendered on demand (Reload button) or automatically when the
// underlying data file changes.
package viewer

import (
	"fmt"
	"image"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/fsnotify/fsnotify"

	"github.com/rhaas80/MCMC-BHPIRE/src/mcmc"
)

// Show opens a window titled title around the image produced by
// render, and blocks until the window closes. When watchPath is
// non-empty the file is watched and the chart re-rendered on writes.
// The initial render happens before the window opens so load errors
// surface on the command line.
func Show(title string, render func() (image.Image, error), watchPath string) error {
	img, err := render()
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow(title)

	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(900, 500))

	refresh := func() {
		im, err := render()
		if err != nil {
			mcmc.Errorf("re-render failed: %v", err)
			return
		}
		ci.Image = im
		ci.Refresh()
	}

	top := container.NewHBox(
		widget.NewButton("Reload", refresh),
		widget.NewLabel(title),
	)
	w.SetContent(container.NewBorder(top, nil, nil, nil, ci))
	w.Resize(fyne.NewSize(1000, 620))

	if watchPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watch %s: %w", watchPath, err)
		}
		if err := watcher.Add(watchPath); err != nil {
			watcher.Close()
			return fmt.Errorf("watch %s: %w", watchPath, err)
		}
		done := make(chan struct{})
		go func() {
			// debounce bursts of writes from the sampler
			var pending <-chan time.Time
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
						pending = time.After(250 * time.Millisecond)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					mcmc.Warnf("watcher: %v", err)
				case <-pending:
					pending = nil
					mcmc.Debugf("%s changed, re-rendering", watchPath)
					fyne.Do(refresh)
				case <-done:
					return
				}
			}
		}()
		w.SetOnClosed(func() {
			close(done)
			watcher.Close()
		})
	}

	w.ShowAndRun()
	return nil
}
