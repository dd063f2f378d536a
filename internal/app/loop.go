package app

import (
	"os"
	"os/signal"
	"runtime"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/twinpane/internal/state"
	renderui "github.com/kk-code-lab/twinpane/internal/ui/render"
)

// Run processes events until the user quits.
func (app *Application) Run() {
	app.render()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-app.done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := resumeSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		renderPending := false

		select {
		case ev := <-eventChan:
			renderPending = app.handleEvent(ev)
		case action := <-app.actionCh:
			renderPending = app.handleAction(action)
		case <-sigContCh:
			renderPending = app.resumeAfterStop()
		}

		if app.processActions() {
			renderPending = true
		}
		if renderPending && !app.shouldQuit {
			app.render()
		}
	}
}

// post queues an action from any goroutine. It never blocks the caller.
func (app *Application) post(action statepkg.Action) {
	select {
	case <-app.done:
		return
	default:
	}
	select {
	case app.actionCh <- action:
	default:
		go func() {
			select {
			case app.actionCh <- action:
			case <-app.done:
			}
		}()
	}
}

func (app *Application) queueKeyAction(action statepkg.Action) {
	app.keyActions = append(app.keyActions, action)
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		pending := app.keyActions
		app.keyActions = nil
		for _, action := range pending {
			app.handleAction(action)
		}
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	if _, ok := action.(statepkg.SuspendAction); ok {
		app.suspendToShell()
		return app.resumeAfterStop()
	}

	prevPath := app.session.Nav.CurrentPath
	_, effect := app.reducer.Reduce(app.session, action)
	if app.session.Nav.CurrentPath != prevPath {
		app.watch()
	}
	app.applyEffect(effect)
	return true
}

func (app *Application) applyEffect(effect statepkg.Effect) {
	switch effect.Kind {
	case statepkg.EffectQuit:
		app.shouldQuit = true

	case statepkg.EffectYank:
		err := app.clipboard.WriteAll(normalizeClipboardPath(effect.Path, runtime.GOOS))
		app.handleAction(statepkg.YankedAction{Path: effect.Path, Err: err})

	case statepkg.EffectOpenEditor:
		app.log.WithField("path", effect.Path).Info("opening editor")
		err := app.editor.Edit(effect.Path)
		if err != nil {
			app.log.WithField("path", effect.Path).WithError(err).Warn("editor failed")
		}
		app.handleAction(statepkg.EditorExitedAction{Err: err})
		if w, h := app.screen.Size(); w > 0 && h > 0 {
			app.handleAction(statepkg.ResizeAction{Width: w, Height: h})
		}
	}
}

func (app *Application) watch() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Watch(app.session.Nav.CurrentPath); err != nil {
		app.log.WithField("dir", app.session.Nav.CurrentPath).WithError(err).Warn("cannot watch directory")
	}
}

func (app *Application) render() {
	_, h := app.screen.Size()
	vm := statepkg.BuildView(app.session, app.previewer, renderui.PreviewRows(h))
	app.renderer.Render(&vm)
}
