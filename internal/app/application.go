package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/twinpane/internal/config"
	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/kk-code-lab/twinpane/internal/logging"
	statepkg "github.com/kk-code-lab/twinpane/internal/state"
	inputui "github.com/kk-code-lab/twinpane/internal/ui/input"
	renderui "github.com/kk-code-lab/twinpane/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// Options configures a new Application. Zero fields fall back to the real
// terminal, editor and clipboard.
type Options struct {
	Config config.Config
	// StartDir overrides Config.StartDir; both empty means the working directory.
	StartDir  string
	Screen    tcell.Screen
	Editor    EditorRunner
	Clipboard Clipboard
	Logger    logrus.FieldLogger
}

// Application represents the running app.
type Application struct {
	screen    tcell.Screen
	session   *statepkg.Session
	reducer   *statepkg.Reducer
	previewer statepkg.Previewer
	renderer  *renderui.Renderer
	input     *inputui.InputHandler
	watcher   *fsutil.Watcher
	editor    EditorRunner
	clipboard Clipboard
	log       logrus.FieldLogger

	// actionCh carries actions from other goroutines; keyActions holds the
	// ones decoded from the event being handled on the loop goroutine.
	actionCh   chan statepkg.Action
	keyActions []statepkg.Action
	done       chan struct{}
	shouldQuit bool
	closed     bool
}

// NewApplication initialises the screen and reads the starting directory.
// Failing to read that directory is fatal.
func NewApplication(opts Options) (*Application, error) {
	logger := logging.OrDiscard(opts.Logger)
	cfg := opts.Config

	startDir, err := resolveStartDir(opts.StartDir, cfg.StartDir)
	if err != nil {
		return nil, err
	}

	lister, err := fsutil.NewLister(cfg.Ignore)
	if err != nil {
		return nil, err
	}
	reducer := statepkg.NewReducer(lister, fsutil.NewOps(lister, logger), logger)

	screen := opts.Screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	w, h := screen.Size()
	session := statepkg.NewSession(startDir, statepkg.ListRowsForHeight(h))
	session.ScreenWidth, session.ScreenHeight = w, h
	if err := reducer.Load(session); err != nil {
		screen.Fini()
		return nil, err
	}

	actionCh := make(chan statepkg.Action, 16)

	app := &Application{
		screen:  screen,
		session: session,
		reducer: reducer,
		previewer: statepkg.Previewer{
			MaxBytes: cfg.Preview.MaxBytes,
			TabWidth: cfg.Preview.TabWidth,
		},
		renderer:  renderui.NewRenderer(screen),
		editor:    opts.Editor,
		clipboard: opts.Clipboard,
		log:       logger,
		actionCh:  actionCh,
		done:      make(chan struct{}),
	}

	app.input = inputui.NewInputHandler(app.queueKeyAction)
	app.input.SetSession(session)

	if app.editor == nil {
		editorCmd, _ := detectEditorCommand(cfg.Editor)
		app.editor = newTerminalEditor(screen, editorCmd)
	}
	if app.clipboard == nil {
		app.clipboard = systemClipboard{}
	}

	if cfg.Watch {
		watcher, err := fsutil.NewWatcher(func(dir string) {
			app.post(statepkg.RefreshAction{Dir: dir})
		}, logger)
		if err != nil {
			logger.WithError(err).Warn("directory watching disabled")
		} else {
			app.watcher = watcher
			app.watch()
		}
	}

	logger.WithFields(logrus.Fields{"dir": startDir, "watch": app.watcher != nil}).Info("started")
	return app, nil
}

func resolveStartDir(candidates ...string) (string, error) {
	dir := ""
	for _, c := range candidates {
		if c != "" {
			dir = c
			break
		}
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = cwd
	}
	abs, err := filepath.Abs(expandUserPath(dir))
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", dir, err)
	}
	return abs, nil
}

// Session exposes the live session, mainly for tests.
func (app *Application) Session() *statepkg.Session {
	return app.session
}

// GetCurrentPath returns the current directory to output on exit.
func (app *Application) GetCurrentPath() string {
	return app.session.Nav.CurrentPath
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.closed {
		return nil
	}
	app.closed = true
	close(app.done)
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}
	app.screen.Fini()
	return err
}
