package dataset

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the dataset when roles.json or skills.json change on disk
// and swaps the new snapshot into the store. A reload that fails validation
// is logged and the previous snapshot stays in place.
type Watcher struct {
	dir           string
	store         *Store
	logger        *log.Logger
	onReload      func()
	debounceDelay time.Duration

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	debounce  *time.Timer
	stopCh    chan struct{}
	running   bool
}

// NewWatcher builds a watcher for dir. onReload, if non-nil, runs after each
// successful swap (used to drop cached results computed from the old tables).
func NewWatcher(dir string, store *Store, logger *log.Logger, onReload func()) *Watcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		dir:           dir,
		store:         store,
		logger:        logger,
		onReload:      onReload,
		debounceDelay: time.Second,
		stopCh:        make(chan struct{}),
	}
}

func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory, not the files: editors and atomic writers replace
	// files by rename, which drops per-file watches.
	if err := fw.Add(w.dir); err != nil {
		_ = fw.Close()
		return err
	}

	w.fsWatcher = fw
	w.running = true
	go w.watchLoop()

	w.logger.Printf("[Dataset] watching %s for changes", w.dir)
	return nil
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	close(w.stopCh)
	_ = w.fsWatcher.Close()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.running = false
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("[Dataset] watch error: %v", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	switch filepath.Base(ev.Name) {
	case RolesFile, SkillsFile:
		return true
	}
	return false
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	snap, err := Load(w.dir)
	if err != nil {
		w.logger.Printf("[Dataset] reload rejected, keeping previous snapshot: %v", err)
		return
	}
	w.store.Swap(snap)
	w.logger.Printf("[Dataset] reloaded: %d roles, %d skills", len(snap.Roles), len(snap.Skills))
	if w.onReload != nil {
		w.onReload()
	}
}
