package corpus

import (
	"os"
	"sync"
	"time"

	"resumescore/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// SeedWatcher watches the corpus seed file and reloads the store when the
// file changes, so keyword sets can be updated without a restart. Reloads
// are debounced and a broken seed file keeps the previous sets in place.
type SeedWatcher struct {
	seedPath      string
	store         *MemoryStore
	debounceDelay time.Duration
	logger        *errors.Logger

	watcher     *fsnotify.Watcher
	mu          sync.Mutex
	lastModTime time.Time
	reloadTimer *time.Timer
	done        chan struct{}
	running     bool
}

// NewSeedWatcher creates a watcher for the given seed file.
func NewSeedWatcher(seedPath string, store *MemoryStore, debounceDelay time.Duration, logger *errors.Logger) *SeedWatcher {
	if debounceDelay <= 0 {
		debounceDelay = time.Second
	}
	return &SeedWatcher{
		seedPath:      seedPath,
		store:         store,
		debounceDelay: debounceDelay,
		logger:        logger,
		done:          make(chan struct{}),
	}
}

// Start begins watching the seed file.
func (sw *SeedWatcher) Start() error {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewInternalError("WATCHER_INIT_FAILED",
			"Failed to create corpus seed file watcher", err)
	}
	if err := watcher.Add(sw.seedPath); err != nil {
		_ = watcher.Close()
		return errors.NewIOError(errors.ErrCodeFileNotReadable,
			"Failed to watch corpus seed file", err).WithContext("path", sw.seedPath)
	}

	sw.watcher = watcher
	if info, err := os.Stat(sw.seedPath); err == nil {
		sw.lastModTime = info.ModTime()
	}
	sw.running = true

	go sw.watchLoop()

	if sw.logger != nil {
		sw.logger.Info("Corpus seed watcher started",
			"path", sw.seedPath,
			"debounce_delay", sw.debounceDelay.String())
	}
	return nil
}

// Stop stops the watcher.
func (sw *SeedWatcher) Stop() error {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if !sw.running {
		return nil
	}
	sw.running = false

	close(sw.done)
	if sw.reloadTimer != nil {
		sw.reloadTimer.Stop()
	}
	return sw.watcher.Close()
}

// IsRunning reports whether the watcher is active.
func (sw *SeedWatcher) IsRunning() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.running
}

func (sw *SeedWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if sw.shouldProcessEvent(event) {
				sw.scheduleReload()
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			if sw.logger != nil {
				sw.logger.Warn("Corpus seed watcher error", "error", err)
			}
		case <-sw.done:
			return
		}
	}
}

// shouldProcessEvent filters out events that cannot change file content
// and editor rewrites that leave the mod time untouched.
func (sw *SeedWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}

	info, err := os.Stat(sw.seedPath)
	if err != nil {
		return false
	}

	sw.mu.Lock()
	defer sw.mu.Unlock()
	if info.ModTime().Equal(sw.lastModTime) {
		return false
	}
	sw.lastModTime = info.ModTime()
	return true
}

// scheduleReload debounces bursts of file events into a single reload.
func (sw *SeedWatcher) scheduleReload() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.reloadTimer != nil {
		sw.reloadTimer.Stop()
	}
	sw.reloadTimer = time.AfterFunc(sw.debounceDelay, sw.reload)
}

func (sw *SeedWatcher) reload() {
	fileSets, err := LoadSeedFile(sw.seedPath)
	if err != nil {
		if sw.logger != nil {
			sw.logger.LogError(err, "Corpus seed reload failed, keeping previous sets",
				"path", sw.seedPath)
		}
		return
	}

	sw.store.Replace(MergeSets(BuiltinSets(), fileSets))

	if sw.logger != nil {
		sw.logger.Info("Corpus seed reloaded",
			"path", sw.seedPath,
			"file_sets", len(fileSets),
			"total_sets", sw.store.Len())
	}
}
