// Package catalog keeps the list of installed applications up to date.
package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/desktopentry"
	"tusk.dev/launcher/pkg/eventemitter"
)

const defaultDebounce = 250 * time.Millisecond

type Catalog struct {
	directories []string
	watch       bool
	debounce    time.Duration
	ctx         context.Context

	mu           sync.RWMutex
	applications []desktopentry.Application

	// Event emitters
	RefreshedEventEmitter *eventemitter.EventEmitter[[]desktopentry.Application]
}

// ApplicationDirectories lists the folders scanned for desktop entries, from
// the lowest to the highest precedence.
func ApplicationDirectories(dataHome string, dataDirs []string) (directories []string) {
	for _, dir := range dataDirs {
		directories = append(directories, filepath.Join(dir, "applications"))
	}
	directories = append(directories,
		filepath.Join(dataHome, "applications"),
		filepath.Join(dataHome, "flatpak", "exports", "share", "applications"),
		filepath.Join(dataHome, "applications", "steam"),
	)
	return
}

func NewCatalog(ctx context.Context, directories []string, watch bool) (instance *Catalog) {
	instance = &Catalog{
		directories:           directories,
		watch:                 watch,
		debounce:              defaultDebounce,
		ctx:                   ctx,
		RefreshedEventEmitter: &eventemitter.EventEmitter[[]desktopentry.Application]{},
	}
	return
}

func (c *Catalog) Initialize(waitGroup *sync.WaitGroup) {
	c.Refresh()
	if c.watch {
		if err := c.startWatcher(); err != nil {
			logrus.Warnf("Cannot watch application folders: %s", err)
		}
	}
	waitGroup.Done()
}

// Refresh rescans the application folders and notifies the subscribers.
func (c *Catalog) Refresh() {
	applications := Deduplicate(desktopentry.Scan(c.directories))
	c.mu.Lock()
	c.applications = applications
	c.mu.Unlock()
	logrus.Debugf("Catalog contains %d applications", len(applications))
	c.RefreshedEventEmitter.Emit(c.Applications())
}

// Applications returns a copy of the current catalog.
func (c *Catalog) Applications() []desktopentry.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()
	applications := make([]desktopentry.Application, len(c.applications))
	copy(applications, c.applications)
	return applications
}

// Deduplicate keeps one application per desktop file id. A later entry
// replaces an earlier one in place, so user entries override system ones.
func Deduplicate(applications []desktopentry.Application) []desktopentry.Application {
	positions := make(map[string]int, len(applications))
	result := make([]desktopentry.Application, 0, len(applications))
	for _, application := range applications {
		if application.ID != "" {
			if position, ok := positions[application.ID]; ok {
				result[position] = application
				continue
			}
			positions[application.ID] = len(result)
		}
		result = append(result, application)
	}
	return result
}

func (c *Catalog) startWatcher() (err error) {
	var watcher *fsnotify.Watcher
	if watcher, err = fsnotify.NewWatcher(); err != nil {
		return
	}
	watched := 0
	for _, dir := range c.directories {
		if addError := watcher.Add(dir); addError == nil {
			watched++
		}
	}
	logrus.Debugf("Watching %d application folders", watched)
	go c.watchLoop(watcher)
	return
}

func (c *Catalog) watchLoop(watcher *fsnotify.Watcher) {
	defer watcher.Close()
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-c.ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != desktopentry.Extension {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(c.debounce, c.Refresh)
			} else {
				timer.Reset(c.debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logrus.Warnf("Application folder watcher: %s", err)
		}
	}
}
