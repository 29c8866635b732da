// Package launcher holds the state behind the launcher window: the query,
// its results, the saved launch options and the actions run on them.
package launcher

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/configloader"
	"tusk.dev/launcher/internal/desktopentry"
	"tusk.dev/launcher/internal/entity"
	"tusk.dev/launcher/internal/search"
)

var (
	ErrUnknownApplication = errors.New("application not in the results")
	ErrNoResults          = errors.New("no results to launch")
	ErrPowerDisabled      = errors.New("power options are disabled")
)

// Store persists the launch history and the launch options.
type Store interface {
	RecordLaunch(name string) error
	RecentAppNames(limit int) ([]string, error)
	SetLaunchOptions(name string, options entity.LaunchOptions) error
	AllLaunchOptions() (map[string]entity.LaunchOptions, error)
}

type PowerActions interface {
	PowerOff() error
	Restart() error
	Logout() error
}

type Launcher struct {
	config configloader.Config
	store  Store
	runner Runner
	power  PowerActions
	home   string

	mu           sync.RWMutex
	query        string
	applications []desktopentry.Application
	results      []desktopentry.Application
	options      map[string]entity.LaunchOptions
	loaded       bool // the store is ready
	quit         bool
}

func NewLauncher(config configloader.Config, store Store, runner Runner, power PowerActions, home string) *Launcher {
	return &Launcher{
		config:  config,
		store:   store,
		runner:  runner,
		power:   power,
		home:    home,
		options: map[string]entity.LaunchOptions{},
	}
}

// Load reads the saved launch options and refreshes the results.
func (l *Launcher) Load() error {
	options, err := l.store.AllLaunchOptions()
	if err != nil {
		return fmt.Errorf("loading launch options: %w", err)
	}
	if options == nil {
		options = map[string]entity.LaunchOptions{}
	}
	l.mu.Lock()
	l.options = options
	l.loaded = true
	l.mu.Unlock()
	l.SetQuery(l.Query())
	return nil
}

// SetApplications replaces the catalog snapshot and reruns the query.
func (l *Launcher) SetApplications(applications []desktopentry.Application) {
	l.mu.Lock()
	l.applications = applications
	l.mu.Unlock()
	l.SetQuery(l.Query())
}

func (l *Launcher) SetQuery(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = query
	if l.config.EnableRecentApps && strings.TrimSpace(query) == "" {
		l.results = l.recent()
		return
	}
	l.results = search.Search(query, l.applications, search.Options{
		MaxResults: l.config.MaxSearchResults,
		Fuzzy:      l.config.FuzzySearch,
	})
}

func (l *Launcher) recent() []desktopentry.Application {
	if !l.loaded {
		return nil
	}
	names, err := l.store.RecentAppNames(0)
	if err != nil {
		logrus.Errorf("%+v", err)
		return nil
	}
	return search.Recent(names, l.applications, l.config.MaxSearchResults)
}

func (l *Launcher) Query() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.query
}

func (l *Launcher) Results() []desktopentry.Application {
	l.mu.RLock()
	defer l.mu.RUnlock()
	results := make([]desktopentry.Application, len(l.results))
	copy(results, l.results)
	return results
}

func (l *Launcher) ShouldQuit() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.quit
}

func (l *Launcher) Quit() {
	l.mu.Lock()
	l.quit = true
	l.mu.Unlock()
}

func (l *Launcher) Config() configloader.Config {
	return l.config
}

// Launch starts the result named name and marks the launcher for exit.
func (l *Launcher) Launch(name string) error {
	for _, application := range l.Results() {
		if application.Name == name {
			return l.launch(application)
		}
	}
	return fmt.Errorf("%s: %w", name, ErrUnknownApplication)
}

func (l *Launcher) LaunchFirst() error {
	results := l.Results()
	if len(results) == 0 {
		return ErrNoResults
	}
	return l.launch(results[0])
}

func (l *Launcher) launch(application desktopentry.Application) error {
	if l.config.EnableRecentApps {
		if err := l.store.RecordLaunch(application.Name); err != nil {
			logrus.Errorf("%+v", err)
		}
	}
	options := l.Options(application.Name)
	command := BuildCommand(application.Exec, options)
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		workingDirectory = l.home
	}
	logrus.Infof("Launching %s: %s", application.Name, command)
	if err := l.runner.Run(command, workingDirectory, options.Environ()); err != nil {
		logrus.Errorf("%+v", err)
		return fmt.Errorf("launching %s: %w", application.Name, err)
	}
	l.Quit()
	return nil
}

// Options returns the launch options saved for name.
func (l *Launcher) Options(name string) entity.LaunchOptions {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.options[name]
}

// FormattedOptions prefills the options editor of name.
func (l *Launcher) FormattedOptions(name string) string {
	return FormatOptions(l.Options(name))
}

// SaveOptions parses input, stores it as the options of name and clears
// the query.
func (l *Launcher) SaveOptions(name string, input string) error {
	options := ParseOptions(input)
	l.mu.Lock()
	l.options[name] = options
	l.mu.Unlock()
	err := l.store.SetLaunchOptions(name, options)
	l.SetQuery("")
	if err != nil {
		return fmt.Errorf("saving launch options of %s: %w", name, err)
	}
	return nil
}

func (l *Launcher) PowerOff() error {
	return l.powerAction(l.power.PowerOff)
}

func (l *Launcher) Restart() error {
	return l.powerAction(l.power.Restart)
}

func (l *Launcher) Logout() error {
	return l.powerAction(l.power.Logout)
}

func (l *Launcher) powerAction(action func() error) error {
	if !l.config.EnablePowerOptions {
		return ErrPowerDisabled
	}
	return action()
}
