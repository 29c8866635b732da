package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"sync/atomic"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"tusk.dev/launcher/internal/catalog"
	"tusk.dev/launcher/internal/configloader"
	"tusk.dev/launcher/internal/database"
	"tusk.dev/launcher/internal/database/delegate/sqlite"
	"tusk.dev/launcher/internal/database/importer"
	"tusk.dev/launcher/internal/desktopentry"
	"tusk.dev/launcher/internal/engine"
	"tusk.dev/launcher/internal/folder"
	"tusk.dev/launcher/internal/gui"
	"tusk.dev/launcher/internal/icon"
	"tusk.dev/launcher/internal/launcher"
	"tusk.dev/launcher/internal/storage"
	"tusk.dev/launcher/internal/system"
)

// Set at build time with -ldflags "-X main.version=..."
var version = ""

func currentVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "devel"
}

// listHandler is used when no window is shown
type listHandler struct{}

func (listHandler) NotifyStarted() {}

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	// Parsing the command line argument to change settings file location
	configurationFilePath := flag.String("config", "", "Configuration file path")
	list := flag.Bool("list", false, "Print the installed applications and exit")
	printVersion := flag.Bool("version", false, "Print the version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(folder.ApplicationName, currentVersion())
		return 0
	}

	// Loading application configuration
	configuration, err := configloader.LoadConfiguration(folder.ApplicationName, *configurationFilePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	logrus.SetLevel(level)

	if !*list {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			logrus.Error("tusk-launcher must run inside a terminal window")
			return 1
		}
		// The window owns the terminal
		logFile, err := openLogFile()
		if err != nil {
			logrus.Errorf("%+v", err)
			return 1
		}
		defer logFile.Close()
		logrus.SetOutput(logFile)
	}
	if *configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", *configurationFilePath)
	}
	logrus.Infof("Setting log level to %s", level.String())
	logrus.Debug("Launching tusk-launcher v.", currentVersion())

	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("%+v", r)
			exitCode = 1
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	databaseEngine := database.NewDatabase(&sqlite.SQLiteDelegate{
		BasePath: folder.DataDir(),
	}, []importer.Importer{
		importer.NewTextCacheImporter(folder.ConfigDir()),
		importer.NewRecentAppsImporter(folder.ConfigDir()),
	})
	defer databaseEngine.Deinitialize()
	catalogEngine := catalog.NewCatalog(ctx,
		catalog.ApplicationDirectories(folder.DataHome(), folder.DataDirs()),
		configuration.WatchApplications && !*list)
	iconResolver := icon.NewResolver(configuration.EnableIcons, databaseEngine, folder.DataHome(), folder.DataDirs())
	storageEngine := storage.NewStorageEngine(folder.ConfigDir(), folder.DataDir(), folder.StateDir())
	engines := []engine.ApplicationEngine{storageEngine, databaseEngine, catalogEngine}

	if *list {
		if err = engine.NewController(engines, listHandler{}).Initialize(); err != nil {
			return 1
		}
		for _, application := range catalogEngine.Applications() {
			fmt.Printf("%s\t%s\t%s\n", application.Name, application.Exec,
				iconResolver.Resolve(application.Name, application.Icon))
		}
		return 0
	}

	return runWindow(ctx, configuration, engines, databaseEngine, catalogEngine, iconResolver)
}

func runWindow(ctx context.Context, configuration configloader.Config, engines []engine.ApplicationEngine,
	databaseEngine *database.Database, catalogEngine *catalog.Catalog, iconResolver *icon.Resolver) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	if err = screen.Init(); err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	defer screen.Fini()

	launcherState := launcher.NewLauncher(configuration, databaseEngine, launcher.ShellRunner{},
		system.NewPower(configuration, system.ProcessSpawner{}), folder.Home())
	window := gui.NewTUI(screen, launcherState)

	// Icons are cached in the database, so they wait for it to be ready
	var databaseReady atomic.Bool
	catalogEngine.RefreshedEventEmitter.Subscribe(func(applications []desktopentry.Application) {
		launcherState.SetApplications(applications)
		window.Refresh()
		if databaseReady.Load() {
			warmIconCache(iconResolver, applications)
		}
	})

	initializationFailed := make(chan error, 1)
	go func() {
		if err := engine.NewController(engines, window).Initialize(); err != nil {
			initializationFailed <- err
			window.Stop()
			return
		}
		databaseReady.Store(true)
		warmIconCache(iconResolver, catalogEngine.Applications())
	}()
	go func() {
		<-ctx.Done()
		window.Stop()
	}()

	window.Run()

	select {
	case err = <-initializationFailed:
		logrus.Errorf("%+v", err)
		return 1
	default:
	}
	if ctx.Err() != nil {
		logrus.Info("Interrupted")
	}
	return 0
}

// warmIconCache resolves every icon so that later lookups hit the database.
func warmIconCache(iconResolver *icon.Resolver, applications []desktopentry.Application) {
	for _, application := range applications {
		iconResolver.Resolve(application.Name, application.Icon)
	}
}

func openLogFile() (*os.File, error) {
	path := filepath.Join(folder.StateDir(), folder.LogFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("cannot open the log file %s", path), err)
	}
	return logFile, nil
}
