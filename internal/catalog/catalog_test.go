package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"tusk.dev/launcher/internal/catalog"
	"tusk.dev/launcher/internal/desktopentry"
)

func writeEntry(t *testing.T, dir string, file string, name string) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "[Desktop Entry]\nName=" + name + "\nExec=" + name + "\n"
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func names(applications []desktopentry.Application) (result []string) {
	for _, application := range applications {
		result = append(result, application.Name)
	}
	return
}

func initialize(instance *catalog.Catalog) {
	waitGroup := sync.WaitGroup{}
	waitGroup.Add(1)
	instance.Initialize(&waitGroup)
	waitGroup.Wait()
}

func TestApplicationDirectories(t *testing.T) {
	directories := catalog.ApplicationDirectories("/home/u/.local/share", []string{"/usr/local/share", "/usr/share"})
	assert.Equal(t, []string{
		"/usr/local/share/applications",
		"/usr/share/applications",
		"/home/u/.local/share/applications",
		"/home/u/.local/share/flatpak/exports/share/applications",
		"/home/u/.local/share/applications/steam",
	}, directories)
}

func TestDeduplicate(t *testing.T) {
	applications := catalog.Deduplicate([]desktopentry.Application{
		{ID: "a.desktop", Name: "System A"},
		{ID: "b.desktop", Name: "B"},
		{ID: "a.desktop", Name: "User A"},
		{Name: "No id"},
	})
	assert.Equal(t, []string{"User A", "B", "No id"}, names(applications))
}

func TestInitializeScansDirectories(t *testing.T) {
	root := t.TempDir()
	systemDir := filepath.Join(root, "share", "applications")
	dataHome := filepath.Join(root, "home")
	writeEntry(t, systemDir, "editor.desktop", "Editor")
	writeEntry(t, systemDir, "shell.desktop", "Shell")
	writeEntry(t, filepath.Join(dataHome, "applications"), "editor.desktop", "MyEditor")

	instance := catalog.NewCatalog(context.Background(),
		catalog.ApplicationDirectories(dataHome, []string{filepath.Join(root, "share")}), false)
	initialize(instance)

	assert.Equal(t, []string{"MyEditor", "Shell"}, names(instance.Applications()))
}

func TestApplicationsReturnsCopy(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "a.desktop", "Alpha")
	instance := catalog.NewCatalog(context.Background(), []string{dir}, false)
	initialize(instance)

	applications := instance.Applications()
	applications[0].Name = "Changed"
	assert.Equal(t, "Alpha", instance.Applications()[0].Name)
}

func TestWatcherRefreshesCatalog(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "a.desktop", "Alpha")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	instance := catalog.NewCatalog(ctx, []string{dir}, true)
	initialize(instance)

	refreshed := make(chan []desktopentry.Application, 4)
	instance.RefreshedEventEmitter.Subscribe(func(applications []desktopentry.Application) {
		refreshed <- applications
	})
	writeEntry(t, dir, "b.desktop", "Beta")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case applications := <-refreshed:
			if len(applications) == 2 {
				assert.Equal(t, []string{"Alpha", "Beta"}, names(applications))
				return
			}
		case <-deadline:
			t.Fatal("The catalog was not refreshed")
		}
	}
}
