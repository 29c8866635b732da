// Package desktopentry reads freedesktop.org .desktop files.
package desktopentry

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	Extension = ".desktop"
	mainGroup = "[Desktop Entry]"
)

var ErrNotAnApplication = errors.New("desktop entry has no Name or Exec")

// Field codes dropped from the Exec line; the launcher never passes files or URLs
var removedFieldCodes = []string{"%f", "%F", "%u", "%U", "%c", "%k", "@@"}

type Application struct {
	ID   string // desktop file id, the file name
	Name string
	Exec string // cleaned command line
	Icon string // icon name or path as written in the entry
	Path string
}

// Parse reads the [Desktop Entry] group of r. The first occurrence of a key
// wins.
func Parse(r io.Reader) (application Application, err error) {
	var (
		values  = map[string]string{}
		inGroup bool
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inGroup = line == mainGroup
			continue
		}
		if !inGroup {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, seen := values[key]; !seen {
			values[key] = strings.TrimSpace(value)
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}
	name, exec := values["Name"], values["Exec"]
	if name == "" || exec == "" {
		err = ErrNotAnApplication
		return
	}
	application = Application{
		Name: name,
		Icon: values["Icon"],
		Exec: CleanExec(exec, values["Icon"], values["StartupWMClass"]),
	}
	return
}

// CleanExec removes the field codes of an Exec value, expands %i and appends
// the window class hint unless the application runs through flatpak.
func CleanExec(exec string, icon string, wmClass string) string {
	for _, code := range removedFieldCodes {
		exec = strings.ReplaceAll(exec, code, "")
	}
	exec = strings.TrimSpace(strings.ReplaceAll(exec, "%i", "--icon "+icon))
	if wmClass != "" && !strings.Contains(exec, "flatpak run") {
		exec += " --class " + wmClass
	}
	return exec
}

// ParseFile parses the desktop entry stored at path.
func ParseFile(path string) (application Application, err error) {
	var file *os.File
	if file, err = os.Open(path); err != nil {
		return
	}
	defer file.Close()
	if application, err = Parse(file); err != nil {
		return
	}
	application.Path = path
	application.ID = filepath.Base(path)
	return
}

// Scan parses the desktop entries found directly inside dirs. Directories
// are read concurrently; the result follows the order of dirs and, inside a
// directory, the file name order. Missing directories and invalid entries
// are skipped.
func Scan(dirs []string) []Application {
	results := make([][]Application, len(dirs))
	waitGroup := sync.WaitGroup{}
	for index, dir := range dirs {
		waitGroup.Add(1)
		go func(index int, dir string) {
			defer waitGroup.Done()
			results[index] = scanDirectory(dir)
		}(index, dir)
	}
	waitGroup.Wait()

	var applications []Application
	for _, result := range results {
		applications = append(applications, result...)
	}
	return applications
}

func scanDirectory(dir string) (applications []Application) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logrus.Debugf("Cannot read %s: %s", dir, err)
		}
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		application, err := ParseFile(path)
		if err != nil {
			logrus.Debugf("Skipping %s: %s", path, err)
			continue
		}
		applications = append(applications, application)
	}
	return
}
