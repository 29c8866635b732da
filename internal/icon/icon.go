// Package icon resolves desktop entry icon names to image files.
package icon

import (
	"os"
	"path/filepath"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/sirupsen/logrus"
)

var (
	themes     = []string{"hicolor", "Adwaita", "gnome", "breeze", "oxygen"}
	sizes      = []string{"512x512", "256x256", "128x128", "96x96", "64x64", "48x48", "32x32", "24x24", "22x22", "16x16", "scalable"}
	categories = []string{"apps", "devices", "places", "mimetypes", "status", "actions"}
	extensions = []string{"png", "svg", "xpm"}
)

// Cache stores the resolved path of each application.
type Cache interface {
	IconPath(name string) (path string, ok bool, err error)
	SetIconPath(name string, path string) error
}

type searchBase struct {
	path   string
	pixmap bool
}

type Resolver struct {
	enabled bool
	cache   Cache
	bases   []searchBase
	memo    *xsync.MapOf[string, string]
}

func NewResolver(enabled bool, cache Cache, dataHome string, dataDirs []string) *Resolver {
	return &Resolver{
		enabled: enabled,
		cache:   cache,
		bases:   searchBases(dataHome, dataDirs),
		memo:    xsync.NewMapOf[string, string](),
	}
}

// searchBases lists the icon folders in lookup order.
func searchBases(dataHome string, dataDirs []string) []searchBase {
	var bases []searchBase
	seen := map[string]bool{}
	add := func(path string, pixmap bool) {
		if seen[path] {
			return
		}
		seen[path] = true
		bases = append(bases, searchBase{path: path, pixmap: pixmap})
	}
	add(filepath.Join(dataHome, "flatpak", "exports", "share", "icons"), false)
	for _, dir := range dataDirs {
		add(filepath.Join(dir, "icons"), false)
	}
	add("/var/lib/flatpak/exports/share/icons", false)
	for _, dir := range dataDirs {
		add(filepath.Join(dir, "pixmaps"), true)
	}
	add("/usr/share/pixmaps", true)
	return bases
}

// Resolve returns the icon file of an application, or an empty string.
func (r *Resolver) Resolve(appName string, iconKey string) string {
	if !r.enabled || iconKey == "" {
		return ""
	}
	if filepath.IsAbs(iconKey) {
		if isFile(iconKey) {
			return iconKey
		}
		return ""
	}
	if path, ok := r.memo.Load(iconKey); ok {
		return path
	}
	if r.cache != nil {
		path, ok, err := r.cache.IconPath(appName)
		if err != nil {
			logrus.Warnf("Cannot read the cached icon of %s: %s", appName, err)
		} else if ok && isFile(path) {
			r.memo.Store(iconKey, path)
			return path
		}
	}
	path := r.lookup(iconKey)
	if path == "" {
		logrus.Debugf("No icon found for %s", iconKey)
		return ""
	}
	r.memo.Store(iconKey, path)
	if r.cache != nil {
		if err := r.cache.SetIconPath(appName, path); err != nil {
			logrus.Warnf("Cannot cache the icon of %s: %s", appName, err)
		}
	}
	return path
}

func (r *Resolver) lookup(iconKey string) string {
	for _, base := range r.bases {
		if !isDir(base.path) {
			continue
		}
		for _, theme := range themes {
			for _, size := range sizes {
				for _, category := range categories {
					for _, extension := range extensions {
						candidate := filepath.Join(base.path, theme, size, category, iconKey+"."+extension)
						if isFile(candidate) {
							return candidate
						}
					}
				}
			}
		}
		if base.pixmap {
			for _, extension := range extensions {
				candidate := filepath.Join(base.path, iconKey+"."+extension)
				if isFile(candidate) {
					return candidate
				}
			}
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
