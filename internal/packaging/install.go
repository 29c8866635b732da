package packaging

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const PackageName = "tusk-launcher"

// Files are the sources staged by Install. License and Readme are optional.
type Files struct {
	Binary  string
	License string
	Readme  string
}

type InstalledFile struct {
	Path string // relative to the package root
	Mode fs.FileMode
}

var (
	BinaryFile  = InstalledFile{Path: filepath.Join("usr", "bin", PackageName), Mode: 0755}
	LicenseFile = InstalledFile{Path: filepath.Join("usr", "share", "licenses", PackageName, "LICENSE"), Mode: 0644}
	ReadmeFile  = InstalledFile{Path: filepath.Join("usr", "share", "doc", PackageName, "README.md"), Mode: 0644}
)

// Install copies files under pkgRoot and returns the installed paths.
func Install(pkgRoot string, files Files) (installed []string, err error) {
	if files.Binary == "" {
		return nil, fmt.Errorf("no binary to install")
	}
	for _, item := range []struct {
		source string
		target InstalledFile
	}{
		{files.Binary, BinaryFile},
		{files.License, LicenseFile},
		{files.Readme, ReadmeFile},
	} {
		if item.source == "" {
			continue
		}
		destination := filepath.Join(pkgRoot, item.target.Path)
		if err = copyFile(item.source, destination, item.target.Mode); err != nil {
			return
		}
		logrus.Infof("Installed %s", destination)
		installed = append(installed, destination)
	}
	return
}

func copyFile(source string, destination string, mode fs.FileMode) (err error) {
	var input *os.File
	if input, err = os.Open(source); err != nil {
		return
	}
	defer input.Close()
	if err = os.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return
	}
	var output *os.File
	if output, err = os.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode); err != nil {
		return
	}
	if _, err = io.Copy(output, input); err != nil {
		output.Close()
		return
	}
	if err = output.Close(); err != nil {
		return
	}
	// OpenFile applies the umask
	return os.Chmod(destination, mode)
}
