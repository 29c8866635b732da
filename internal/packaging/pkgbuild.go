package packaging

import (
	"io"
	"text/template"
)

type Metadata struct {
	Name         string
	Version      string
	Release      int
	Description  string
	URL          string
	Architecture []string
	License      []string
	MakeDepends  []string
}

func DefaultMetadata(version string) Metadata {
	return Metadata{
		Name:         PackageName,
		Version:      version,
		Release:      1,
		Description:  "Application launcher for wlroots-based tiling compositors",
		URL:          "https://tusk.dev/launcher",
		Architecture: []string{"x86_64", "aarch64"},
		License:      []string{"MIT"},
		MakeDepends:  []string{"go", "git"},
	}
}

var pkgbuildTemplate = template.Must(template.New("PKGBUILD").Parse(`pkgname={{.Name}}
pkgver={{.Version}}
pkgrel={{.Release}}
pkgdesc="{{.Description}}"
arch=({{range $i, $a := .Architecture}}{{if $i}} {{end}}'{{$a}}'{{end}})
url="{{.URL}}"
license=({{range $i, $l := .License}}{{if $i}} {{end}}'{{$l}}'{{end}})
makedepends=({{range $i, $d := .MakeDepends}}{{if $i}} {{end}}'{{$d}}'{{end}})
source=("git+${url}.git")
sha256sums=('SKIP')

pkgver() {
  cd "$srcdir/$pkgname"
  go run ./cmd/tusk-pkg version
}

build() {
  cd "$srcdir/$pkgname"
  make build VERSION="$pkgver"
}

package() {
  cd "$srcdir/$pkgname"
  go run ./cmd/tusk-pkg install --root "$pkgdir" --binary build/{{.Name}} --license LICENSE --readme README.md
}
`))

// RenderPKGBUILD writes the PKGBUILD of metadata to w.
func RenderPKGBUILD(w io.Writer, metadata Metadata) error {
	return pkgbuildTemplate.Execute(w, metadata)
}
