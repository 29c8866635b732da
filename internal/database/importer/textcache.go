package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/entity"
	"tusk.dev/launcher/internal/folder"
)

const textCacheHeader = "APP_CACHE_V1"

var ErrInvalidCacheFormat = errors.New("unsupported cache file version")

// TextCacheImporter imports the tab separated app_cache.txt file.
type TextCacheImporter struct {
	basePath string
	Apps     []App
}

func NewTextCacheImporter(basePath string) *TextCacheImporter {
	return &TextCacheImporter{basePath: basePath}
}

func (i *TextCacheImporter) Name() string {
	return folder.LegacyAppCacheFileName
}

func (i *TextCacheImporter) path() string {
	return filepath.Join(i.basePath, folder.LegacyAppCacheFileName)
}

func (i *TextCacheImporter) Import(currentHash []byte) (importedHash []byte, err error) {
	logrus.Debug("Checking if a text application cache could be imported")
	if !fileExists(i.path()) {
		logrus.Debug("The text application cache is not present")
		return
	}
	var data []byte
	if data, importedHash, err = readChanged(i.path(), currentHash); err != nil || importedHash == nil {
		return
	}
	if i.Apps, err = DecodeTextCache(string(data)); err != nil {
		importedHash = nil
	}
	return
}

func (i *TextCacheImporter) GetApps() []App {
	return i.Apps
}

// DecodeTextCache parses the APP_CACHE_V1 format: a header line followed by
// name<TAB>launch options<TAB>icon path lines. Malformed lines are skipped.
func DecodeTextCache(content string) (apps []App, err error) {
	lines := strings.Split(content, "\n")
	if strings.TrimRight(lines[0], "\r") != textCacheHeader {
		err = ErrInvalidCacheFormat
		return
	}
	for lineNumber, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			logrus.Warnf("Skipping malformed cache line %d", lineNumber+2)
			continue
		}
		app := App{
			Name:     Unescape(parts[0]),
			Recent:   true,
			IconPath: Unescape(parts[2]),
		}
		if parts[1] != "" {
			var options entity.LaunchOptions
			if options, err = ParseLegacyLaunchOptions(Unescape(parts[1])); err != nil {
				logrus.Warnf("Skipping cache line %d: %s", lineNumber+2, err)
				err = nil
				continue
			}
			app.LaunchOptions = &options
		}
		apps = append(apps, app)
	}
	return
}

// ParseLegacyLaunchOptions parses "command|working directory|K=V,K=V".
func ParseLegacyLaunchOptions(value string) (options entity.LaunchOptions, err error) {
	parts := strings.SplitN(value, "|", 3)
	if len(parts) != 3 {
		err = fmt.Errorf("invalid launch options %q", value)
		return
	}
	options.CustomCommand = parts[0]
	options.WorkingDirectory = parts[1]
	options.Environment = map[string]string{}
	if parts[2] != "" {
		for _, pair := range strings.Split(parts[2], ",") {
			if key, variable, ok := strings.Cut(pair, "="); ok {
				options.Environment[key] = variable
			}
		}
	}
	return
}

// Unescape reverts the \\, \t and \n escapes of the text cache. Unknown
// escapes are kept verbatim.
func Unescape(value string) string {
	var builder strings.Builder
	builder.Grow(len(value))
	runes := []rune(value)
	for index := 0; index < len(runes); index++ {
		if runes[index] != '\\' {
			builder.WriteRune(runes[index])
			continue
		}
		if index+1 == len(runes) {
			builder.WriteRune('\\')
			break
		}
		index++
		switch runes[index] {
		case '\\':
			builder.WriteRune('\\')
		case 't':
			builder.WriteRune('\t')
		case 'n':
			builder.WriteRune('\n')
		default:
			builder.WriteRune('\\')
			builder.WriteRune(runes[index])
		}
	}
	return builder.String()
}
