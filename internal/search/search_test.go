package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tusk.dev/launcher/internal/desktopentry"
	"tusk.dev/launcher/internal/search"
)

var applications = []desktopentry.Application{
	{Name: "Firefox", Exec: "firefox"},
	{Name: "Files", Exec: "nautilus"},
	{Name: "Terminal", Exec: "foot"},
	{Name: "Fire Emblem", Exec: "fe"},
	{Name: "Straße", Exec: "street"},
	{Name: "Text Editor", Exec: "gedit"},
}

func names(results []desktopentry.Application) (result []string) {
	result = []string{}
	for _, application := range results {
		result = append(result, application.Name)
	}
	return
}

func TestSearchSubstringIgnoresCase(t *testing.T) {
	results := search.Search("FIRE", applications, search.Options{MaxResults: 5})
	assert.Equal(t, []string{"Firefox", "Fire Emblem"}, names(results))
}

func TestSearchLimitsResults(t *testing.T) {
	results := search.Search("e", applications, search.Options{MaxResults: 2})
	assert.Equal(t, []string{"Firefox", "Files"}, names(results))
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	results := search.Search("", applications, search.Options{MaxResults: 3})
	assert.Equal(t, []string{"Firefox", "Files", "Terminal"}, names(results))
}

func TestSearchZeroLimit(t *testing.T) {
	assert.Empty(t, search.Search("fire", applications, search.Options{MaxResults: 0}))
}

func TestSearchUnicodeFolding(t *testing.T) {
	results := search.Search("STRASSE", applications, search.Options{MaxResults: 5})
	assert.Equal(t, []string{"Straße"}, names(results))
}

func TestSearchNoFuzzyByDefault(t *testing.T) {
	assert.Empty(t, search.Search("txtedt", applications, search.Options{MaxResults: 5}))
}

func TestSearchFuzzyFillsRemainingSlots(t *testing.T) {
	results := search.Search("fis", applications, search.Options{MaxResults: 5, Fuzzy: true})
	assert.Equal(t, []string{"Files"}, names(results))

	results = search.Search("txtedt", applications, search.Options{MaxResults: 5, Fuzzy: true})
	assert.Equal(t, []string{"Text Editor"}, names(results))
}

func TestSearchFuzzyKeepsSubstringFirst(t *testing.T) {
	results := search.Search("fi", applications, search.Options{MaxResults: 5, Fuzzy: true})
	assert.Equal(t, []string{"Firefox", "Files", "Fire Emblem"}, names(results))
}

func TestRecent(t *testing.T) {
	results := search.Recent([]string{"Terminal", "Removed App", "Firefox", "Files"}, applications, 2)
	assert.Equal(t, []string{"Terminal", "Firefox"}, names(results))
}

func TestRecentEmpty(t *testing.T) {
	assert.Empty(t, search.Recent(nil, applications, 5))
}
