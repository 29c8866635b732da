// Package search filters the application catalog by name.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"tusk.dev/launcher/internal/desktopentry"
)

type Options struct {
	MaxResults int
	Fuzzy      bool // fill the remaining slots with fuzzy subsequence matches
}

// Search returns the applications whose name contains query, ignoring case,
// in catalog order. With fuzzy matching enabled the remaining slots are
// filled with subsequence matches ranked by distance.
func Search(query string, applications []desktopentry.Application, options Options) []desktopentry.Application {
	if options.MaxResults <= 0 {
		return nil
	}
	caser := cases.Fold()
	foldedQuery := caser.String(strings.TrimSpace(query))

	results := make([]desktopentry.Application, 0, options.MaxResults)
	matched := make(map[int]bool)
	for index, application := range applications {
		if len(results) == options.MaxResults {
			return results
		}
		if strings.Contains(caser.String(application.Name), foldedQuery) {
			results = append(results, application)
			matched[index] = true
		}
	}
	if !options.Fuzzy || foldedQuery == "" {
		return results
	}

	targets := make([]string, len(applications))
	for index, application := range applications {
		targets[index] = application.Name
	}
	ranks := fuzzy.RankFindFold(foldedQuery, targets)
	sort.Stable(ranks)
	for _, rank := range ranks {
		if len(results) == options.MaxResults {
			break
		}
		if matched[rank.OriginalIndex] {
			continue
		}
		matched[rank.OriginalIndex] = true
		results = append(results, applications[rank.OriginalIndex])
	}
	return results
}

// Recent maps recently launched names to catalog applications, most recent
// first. Names missing from the catalog are skipped.
func Recent(recentNames []string, applications []desktopentry.Application, maxResults int) []desktopentry.Application {
	byName := make(map[string]desktopentry.Application, len(applications))
	for index := len(applications) - 1; index >= 0; index-- {
		byName[applications[index].Name] = applications[index]
	}
	results := make([]desktopentry.Application, 0, maxResults)
	for _, name := range recentNames {
		if len(results) >= maxResults {
			break
		}
		if application, ok := byName[name]; ok {
			results = append(results, application)
		}
	}
	return results
}
