package entity

import (
	"sort"
	"strings"
)

// Per application overrides applied when launching it
type LaunchOptions struct {
	CustomCommand    string // may reference the Exec line as %command%
	WorkingDirectory string
	Environment      map[string]string
}

func (o LaunchOptions) IsEmpty() bool {
	return o.CustomCommand == "" && o.WorkingDirectory == "" && len(o.Environment) == 0
}

// EnvironmentKeys returns the environment variable names in sorted order.
func (o LaunchOptions) EnvironmentKeys() []string {
	keys := make([]string, 0, len(o.Environment))
	for key := range o.Environment {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Environ returns the variables in the KEY=VALUE form used by os/exec.
func (o LaunchOptions) Environ() []string {
	variables := make([]string, 0, len(o.Environment))
	for _, key := range o.EnvironmentKeys() {
		variables = append(variables, key+"="+o.Environment[key])
	}
	return variables
}

// Equal compares two option sets, treating nil and empty environments alike.
func (o LaunchOptions) Equal(other LaunchOptions) bool {
	if o.CustomCommand != other.CustomCommand || o.WorkingDirectory != other.WorkingDirectory {
		return false
	}
	return strings.Join(o.Environ(), "\x00") == strings.Join(other.Environ(), "\x00")
}
