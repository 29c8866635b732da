package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tusk.dev/launcher/internal/entity"
)

func TestLaunchOptionsIsEmpty(t *testing.T) {
	assert.True(t, entity.LaunchOptions{}.IsEmpty())
	assert.True(t, entity.LaunchOptions{Environment: map[string]string{}}.IsEmpty())
	assert.False(t, entity.LaunchOptions{WorkingDirectory: "/tmp"}.IsEmpty())
}

func TestLaunchOptionsEnviron(t *testing.T) {
	options := entity.LaunchOptions{Environment: map[string]string{"B": "2", "A": "1"}}
	assert.Equal(t, []string{"A=1", "B=2"}, options.Environ())
}

func TestLaunchOptionsEqual(t *testing.T) {
	first := entity.LaunchOptions{CustomCommand: "gamemoderun %command%"}
	second := entity.LaunchOptions{CustomCommand: "gamemoderun %command%", Environment: map[string]string{}}
	assert.True(t, first.Equal(second))
	second.Environment["DXVK_HUD"] = "1"
	assert.False(t, first.Equal(second))
}
