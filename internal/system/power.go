// Package system runs the session power actions and formats the clock.
package system

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/configloader"
)

const sessionIDVariable = "$XDG_SESSION_ID"

var ErrNoCommand = errors.New("no command could be started")

type Action int

const (
	PowerOff Action = iota
	Restart
	Logout
)

func (a Action) String() string {
	switch a {
	case PowerOff:
		return "power off"
	case Restart:
		return "restart"
	case Logout:
		return "logout"
	}
	return fmt.Sprintf("action %d", int(a))
}

// Spawner starts a detached process without waiting for it.
type Spawner interface {
	Spawn(name string, args ...string) error
}

type ProcessSpawner struct{}

func (ProcessSpawner) Spawn(name string, args ...string) (err error) {
	process := exec.Command(name, args...)
	process.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err = process.Start(); err != nil {
		return
	}
	go process.Wait()
	return
}

type Power struct {
	spawner   Spawner
	lookupEnv func(string) (string, bool)
	commands  map[Action][]string
}

func NewPower(config configloader.Config, spawner Spawner) *Power {
	return &Power{
		spawner:   spawner,
		lookupEnv: os.LookupEnv,
		commands: map[Action][]string{
			PowerOff: config.PowerCommands,
			Restart:  config.RestartCommands,
			Logout:   config.LogoutCommands,
		},
	}
}

// WithLookupEnv replaces the environment lookup used for $XDG_SESSION_ID.
func (p *Power) WithLookupEnv(lookupEnv func(string) (string, bool)) *Power {
	p.lookupEnv = lookupEnv
	return p
}

func (p *Power) Run(action Action) error {
	if err := RunChain(p.spawner, p.commands[action], p.lookupEnv); err != nil {
		logrus.Errorf("Cannot %s: %+v", action, err)
		return fmt.Errorf("%s: %w", action, err)
	}
	return nil
}

func (p *Power) PowerOff() error { return p.Run(PowerOff) }
func (p *Power) Restart() error  { return p.Run(Restart) }
func (p *Power) Logout() error   { return p.Run(Logout) }

// RunChain spawns the first command of the list that starts successfully.
// Commands referencing an unset $XDG_SESSION_ID are skipped.
func RunChain(spawner Spawner, commands []string, lookupEnv func(string) (string, bool)) error {
	for _, command := range commands {
		if strings.Contains(command, sessionIDVariable) {
			sessionID, ok := lookupEnv("XDG_SESSION_ID")
			if !ok || sessionID == "" {
				logrus.Debugf("Skipping %q: XDG_SESSION_ID is not set", command)
				continue
			}
			command = strings.ReplaceAll(command, sessionIDVariable, sessionID)
		}
		fields := strings.Fields(command)
		if len(fields) == 0 {
			continue
		}
		if err := spawner.Spawn(fields[0], fields[1:]...); err != nil {
			logrus.Debugf("Cannot spawn %q: %s", command, err)
			continue
		}
		logrus.Infof("Spawned %q", command)
		return nil
	}
	return ErrNoCommand
}
