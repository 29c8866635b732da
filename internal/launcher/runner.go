package launcher

import (
	"os"
	"os/exec"
	"syscall"
)

// Runner starts a shell command line without waiting for it.
type Runner interface {
	Run(command string, workingDirectory string, environment []string) error
}

// ShellRunner runs commands through "sh -c" detached from the terminal.
type ShellRunner struct{}

func (ShellRunner) Run(command string, workingDirectory string, environment []string) (err error) {
	process := exec.Command("sh", "-c", command)
	process.Dir = workingDirectory
	process.Env = append(os.Environ(), environment...)
	// A nil stream is connected to the null device
	process.Stdin, process.Stdout, process.Stderr = nil, nil, nil
	// New session so a closing terminal does not hang up the application
	process.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err = process.Start(); err != nil {
		return
	}
	go process.Wait()
	return
}
