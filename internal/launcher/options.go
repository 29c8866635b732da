package launcher

import (
	"strings"

	"tusk.dev/launcher/internal/entity"
)

const commandPlaceholder = "%command%"

// BuildCommand applies the custom command of options to the Exec line.
func BuildCommand(exec string, options entity.LaunchOptions) string {
	custom := options.CustomCommand
	switch {
	case custom == "":
		return exec
	case strings.TrimSpace(custom) == commandPlaceholder:
		return exec
	case strings.Contains(custom, commandPlaceholder):
		return strings.ReplaceAll(custom, commandPlaceholder, exec)
	}
	return custom + " " + exec
}

// ParseOptions reads "-e KEY=VALUE" and "-w DIR" flags up to the first other
// token. The remaining tokens form the custom command. A trailing "-w DIR"
// after the command, as written by FormatOptions, is read as well.
func ParseOptions(input string) (options entity.LaunchOptions) {
	tokens := strings.Fields(input)
	index := 0
parsing:
	for index < len(tokens) {
		switch tokens[index] {
		case "-e":
			if index+1 < len(tokens) {
				if key, value, ok := strings.Cut(tokens[index+1], "="); ok {
					if options.Environment == nil {
						options.Environment = map[string]string{}
					}
					options.Environment[key] = value
				}
			}
			index += 2
		case "-w":
			if index+1 < len(tokens) {
				options.WorkingDirectory = tokens[index+1]
			}
			index += 2
		default:
			break parsing
		}
	}
	if index >= len(tokens) {
		return
	}
	command := tokens[index:]
	if length := len(command); length >= 3 && command[length-2] == "-w" {
		options.WorkingDirectory = command[length-1]
		command = command[:length-2]
	}
	options.CustomCommand = strings.Join(command, " ")
	return
}

// FormatOptions renders options in the form read by ParseOptions.
func FormatOptions(options entity.LaunchOptions) string {
	var builder strings.Builder
	for _, key := range options.EnvironmentKeys() {
		builder.WriteString("-e " + key + "=" + options.Environment[key] + " ")
	}
	builder.WriteString(options.CustomCommand)
	if options.WorkingDirectory != "" {
		builder.WriteString(" -w " + options.WorkingDirectory)
	}
	return strings.TrimSpace(builder.String())
}
