package configloader

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"tusk.dev/launcher/internal/folder"
)

// Order of the date part in the clock label
type TimeOrder string

const (
	MdyHms TimeOrder = "MdyHms"
	YmdHms TimeOrder = "YmdHms"
	DmyHms TimeOrder = "DmyHms"
)

const environmentPrefix = "TUSK"

// Structure to bind application parameters
type Config struct {
	LogLevel           string    `mapstructure:"log_level"` // logrus library log level to be assigned
	EnableRecentApps   bool      `mapstructure:"enable_recent_apps"`
	MaxSearchResults   int       `mapstructure:"max_search_results"`
	EnablePowerOptions bool      `mapstructure:"enable_power_options"`
	ShowTime           bool      `mapstructure:"show_time"`
	TimeFormat         string    `mapstructure:"time_format"` // strftime layout of the time part
	TimeOrder          TimeOrder `mapstructure:"time_order"`
	EnableIcons        bool      `mapstructure:"enable_icons"`
	FuzzySearch        bool      `mapstructure:"fuzzy_search"`
	WatchApplications  bool      `mapstructure:"watch_applications"`
	PowerCommands      []string  `mapstructure:"power_commands"`
	RestartCommands    []string  `mapstructure:"restart_commands"`
	LogoutCommands     []string  `mapstructure:"logout_commands"`
}

// Initialize default parameters values
func initDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("enable_recent_apps", true)
	v.SetDefault("max_search_results", 5)
	v.SetDefault("enable_power_options", true)
	v.SetDefault("show_time", true)
	v.SetDefault("time_format", "%I:%M %p")
	v.SetDefault("time_order", string(MdyHms))
	v.SetDefault("enable_icons", true)
	v.SetDefault("fuzzy_search", false)
	v.SetDefault("watch_applications", true)
	v.SetDefault("power_commands", []string{
		"systemctl poweroff",
		"loginctl poweroff",
		"poweroff",
		"halt",
	})
	v.SetDefault("restart_commands", []string{
		"systemctl reboot",
		"loginctl reboot",
		"reboot",
	})
	v.SetDefault("logout_commands", []string{
		"loginctl terminate-session $XDG_SESSION_ID",
		"hyprctl dispatch exit",
		"swaymsg exit",
		"gnome-session-quit --logout --no-prompt",
		"qdbus org.kde.ksmserver /KSMServer logout 0 0 0",
	})
}

// Default returns the configuration used when no file or variable overrides it.
func Default() (config Config) {
	v := viper.New()
	initDefaultConfiguration(v)
	if err := v.Unmarshal(&config); err != nil {
		panic(err)
	}
	return
}

// Load configuration from the TOML file and TUSK_* environment variables.
// Without an explicit path the file is looked up in the XDG config folder of
// the application and created with the defaults when missing.
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	v := viper.New()
	initDefaultConfiguration(v)

	configurationFolder := filepath.Join(folder.ConfigHome(), applicationName)
	if configurationFilePath == "" {
		v.AddConfigPath(configurationFolder)
		v.SetConfigName("config")
		v.SetConfigType("toml")
	} else {
		// Set the configuration file path
		v.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	v.SetEnvPrefix(environmentPrefix)
	v.AutomaticEnv()

	// Get configuration from configuration file, if set
	if configError := v.ReadInConfig(); configError != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(configError, &notFound) && configurationFilePath == "" {
			defaultPath := filepath.Join(configurationFolder, folder.ConfigFileName)
			if writeError := WriteDefaultConfiguration(defaultPath); writeError != nil {
				logrus.Warn(writeError.Error())
			} else {
				logrus.Infof("Created default configuration %s", defaultPath)
			}
		} else {
			logrus.Warnf("Failed to parse config file, using default configuration: %s", configError)
		}
	}
	if err = v.Unmarshal(&config); err != nil {
		return
	}
	config.sanitize()
	return
}

// WriteDefaultConfiguration stores the default configuration at path,
// creating the parent folders.
func WriteDefaultConfiguration(path string) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	v := viper.New()
	initDefaultConfiguration(v)
	v.SetConfigType("toml")
	return v.WriteConfigAs(path)
}

func (config *Config) sanitize() {
	defaults := Default()
	if config.MaxSearchResults < 1 {
		logrus.Warnf("Invalid max_search_results %d, using %d", config.MaxSearchResults, defaults.MaxSearchResults)
		config.MaxSearchResults = defaults.MaxSearchResults
	}
	switch config.TimeOrder {
	case MdyHms, YmdHms, DmyHms:
	default:
		logrus.Warnf("Invalid time_order %q, using %s", config.TimeOrder, defaults.TimeOrder)
		config.TimeOrder = defaults.TimeOrder
	}
	if config.TimeFormat == "" {
		config.TimeFormat = defaults.TimeFormat
	}
}
