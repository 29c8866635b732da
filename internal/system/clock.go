package system

import (
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/configloader"
)

// Used when the configured time format does not compile
const fallbackTimeFormat = "%I:%M %p"

var dateLayouts = map[configloader.TimeOrder]string{
	configloader.MdyHms: "%m/%d/%Y",
	configloader.YmdHms: "%Y/%m/%d",
	configloader.DmyHms: "%d/%m/%Y",
}

// CurrentTime returns the clock label for now.
func CurrentTime(config configloader.Config) string {
	return FormatClock(config, time.Now())
}

// FormatClock returns "<time> <date>" with the time in config.TimeFormat and
// the date ordered by config.TimeOrder.
func FormatClock(config configloader.Config, t time.Time) string {
	dateLayout, ok := dateLayouts[config.TimeOrder]
	if !ok {
		dateLayout = dateLayouts[configloader.MdyHms]
	}
	clock, err := strftime.Format(config.TimeFormat, t)
	if err != nil {
		logrus.Warnf("invalid time format %q: %v", config.TimeFormat, err)
		clock, _ = strftime.Format(fallbackTimeFormat, t)
	}
	date, _ := strftime.Format(dateLayout, t)
	return clock + " " + date
}
