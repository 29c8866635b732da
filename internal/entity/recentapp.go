package entity

import "time"

type RecentApp struct {
	Name         string
	LastLaunched time.Time
	LaunchCount  uint
}
