package sqlite

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tusk.dev/launcher/internal/entity"
)

type RecentApp struct {
	Name         string    `gorm:"primaryKey"`
	LastLaunched time.Time `gorm:"not null;index"`
	LaunchCount  uint      `gorm:"not null;default:0"`
}

// RecordLaunch moves name to the top of the recent list.
func (d *SQLiteDelegate) RecordLaunch(name string, at time.Time) error {
	if d.database == nil {
		return errNotOpened
	}
	recentApp := RecentApp{Name: name, LastLaunched: at, LaunchCount: 1}
	return d.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_launched": at,
			"launch_count":  gorm.Expr("launch_count + 1"),
		}),
	}).Create(&recentApp).Error
}

// GetRecentApps returns the recent list, most recent first. A non positive
// limit returns every entry.
func (d *SQLiteDelegate) GetRecentApps(limit int) (recentApps []entity.RecentApp, err error) {
	if d.database == nil {
		err = errNotOpened
		return
	}
	if limit <= 0 {
		limit = -1
	}
	var rows []RecentApp
	if result := d.database.Order("last_launched desc").Order("name").Limit(limit).Find(&rows); result.Error != nil {
		err = result.Error
		return
	}
	recentApps = make([]entity.RecentApp, 0, len(rows))
	for _, row := range rows {
		recentApps = append(recentApps, entity.RecentApp{
			Name:         row.Name,
			LastLaunched: row.LastLaunched,
			LaunchCount:  row.LaunchCount,
		})
	}
	return
}
