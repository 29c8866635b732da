package sqlite

import (
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tusk.dev/launcher/internal/entity"
)

type LaunchOptions struct {
	AppName              string `gorm:"primaryKey"`
	CustomCommand        sql.NullString
	WorkingDirectory     sql.NullString
	EnvironmentVariables []EnvironmentVariable `gorm:"foreignKey:AppName;references:AppName"`
}

type EnvironmentVariable struct {
	AppName string `gorm:"primaryKey"`
	Key     string `gorm:"primaryKey"`
	Value   string `gorm:"not null"`
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func (row LaunchOptions) toEntity() entity.LaunchOptions {
	options := entity.LaunchOptions{
		CustomCommand:    row.CustomCommand.String,
		WorkingDirectory: row.WorkingDirectory.String,
		Environment:      make(map[string]string, len(row.EnvironmentVariables)),
	}
	for _, variable := range row.EnvironmentVariables {
		options.Environment[variable.Key] = variable.Value
	}
	return options
}

func storeLaunchOptions(tx *gorm.DB, name string, options entity.LaunchOptions) (err error) {
	if err = tx.Where("app_name = ?", name).Delete(&EnvironmentVariable{}).Error; err != nil {
		return
	}
	row := LaunchOptions{
		AppName:          name,
		CustomCommand:    nullString(options.CustomCommand),
		WorkingDirectory: nullString(options.WorkingDirectory),
	}
	if err = createOrUpdate(tx.Omit("EnvironmentVariables"), &row); err != nil {
		return
	}
	variables := make([]EnvironmentVariable, 0, len(options.Environment))
	for _, key := range options.EnvironmentKeys() {
		variables = append(variables, EnvironmentVariable{AppName: name, Key: key, Value: options.Environment[key]})
	}
	if len(variables) > 0 {
		err = tx.Create(&variables).Error
	}
	return
}

func (d *SQLiteDelegate) GetLaunchOptions(name string) (options entity.LaunchOptions, err error) {
	if d.database == nil {
		err = errNotOpened
		return
	}
	var row LaunchOptions
	if err = d.first(&row, "app_name = ?", name); err != nil {
		return
	}
	if err = d.database.Where("app_name = ?", name).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&row.EnvironmentVariables).Error; err != nil {
		return
	}
	options = row.toEntity()
	return
}

func (d *SQLiteDelegate) SetLaunchOptions(name string, options entity.LaunchOptions) error {
	if d.database == nil {
		return errNotOpened
	}
	return d.database.Transaction(func(tx *gorm.DB) error {
		return storeLaunchOptions(tx, name, options)
	})
}

func (d *SQLiteDelegate) GetAllLaunchOptions() (options map[string]entity.LaunchOptions, err error) {
	if d.database == nil {
		err = errNotOpened
		return
	}
	var rows []LaunchOptions
	if err = d.database.Preload("EnvironmentVariables").Find(&rows).Error; err != nil {
		return
	}
	options = make(map[string]entity.LaunchOptions, len(rows))
	for _, row := range rows {
		options[row.AppName] = row.toEntity()
	}
	return
}
