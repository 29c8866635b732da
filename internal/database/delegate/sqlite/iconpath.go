package sqlite

type IconPath struct {
	AppName string `gorm:"primaryKey"`
	Path    string `gorm:"not null"`
}

func (d *SQLiteDelegate) GetIconPath(name string) (path string, err error) {
	var row IconPath
	if err = d.first(&row, "app_name = ?", name); err != nil {
		return
	}
	path = row.Path
	return
}

func (d *SQLiteDelegate) SetIconPath(name string, path string) error {
	if d.database == nil {
		return errNotOpened
	}
	return createOrUpdate(d.database, &IconPath{AppName: name, Path: path})
}
