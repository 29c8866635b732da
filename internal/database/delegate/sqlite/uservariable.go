package sqlite

import (
	"database/sql"
	"encoding/base64"
	"errors"

	"tusk.dev/launcher/internal/database/delegate"
)

type UserVariable struct {
	Name  string `gorm:"primaryKey"`
	Value sql.NullString
}

func cacheHashVariable(name string) string {
	return "cacheHash:" + name
}

// GetStoredCacheHash returns the hash of the last imported legacy cache
// called name, or an empty hash when it was never imported.
func (d *SQLiteDelegate) GetStoredCacheHash(name string) (storedHash []byte, err error) {
	var userVariable UserVariable
	if err = d.first(&userVariable, "name = ?", cacheHashVariable(name)); err != nil || !userVariable.Value.Valid {
		if errors.Is(err, delegate.ErrNotFound) {
			err = nil
		}
		storedHash = []byte{}
		return
	}
	storedHash, err = base64.URLEncoding.DecodeString(userVariable.Value.String)
	return
}

func (d *SQLiteDelegate) SetStoredCacheHash(name string, hash []byte) (err error) {
	if d.database == nil {
		return errNotOpened
	}
	userVariable := UserVariable{
		Name: cacheHashVariable(name),
		Value: sql.NullString{
			String: base64.URLEncoding.EncodeToString(hash),
			Valid:  true,
		},
	}
	return createOrUpdate(d.database, &userVariable)
}
