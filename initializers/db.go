package initializers

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func ConnectToDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
