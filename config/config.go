package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka database untuk penyimpanan snapshot. Default memakai file
// sqlite lokal; set DB_DRIVER=mysql dan MYSQL_DSN untuk memakai MySQL.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "mysql" {
		dsn := os.Getenv("MYSQL_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("MYSQL_DSN belum diisi")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "frozen_po.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
