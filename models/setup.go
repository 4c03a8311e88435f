package models

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDataBase Open the sqlite database used by the relay store and run
// the migrations. The relay runs echo-only when this is never called.
func ConnectDataBase(filename string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(filename), &gorm.Config{})

	if err != nil {
		log.Fatal(fmt.Sprintf("Cannot connect sqlite database at %s: %s", filename, err))
	}
	log.Info(fmt.Sprintf("Connected sqlite database at %s", filename))

	if err := DB.AutoMigrate(&AnnotationRecord{}); err != nil {
		log.Fatal("migration error: ", err)
	}
}
