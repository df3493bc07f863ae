package initializers

import (
	"log"

	"github.com/Kimanzi/duka-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Project{},
	)
	if err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}
