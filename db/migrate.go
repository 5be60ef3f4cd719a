package db

import (
	"fmt"
	"log"

	"github.com/camiloreyes/servimarket-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Service{},
		&models.Facility{},
		&models.Booking{},
		&models.Invoice{},
		&models.PayoutMethod{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRoles()

	fmt.Println("✅ Migrations applied successfully!")
}

func seedRoles() {
	roles := []models.Role{
		{Name: models.RoleClient, Description: "Client who can book services and facilities"},
		{Name: models.RoleProvider, Description: "Provider who publishes listings and receives payouts"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}
