package main

import (
	"fmt"

	"solraise/pkg/config"
	"solraise/pkg/database"
	"solraise/pkg/logger"
	"solraise/pkg/models"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedPools(db, log); err != nil {
		log.Error("Failed to seed pools: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedPools(db *gorm.DB, log *logger.Logger) error {
	pools := []models.Pool{
		{
			ID:          "medical",
			Name:        "International Medical Relief",
			Description: "Emergency medical aid and supplies for communities in crisis",
		},
		{
			ID:          "education",
			Name:        "Global Education Fund",
			Description: "School supplies, teacher training and scholarships worldwide",
		},
		{
			ID:          "disaster",
			Name:        "Emergency Response Network",
			Description: "Rapid response to natural disasters and humanitarian emergencies",
		},
	}

	for _, pool := range pools {
		var existing models.Pool
		result := db.Where("id = ?", pool.ID).First(&existing)
		if result.Error == nil {
			log.Info("Pool %s already exists, skipping", pool.ID)
			continue
		}

		if err := db.Create(&pool).Error; err != nil {
			return fmt.Errorf("failed to create pool %s: %w", pool.ID, err)
		}
		log.Info("Created pool: %s (%s)", pool.Name, pool.ID)
	}

	return nil
}
