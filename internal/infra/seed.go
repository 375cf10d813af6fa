package infra

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
)

// Seed inserts the sample halls and events. Each table is only seeded
// when it is empty, so restarting the app never duplicates rows.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	var hallCount int64
	if err := db.Model(&db_models.Hall{}).Count(&hallCount).Error; err != nil {
		return err
	}
	if hallCount == 0 {
		halls := []db_models.Hall{
			{Name: "LBS HALL", Location: "Old Hijili", Vacancy: 50, Price: 200},
			{Name: "MT HALL", Location: "Main Building", Vacancy: 50, Price: 200},
			{Name: "SNVH HALL", Location: "Pepsi Cut", Vacancy: 50, Price: 200},
			{Name: "VS HALL", Location: "Jhan Ghosh", Vacancy: 50, Price: 200},
			{Name: "JCB HALL", Location: "Gymkhana", Vacancy: 50, Price: 200},
		}
		if err := db.Create(&halls).Error; err != nil {
			return err
		}
		logger.Info("seeded halls", zap.Int("count", len(halls)))
	}

	var eventCount int64
	if err := db.Model(&db_models.Event{}).Count(&eventCount).Error; err != nil {
		return err
	}
	if eventCount == 0 {
		events := []db_models.Event{
			{Name: "Battle of Bands", Description: "Music competition between college bands", Date: date(2024, 3, 15), Time: "18:00", Location: "Main Auditorium"},
			{Name: "Dance Competition", Description: "Inter-college dance competition", Date: date(2024, 3, 16), Time: "19:00", Location: "Open Air Theatre"},
			{Name: "Coding Contest", Description: "Programming competition", Date: date(2024, 3, 17), Time: "10:00", Location: "Computer Lab"},
			{Name: "Art Exhibition", Description: "Student art showcase", Date: date(2024, 3, 18), Time: "14:00", Location: "Art Gallery"},
			{Name: "Sports Meet", Description: "Annual sports competition", Date: date(2024, 3, 19), Time: "08:00", Location: "Sports Ground"},
		}
		if err := db.Create(&events).Error; err != nil {
			return err
		}
		logger.Info("seeded events", zap.Int("count", len(events)))
	}

	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
