package mock

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "saponify/internal/log"
	"saponify/models"
)

// New returns an in-memory sqlite database seeded with representative
// workshop data: a maker account and a pair of evaluated recipes.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:saponify-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte("workshop"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         "Rowan Makes",
		Email:        "rowan@saponify.app",
		PasswordHash: string(password),
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}

	castile := models.Recipe{
		Name:             "Slow Castile",
		Notes:            "Single-oil classic. Long cure, gentle bar.",
		OwnerID:          user.ID,
		Oils:             map[string]float64{"Olive Oil": 1000},
		SuperfatPercent:  5,
		LyeConcentration: 30,
		LyeType:          "naoh",
		LyeAmount:        127.3,
		WaterAmount:      297.03,
		Properties: map[string]float64{
			"hardness": 17, "cleansing": 0, "conditioning": 82,
			"bubbly": 0, "creamy": 17, "iodine": 85, "ins": 105,
		},
		FattyAcids: map[string]float64{
			"palmitic": 14, "stearic": 3, "oleic": 69, "linoleic": 12,
		},
	}

	kitchen := models.Recipe{
		Name:             "Kitchen Scrub Bar",
		Notes:            "High cleansing for greasy hands. Sugar for lather.",
		OwnerID:          user.ID,
		Oils:             map[string]float64{"Coconut Oil": 500, "Olive Oil": 300, "Castor Oil": 200},
		Modifiers:        map[string]float64{"Sugar": 20},
		SuperfatPercent:  12,
		LyeConcentration: 33,
		FragrancePercent: 2,
		LyeType:          "naoh",
		LyeAmount:        138.39,
		WaterAmount:      281.03,
		FragranceAmount:  20,
		Properties: map[string]float64{
			"hardness": 44.6, "cleansing": 33.5, "conditioning": 46.6,
			"bubbly": 51.3, "creamy": 29.7, "iodine": 66.4, "ins": 196.5,
		},
		FattyAcids: map[string]float64{
			"lauric": 24, "myristic": 9.5, "palmitic": 8.6, "stearic": 2.2,
			"ricinoleic": 18, "oleic": 26.2, "linoleic": 5.3, "linolenic": 0.3,
		},
	}

	for _, recipe := range []*models.Recipe{&castile, &kitchen} {
		if err := db.WithContext(ctx).Create(recipe).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
