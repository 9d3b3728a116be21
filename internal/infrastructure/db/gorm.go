package db

import (
	"log"
	"time"

	"sils-backend/internal/domain/check"
	"sils-backend/internal/domain/movement"
	"sils-backend/internal/domain/notification"
	"sils-backend/internal/domain/request"
	"sils-backend/internal/domain/tool"
	"sils-backend/internal/domain/user"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector opens and pings; split out so tests can inject a
// mocked dialector.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate applies the schema for every collection the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&tool.Tool{},
		&request.Request{},
		&check.DailyCheck{},
		&check.Detail{},
		&user.User{},
		&user.Credential{},
		&movement.Movement{},
		&notification.Notification{},
	)
}
