package database

import (
	"fmt"

	"inventory-app/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// OpenConnection opens a GORM connection using the driver configured by
// DB_DRIVER. Supported drivers: mysql, postgres, mssql.
func OpenConnection() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch config.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, config.DBName)
		dialector = mysql.Open(dsn)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			config.DBHost, config.DBUser, config.DBPassword, config.DBName, config.DBPort)
		dialector = postgres.Open(dsn)
	case "mssql":
		dsn := "sqlserver://" + config.DBUser + ":" + config.DBPassword + "@" +
			config.DBHost + ":" + config.DBPort + "?database=" + config.DBName
		dialector = sqlserver.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB driver: %s", config.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return nil, err
	}

	fmt.Println("Connected to database " + config.DBName)
	return db, nil
}
