package main

import (
	"flag"
	"log"

	"equipment-system/pkg/config"
	"equipment-system/pkg/database/postgresql"
	"equipment-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)             ")
	log.Println("======================================================")

	runDemo := flag.Bool("demo", false, "Создать демо-организацию и администратора")
	runTypes := flag.Bool("types", false, "Наполнить справочник типов оборудования")
	runAll := flag.Bool("all", false, "Запустить все сидеры")
	adminEmail := flag.String("admin-email", "admin@example.com", "Email администратора демо-организации")
	adminPassword := flag.String("admin-password", "changeme123", "Пароль администратора демо-организации")

	flag.Parse()

	if !*runDemo && !*runTypes && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Пример: go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runDemo {
		seeders.SeedDemoOrganization(dbPool, *adminEmail, *adminPassword)
	}
	if *runAll || *runTypes {
		seeders.SeedEquipmentTypes(dbPool)
	}

	log.Println("✅ Сидирование завершено.")
}
