package seeders

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

var demoOrganizationID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

var equipmentTypesData = []struct {
	Name     string
	Category string
}{
	{"Радиостанция", "связь"},
	{"Бронежилет", "экипировка"},
	{"Фонарь", "экипировка"},
	{"Металлодетектор", "досмотр"},
}

// SeedDemoOrganization создает демо-организацию и администратора.
// Повторный запуск ничего не перезаписывает.
func SeedDemoOrganization(db *pgxpool.Pool, adminEmail, adminPassword string) {
	ctx := context.Background()
	log.Println("  - Создание демо-организации и администратора...")

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Fatalf("❌ Ошибка открытия транзакции: %v", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO organizations (id, name, contact_email)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, demoOrganizationID, "Демо охранное предприятие", adminEmail)
	if err != nil {
		log.Fatalf("❌ Ошибка создания организации: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Ошибка хеширования пароля: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, organization_id, email, full_name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, 'admin')
		ON CONFLICT DO NOTHING
	`, uuid.New(), demoOrganizationID, adminEmail, "Администратор", string(hash))
	if err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("❌ Ошибка фиксации транзакции: %v", err)
	}
	log.Println("  ✅ Демо-организация готова.")
}

// SeedEquipmentTypes наполняет справочник типов оборудования демо-организации.
func SeedEquipmentTypes(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("  - Наполнение таблицы 'equipment_types'...")

	query := `
		INSERT INTO equipment_types (id, organization_id, name, category)
		SELECT $1, $2, $3, $4
		WHERE NOT EXISTS (
			SELECT 1 FROM equipment_types
			WHERE organization_id = $2 AND name = $3 AND NOT is_deleted
		)
	`
	for _, t := range equipmentTypesData {
		if _, err := db.Exec(ctx, query, uuid.New(), demoOrganizationID, t.Name, t.Category); err != nil {
			log.Fatalf("❌ Ошибка добавления типа %q: %v", t.Name, err)
		}
	}
	log.Println("  ✅ Типы оборудования готовы.")
}
