// Command seed loads a superadmin account and a demo dentist roster into the
// database. Safe to re-run: existing rows are left alone.
package main

import (
	"os"

	"dental-clinic-backend/config"
	"dental-clinic-backend/internal/domain/entity"
	"dental-clinic-backend/internal/infrastructure/database"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seedSuperadmin(db); err != nil {
		logrus.Fatalf("Failed to seed superadmin: %v", err)
	}
	if err := seedDentists(db); err != nil {
		logrus.Fatalf("Failed to seed dentists: %v", err)
	}

	logrus.Info("Seed complete")
}

func seedSuperadmin(db *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@dentalclinic.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Infof("Superadmin %s already exists, skipping", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := entity.User{
		Email:    email,
		Password: string(hash),
		FullName: "Clinic Administrator",
		Role:     entity.RoleSuperadmin,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	logrus.Infof("Created superadmin %s", email)
	return nil
}

func seedDentists(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Dentist{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Dentists already seeded, skipping")
		return nil
	}

	dentists := []entity.Dentist{
		{
			Name:      "Dr. Asha Rai",
			Specialty: "Orthodontist",
			Rating:    decimal.RequireFromString("4.8"),
			Photo:     "https://ui-avatars.com/api/?name=Asha+Rai&background=0D8ABC&color=fff",
			Bio:       "Dr. Asha Rai has 10+ years of experience in orthodontics, specializing in braces and clear aligners.",
			AvailableSlots: entity.SlotMap{
				"Monday":    {"09:30", "10:30", "14:00"},
				"Wednesday": {"11:00", "15:00"},
				"Friday":    {"10:00", "13:30"},
			},
		},
		{
			Name:      "Dr. Kiran Sharma",
			Specialty: "General Dentist",
			Rating:    decimal.RequireFromString("4.6"),
			Photo:     "https://ui-avatars.com/api/?name=Kiran+Sharma&background=F39C12&color=fff",
			Bio:       "General dentist focusing on preventive care, fillings, and routine checkups for all ages.",
			AvailableSlots: entity.SlotMap{
				"Tuesday":  {"10:00", "11:30", "16:00"},
				"Thursday": {"09:00", "13:00"},
				"Saturday": {"10:30", "15:30"},
			},
		},
		{
			Name:      "Dr. Meera Joshi",
			Specialty: "Endodontist",
			Rating:    decimal.RequireFromString("4.9"),
			Photo:     "https://ui-avatars.com/api/?name=Meera+Joshi&background=27AE60&color=fff",
			Bio:       "Expert in root canal treatments and saving natural teeth with advanced endodontic procedures.",
			AvailableSlots: entity.SlotMap{
				"Monday":    {"09:00", "12:30", "15:00"},
				"Wednesday": {"10:30", "14:30"},
				"Thursday":  {"09:00", "12:00", "16:00"},
			},
		},
		{
			Name:      "Dr. Rajan Thapa",
			Specialty: "Pediatric Dentist",
			Rating:    decimal.RequireFromString("4.7"),
			Photo:     "https://ui-avatars.com/api/?name=Rajan+Thapa&background=8E44AD&color=fff",
			Bio:       "Specialized in providing gentle, friendly dental care for children of all ages.",
			AvailableSlots: entity.SlotMap{
				"Tuesday":  {"09:30", "11:00", "14:30"},
				"Friday":   {"10:00", "12:30"},
				"Saturday": {"09:30", "11:30", "15:00"},
			},
		},
		{
			Name:      "Dr. Sneha Shrestha",
			Specialty: "Prosthodontist",
			Rating:    decimal.RequireFromString("4.5"),
			Photo:     "https://ui-avatars.com/api/?name=Sneha+Shrestha&background=E74C3C&color=fff",
			Bio:       "Experienced in dental implants, crowns, and full-mouth rehabilitations.",
			AvailableSlots: entity.SlotMap{
				"Monday":   {"10:00", "13:00", "16:00"},
				"Thursday": {"09:30", "11:30"},
				"Friday":   {"10:00", "12:30", "14:30"},
			},
		},
		{
			Name:      "Dr. Prakash Lama",
			Specialty: "Periodontist",
			Rating:    decimal.RequireFromString("4.4"),
			Photo:     "https://ui-avatars.com/api/?name=Prakash+Lama&background=34495E&color=fff",
			Bio:       "Focused on gum care, periodontal surgery, and preventing advanced gum disease.",
			AvailableSlots: entity.SlotMap{
				"Tuesday":   {"09:00", "12:00", "15:30"},
				"Wednesday": {"10:00", "13:00"},
				"Saturday":  {"11:00", "14:00", "16:00"},
			},
		},
	}

	if err := db.Create(&dentists).Error; err != nil {
		return err
	}

	logrus.Infof("Created %d dentists", len(dentists))
	return nil
}
