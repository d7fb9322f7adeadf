package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"jobportal/internal/config"
	"jobportal/internal/db"
	"jobportal/internal/model"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("parse date %q: %v", value, err)
	}
	return t
}

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Job{}, &model.Application{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	jobs := []model.Job{
		{
			Title:       "Senior Software Engineer",
			Company:     "InnovateX",
			Location:    "Remote",
			Description: "Seeking an experienced software engineer to build scalable web applications using modern frameworks like Node.js and React.",
			Salary:      "$120,000 - $150,000",
			PostedDate:  date("2025-07-29"),
		},
		{
			Title:       "Product Manager",
			Company:     "GrowthCorp",
			Location:    "San Francisco, CA",
			Description: "Lead the product lifecycle from ideation to launch for our flagship mobile app. Strong communication skills required.",
			Salary:      "$130,000 - $160,000",
			PostedDate:  date("2025-07-28"),
		},
		{
			Title:       "DevOps Specialist",
			Company:     "CloudFlow Solutions",
			Location:    "New York, NY",
			Description: "Implement and manage CI/CD pipelines, cloud infrastructure (AWS/Azure), and automation tools (Terraform, Ansible).",
			Salary:      "$110,000 - $140,000",
			PostedDate:  date("2025-07-27"),
		},
		{
			Title:       "Junior Frontend Developer",
			Company:     "WebPulse",
			Location:    "Remote",
			Description: "Entry-level position for a passionate developer eager to learn React, Vue.js, and build engaging user interfaces. HTML, CSS, JS fundamentals are a must.",
			Salary:      "$60,000 - $75,000",
			PostedDate:  date("2025-07-26"),
		},
		{
			Title:       "Data Analyst",
			Company:     "QuantInsights",
			Location:    "Boston, MA",
			Description: "Analyze complex datasets using SQL, Python (Pandas), and R to provide actionable insights and support data-driven decisions.",
			Salary:      "$85,000 - $105,000",
			PostedDate:  date("2025-07-25"),
		},
		{
			Title:       "Marketing Specialist",
			Company:     "BrandBoost Agency",
			Location:    "Los Angeles, CA",
			Description: "Develop and execute digital marketing campaigns, manage social media, and analyze performance metrics.",
			Salary:      "$55,000 - $70,000",
			PostedDate:  date("2025-07-24"),
		},
		{
			Title:       "Human Resources Generalist",
			Company:     "PeopleFirst Inc.",
			Location:    "Chicago, IL",
			Description: "Manage employee relations, recruitment, and HR policies. Experience with HRIS systems a plus.",
			Salary:      "$65,000 - $80,000",
			PostedDate:  date("2025-07-23"),
		},
	}

	log.Println("Clearing existing jobs...")
	if err := gormDB.Where("1 = 1").Delete(&model.Job{}).Error; err != nil {
		log.Fatalf("clear jobs: %v", err)
	}

	for i := range jobs {
		if err := gormDB.Create(&jobs[i]).Error; err != nil {
			log.Fatalf("seed job %q: %v", jobs[i].Title, err)
		}
	}
	log.Printf("Seeded %d jobs", len(jobs))

	// Demo admin account, created only if absent.
	var count int64
	if err := gormDB.Model(&model.User{}).Where("email = ?", "admin@jobportal.local").Count(&count).Error; err != nil {
		log.Fatalf("check admin user: %v", err)
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash admin password: %v", err)
		}
		admin := model.User{
			Email:          "admin@jobportal.local",
			PasswordHash:   string(hash),
			Role:           model.RoleAdmin,
			RegisteredDate: time.Now(),
		}
		if err := gormDB.Create(&admin).Error; err != nil {
			log.Fatalf("seed admin user: %v", err)
		}
		log.Println("Seeded admin user admin@jobportal.local")
	}

	log.Println("Seeding complete")
}
