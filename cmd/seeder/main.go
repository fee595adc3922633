package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/glzpr1598/burn-to-win/internal/club"
	"github.com/glzpr1598/burn-to-win/internal/database"
	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/schedule"
	"github.com/joho/godotenv"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "burn-to-win-seed.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

var roster = []club.Member{
	{Name: "김철수", Gender: club.GenderMale},
	{Name: "박민수", Gender: club.GenderMale},
	{Name: "이준호", Gender: club.GenderMale},
	{Name: "정우성", Gender: club.GenderMale},
	{Name: "최강욱", Gender: club.GenderMale},
	{Name: "한동훈", Gender: club.GenderMale},
	{Name: "이영희", Gender: club.GenderFemale},
	{Name: "최지은", Gender: club.GenderFemale},
	{Name: "김수현", Gender: club.GenderFemale},
	{Name: "박서연", Gender: club.GenderFemale},
	{Name: "윤하늘", Gender: club.GenderFemale},
	{Name: "송가인", Gender: club.GenderFemale, Order: 1, Etc: "신입"},
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], "./migrations")
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	log.Info("Successfully connected to the database.")

	clubStore := club.New(db)
	for _, m := range roster {
		if err := clubStore.AddMember(m); err != nil && err != club.ErrDuplicateMember {
			log.Fatalf("Failed to insert member %s: %s", m.Name, err)
		}
	}
	log.Info("Ensured roster exists.", "members", len(roster))

	genders := make(map[string]club.Gender, len(roster))
	names := make([]string, 0, len(roster))
	for _, m := range roster {
		genders[m.Name] = m.Gender
		names = append(names, m.Name)
	}

	const batchSize = 100
	const numMatches = 2000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*12) // 12 columns per match

	for i := 0; i < numMatches; i++ {
		matchDate := time.Now().AddDate(0, 0, -rand.Intn(365)).Format("2006-01-02")

		// Draw four distinct players for a doubles game.
		perm := rand.Perm(len(names))
		t1d, t1a := names[perm[0]], names[perm[1]]
		t2d, t2a := names[perm[2]], names[perm[3]]

		s1 := 25
		s2 := rand.Intn(24)
		if rand.Intn(2) == 0 {
			s1, s2 = s2, s1
		}

		slots := [4]match.Slot{match.Some(t1d), match.Some(t1a), match.Some(t2d), match.Some(t2a)}
		matchType := match.Classify(slots, genders)
		r1, r2 := match.ComputeResult(s1, s2)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			matchDate,
			fmt.Sprintf("%d", rand.Intn(4)+1),
			t1d, t1a, t2d, t2a,
			s1, s2,
			string(r1), string(r2),
			matchType,
			"",
		)

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			stmt := fmt.Sprintf(`
				INSERT INTO matchrecord (date, court, team1_deuce, team1_ad, team2_deuce, team2_ad,
					team1_score, team2_score, team1_result, team2_result, type, video)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*12)
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	scheduleStore := schedule.NewStore(db)
	nextSat := time.Now()
	for nextSat.Weekday() != time.Saturday {
		nextSat = nextSat.AddDate(0, 0, 1)
	}
	for w := 0; w < 4; w++ {
		sched := schedule.Schedule{
			Date:      nextSat.AddDate(0, 0, 7*w).Format("2006-01-02"),
			StartTime: "18:00",
			EndTime:   "21:00",
			Location:  "시립체육관 3코트",
			Price:     5000,
			Maximum:   16,
		}
		if err := scheduleStore.Create(&sched); err != nil {
			log.Fatalf("Failed to insert schedule: %s", err)
		}
	}
	log.Info("Inserted upcoming schedules.", "count", 4)

	duration := time.Since(startTime)
	log.Info("Successfully seeded the database.", "duration", duration)
}
