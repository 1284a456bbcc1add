// student-import copies a JSON student source into a SQLite database that
// the API can serve with storage_driver: sqlite.
//
// Every record is validated first. Invalid records are logged with their
// violations and skipped; the valid ones replace whatever the database
// held before, in a single transaction.
//
//	go run ./cmd/student-import --src=data/students.json --db=storage/students.db
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/aanand-mishra/student-records-api/internal/storage/jsonfile"
	"github.com/aanand-mishra/student-records-api/internal/storage/sqlite"
	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/aanand-mishra/student-records-api/internal/validation"
)

func main() {
	src := flag.String("src", "", "Path to the JSON student source")
	dbPath := flag.String("db", "", "Path to the SQLite database to write")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *src == "" || *dbPath == "" {
		log.Error("both --src and --db are required")
		os.Exit(2)
	}

	students, err := jsonfile.New(*src).GetStudents()
	if err != nil {
		log.Error("failed to read source", slog.String("error", err.Error()))
		os.Exit(1)
	}

	valid := selectValid(log, validation.New(), students)

	db, err := sqlite.New(*dbPath)
	if err != nil {
		log.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.ReplaceStudents(valid); err != nil {
		log.Error("failed to import students", slog.String("error", err.Error()))
		db.Close()
		os.Exit(1)
	}

	log.Info("import finished",
		slog.Int("read", len(students)),
		slog.Int("imported", len(valid)),
		slog.Int("skipped", len(students)-len(valid)))
}

// selectValid returns the students that pass validation, logging the rest.
func selectValid(log *slog.Logger, v *validation.Validator, students []types.Student) []types.Student {
	valid := make([]types.Student, 0, len(students))
	for i, st := range students {
		err := v.Validate(st)
		if err == nil {
			valid = append(valid, st)
			continue
		}

		var verr *validation.Error
		if errors.As(err, &verr) {
			log.Warn("skipping invalid student",
				slog.Int("index", i),
				slog.Int("student_id", st.StudentID),
				slog.Any("violations", verr.Violations))
			continue
		}
		log.Warn("skipping student", slog.Int("index", i), slog.String("error", err.Error()))
	}
	return valid
}
