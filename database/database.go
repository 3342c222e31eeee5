package database

import (
	"edule/config"
	"edule/models"
	"log"
	"os"
)

// DbInstance struct holds one collection handle per entity type
type DbInstance struct {
	Courses     *Collection[models.Course]
	Users       *Collection[models.User]
	Enrollments *Collection[models.Enrollment]
	Messages    *Collection[models.Message]
	Blogs       *Collection[models.Blog]
}

// Database is the global record store instance
var Database DbInstance

// ConnectDb opens the collection documents under the configured data
// directory and creates the required ones when missing.
func ConnectDb() {
	dir := config.AppConfig.DataDir

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", dir, err)
	}

	Database = DbInstance{
		Courses:     OpenCollection[models.Course](dir, "courses", false),
		Users:       OpenCollection[models.User](dir, "users", false),
		Enrollments: OpenCollection[models.Enrollment](dir, "enrollments", false),
		// Messages and blogs are allowed to start empty.
		Messages: OpenCollection[models.Message](dir, "messages", true),
		Blogs:    OpenCollection[models.Blog](dir, "blogs", true),
	}

	if err := Database.Courses.Ensure(); err != nil {
		log.Fatalf("Failed to initialize courses collection: %v", err)
	}
	if err := Database.Users.Ensure(); err != nil {
		log.Fatalf("Failed to initialize users collection: %v", err)
	}
	if err := Database.Enrollments.Ensure(); err != nil {
		log.Fatalf("Failed to initialize enrollments collection: %v", err)
	}

	log.Printf("Record store ready at %s", dir)
}
