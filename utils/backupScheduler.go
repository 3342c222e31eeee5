package utils

import (
	"edule/config"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// logBackup logs backup events with timestamp
func logBackup(message string) {
	log.Printf("[BACKUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeBackupScheduler sets up the nightly data backup job
func InitializeBackupScheduler() *cron.Cron {
	logBackup("Initializing data backup scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.BackupSpec, RunBackup); err != nil {
		logBackup("Invalid backup schedule " + config.AppConfig.BackupSpec + ": " + err.Error())
		return c
	}

	c.Start()
	logBackup("Backup scheduler started with spec " + config.AppConfig.BackupSpec)
	return c
}

// RunBackup copies every collection document into a fresh snapshot directory.
func RunBackup() {
	src := config.AppConfig.DataDir
	stamp := time.Now().Format("20060102-150405") + "-" + uuid.NewString()[:8]
	dest := filepath.Join(config.AppConfig.BackupDir, stamp)

	if err := os.MkdirAll(dest, 0755); err != nil {
		logBackup("Error creating backup directory: " + err.Error())
		return
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		logBackup("Error reading data directory: " + err.Error())
		return
	}

	copied := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := copyFile(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
			logBackup("Error copying " + entry.Name() + ": " + err.Error())
			continue
		}
		copied++
	}

	logBackup(fmt.Sprintf("Backed up %d collection files to %s", copied, dest))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
