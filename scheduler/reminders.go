package scheduler

import (
	"log"
	"time"

	"taskdeck/taskdeck/broker"
	"taskdeck/taskdeck/database"
	"taskdeck/taskdeck/models"

	"github.com/robfig/cron/v3"
)

// ReminderScheduler periodically scans for tasks approaching or past their
// due date and publishes reminder events for them.
type ReminderScheduler struct {
	db       *database.Database
	producer *broker.Producer
	spec     string
	cron     *cron.Cron
}

func NewReminderScheduler(db *database.Database, producer *broker.Producer, spec string) *ReminderScheduler {
	return &ReminderScheduler{
		db:       db,
		producer: producer,
		spec:     spec,
		cron:     cron.New(),
	}
}

func (s *ReminderScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.scan); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Reminder scheduler started with schedule %q", s.spec)
	return nil
}

func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Reminder scheduler stopped")
}

// scan publishes one due_soon event per task due within the next 24 hours
// and one overdue event per task already past due. Events repeat on every
// scan until the task is completed; consumers are expected to de-duplicate.
func (s *ReminderScheduler) scan() {
	now := time.Now().UTC()
	soon := now.Add(24 * time.Hour)

	var dueSoon []models.Task
	err := s.db.DB.
		Where("completed = ? AND due_date > ? AND due_date <= ?", false, now, soon).
		Find(&dueSoon).Error
	if err != nil {
		log.Printf("Reminder scan failed for due tasks: %v", err)
		return
	}
	for _, task := range dueSoon {
		s.producer.Publish(broker.TaskDueSoon, task.UserID, map[string]interface{}{
			"id":      task.ID.String(),
			"title":   task.Title,
			"dueDate": task.DueDate,
		})
	}

	var overdue []models.Task
	err = s.db.DB.
		Where("completed = ? AND due_date <= ?", false, now).
		Find(&overdue).Error
	if err != nil {
		log.Printf("Reminder scan failed for overdue tasks: %v", err)
		return
	}
	for _, task := range overdue {
		s.producer.Publish(broker.TaskOverdue, task.UserID, map[string]interface{}{
			"id":      task.ID.String(),
			"title":   task.Title,
			"dueDate": task.DueDate,
		})
	}

	if len(dueSoon) > 0 || len(overdue) > 0 {
		log.Printf("Reminder scan published %d due soon and %d overdue events", len(dueSoon), len(overdue))
	}
}
