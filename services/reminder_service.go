// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"time"

	"rejuvenate-backend/config"
	"rejuvenate-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService texts customers about appointments inside the next 24
// hours. One pass a day; every attempt lands in reminder_logs.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

// StartScheduler runs the daily pass at 9 AM. Without Twilio credentials the
// scheduler stays off; reminders are best-effort, never required for boot.
func (s *ReminderService) StartScheduler() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" || os.Getenv("TWILIO_AUTH_TOKEN") == "" {
		config.Logger().Warn("Twilio credentials missing, reminder scheduler disabled")
		return
	}

	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		config.Logger().Errorw("failed to schedule reminders", "error", err)
		return
	}

	c.Start()
	config.Logger().Info("Reminder scheduler started")
}

// SendDailyReminders texts every customer with an appointment in the next
// 24 hours and logs each attempt.
func (s *ReminderService) SendDailyReminders() {
	config.Logger().Info("Starting daily reminder processing...")

	now := time.Now()
	var appointments []models.Appointment
	if err := s.db.
		Where("scheduled_time > ? AND scheduled_time <= ?", now, now.Add(24*time.Hour)).
		Order("scheduled_time").
		Find(&appointments).Error; err != nil {
		config.Logger().Errorw("failed to fetch upcoming appointments", "error", err)
		return
	}

	for _, appointment := range appointments {
		s.remind(appointment)
	}

	config.Logger().Info("Daily reminder processing completed")
}

func (s *ReminderService) remind(appointment models.Appointment) {
	var customer models.Customer
	if err := s.db.First(&customer, appointment.CustomerID).Error; err != nil {
		config.Logger().Warnw("skipping reminder, customer missing",
			"appointment_id", appointment.ID,
			"customer_id", appointment.CustomerID,
			"error", err,
		)
		return
	}

	message := fmt.Sprintf("Hi %s, a reminder for your appointment at Rejuvenate Spa on %s.",
		customer.Name, appointment.ScheduledTime.Format("Mon Jan 2 at 15:04"))

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	status := "sent"
	errorMsg := ""

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		config.Logger().Errorw("failed to send reminder", "phone", customer.Phone, "error", err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		config.Logger().Infow("reminder sent", "phone", customer.Phone, "sid", *resp.Sid)
	}

	reminderLog := models.ReminderLog{
		AppointmentID: appointment.ID,
		CustomerID:    customer.ID,
		Phone:         customer.Phone,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		config.Logger().Errorw("failed to log reminder", "appointment_id", appointment.ID, "error", err)
	}
}
