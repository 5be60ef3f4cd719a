package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/camiloreyes/servimarket-app/db"
	"github.com/camiloreyes/servimarket-app/models"
	"github.com/camiloreyes/servimarket-app/redis"
	"github.com/camiloreyes/servimarket-app/utils"
)

// StartCronJobs wires the background schedules and starts the runner
func StartCronJobs() {
	c := cron.New()

	// Booking reminders, checked every minute
	_, err := c.AddFunc("* * * * *", func() {
		sendBookingReminders()
	})
	if err != nil {
		log.Println("Error scheduling booking reminders:", err)
	}

	c.Start()
	log.Println("Cron jobs started")
}

// sendBookingReminders mails customers whose confirmed booking starts in
// roughly one hour. A redis flag per booking keeps the minutely sweep
// from mailing twice.
func sendBookingReminders() {
	now := utils.NowBogota()
	windowStart := now.Add(55 * time.Minute)
	windowEnd := now.Add(65 * time.Minute)

	var bookings []models.Booking
	err := db.DB.Preload("User").
		Where("status = ? AND start_time BETWEEN ? AND ?",
			models.BookingStatusAccepted, windowStart, windowEnd).
		Find(&bookings).Error
	if err != nil {
		log.Println("Error fetching bookings for reminders:", err)
		return
	}

	for _, booking := range bookings {
		key := fmt.Sprintf("reminder:%d", booking.ID)
		sent, err := redis.Client.SetNX(redis.Ctx, key, "1", 2*time.Hour).Result()
		if err != nil {
			log.Println("Error checking reminder flag:", err)
			continue
		}
		if !sent {
			continue
		}

		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>This is a reminder that your booking starts in about an hour.</p>
			<ul>
				<li><strong>Booking:</strong> %s</li>
				<li><strong>Start:</strong> %s</li>
				<li><strong>Location:</strong> %s</li>
			</ul>
			<p>Best regards,</p>
			<p>The Servimarket Team</p>`,
			booking.User.Name, booking.ResourceTitle,
			booking.StartTime.Format("2006-01-02 15:04"), booking.Location)

		if err := utils.SendEmail(booking.User.Email, "Upcoming Booking Reminder", body); err != nil {
			log.Printf("Failed to send reminder for %s: %v", booking.OrderNumber, err)
		}
	}
}
