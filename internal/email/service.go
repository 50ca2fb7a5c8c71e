package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"topdog/internal/logger"
	"topdog/internal/metrics"
)

const (
	queueKey  = "emails"
	failedKey = "emails:failed"
)

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Send(ctx context.Context, emailType, to, name, subject, body string) error {
	job := EmailJob{
		Type:    emailType,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		return err
	}

	logger.Infof("Email queued: %s to %s", subject, to)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.processNext(ctx)
			metrics.EmailQueueLength.Set(float64(s.QueueLength(ctx)))
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < 3 {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Email to %s failed after 3 attempts", job.To)
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Infof("Email sent successfully to %s", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, data)
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendWelcome(ctx context.Context, to, name, plan string) error {
	subject := "Welcome to TopDog Gym!"
	body := fmt.Sprintf(`Hi %s,

Your %s membership is active. Browse the class schedule and book your
first session from the member dashboard.

See you at the gym!

- TopDog Gym Team`, name, plan)

	return s.Send(ctx, "welcome", to, name, subject, body)
}

func (s *Service) SendBookingConfirmation(ctx context.Context, to, name, className string, classDate time.Time, startTime string) error {
	subject := "Booking Confirmed - " + className
	body := fmt.Sprintf(`Hi %s,

Your spot is confirmed!

Class: %s
Date: %s
Time: %s

See you at the gym!

- TopDog Gym Team`, name, className, classDate.Format("Jan 2, 2006"), startTime)

	return s.Send(ctx, "booking_confirmation", to, name, subject, body)
}

func (s *Service) SendWaitlistNotice(ctx context.Context, to, name, className string, classDate time.Time, position int) error {
	subject := "Waitlisted - " + className
	body := fmt.Sprintf(`Hi %s,

The class is currently full, so you are on the waitlist.

Class: %s
Date: %s
Waitlist position: %d

We will let you know if a spot opens up.

- TopDog Gym Team`, name, className, classDate.Format("Jan 2, 2006"), position)

	return s.Send(ctx, "waitlist_notice", to, name, subject, body)
}

func (s *Service) SendBookingCancellation(ctx context.Context, to, name, className string, classDate time.Time) error {
	subject := "Booking Cancelled - " + className
	body := fmt.Sprintf(`Hi %s,

Your booking has been cancelled:

Class: %s
Date: %s

- TopDog Gym Team`, name, className, classDate.Format("Jan 2, 2006"))

	return s.Send(ctx, "booking_cancellation", to, name, subject, body)
}

func (s *Service) SendPaymentReceipt(ctx context.Context, to, name, description string, amountCents int64, invoice string) error {
	subject := "Payment Receipt - " + invoice
	body := fmt.Sprintf(`Hi %s,

We received your payment.

Description: %s
Amount: $%.2f
Invoice: %s

- TopDog Gym Team`, name, description, float64(amountCents)/100, invoice)

	return s.Send(ctx, "payment_receipt", to, name, subject, body)
}
