package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"sync"
)

type Email struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(email Email) error
}

// SMTPSender отправляет письма через обычный SMTP с PLAIN-аутентификацией.
type SMTPSender struct {
	addr     string
	username string
	password string
	host     string
	from     string
}

// NewSMTPSender создает SMTP-отправитель.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		addr:     fmt.Sprintf("%s:%d", host, port),
		username: username,
		password: password,
		host:     host,
		from:     from,
	}
}

func (s *SMTPSender) Send(email Email) error {
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.from, email.To, email.Subject, email.Body))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(s.addr, auth, s.from, []string{email.To}, msg)
}

// LogSender пишет письмо в лог вместо отправки. Используется, когда
// почта выключена конфигурацией.
type LogSender struct{}

func (LogSender) Send(email Email) error {
	slog.Info("mail delivery skipped",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
	)
	return nil
}

// Dispatcher — очередь отправки почты. Enqueue никогда не блокирует
// запрос: при переполненной очереди письмо отбрасывается с warn-логом,
// а ошибка отправки логируется и не влияет на HTTP-ответ.
type Dispatcher struct {
	sender Sender
	queue  chan Email

	closeOnce sync.Once
	done      chan struct{}
}

// NewDispatcher создает диспетчер и запускает фонового обработчика.
func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}

	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Email, queueSize),
		done:   make(chan struct{}),
	}

	go d.run()
	return d
}

// Enqueue ставит письмо в очередь отправки без ожидания.
func (d *Dispatcher) Enqueue(email Email) {
	select {
	case d.queue <- email:
	default:
		slog.Warn("mail queue full, dropping email",
			slog.String("to", email.To),
			slog.String("subject", email.Subject),
		)
	}
}

// Close останавливает обработчика после опустошения очереди.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
		<-d.done
	})
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for email := range d.queue {
		if err := d.sender.Send(email); err != nil {
			slog.Error("mail delivery failed",
				slog.String("to", email.To),
				slog.String("subject", email.Subject),
				slog.String("error", err.Error()),
			)
		}
	}
}
