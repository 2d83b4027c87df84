package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RAAHUL-tech/portfolio/internal/config"
)

// Mailer delivers contact form submissions.
type Mailer interface {
	Send(name, email, message string) error
}

var errSMTPNotConfigured = errors.New("SMTP credentials not configured")

type smtpMailer struct {
	cfg config.SMTP
}

func (m smtpMailer) Send(name, email, message string) error {
	if !m.cfg.Configured() {
		return errSMTPNotConfigured
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.User, []string{m.cfg.To}, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

type contactForm struct {
	FullName string `form:"fullName" binding:"required,max=200"`
	Email    string `form:"email" binding:"required,email"`
	Message  string `form:"message" binding:"required,max=5000"`
}

// Handle contact form submission with HTMX
func (h *siteHandlers) contact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "contact-error", gin.H{
			"error": "Please provide your name, a valid email and a message.",
		})
		return
	}

	// Header injection guard: the name lands in the Subject line.
	name := strings.NewReplacer("\r", " ", "\n", " ").Replace(form.FullName)

	if err := h.mailer.Send(name, form.Email, form.Message); err != nil {
		log.Printf("level=error event=contact_send_failed from=%s err=%q", hashIP(c.ClientIP()), err)
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": ContactFailure,
		})
		return
	}

	log.Printf("level=info event=contact_sent from=%s", hashIP(c.ClientIP()))
	c.HTML(http.StatusOK, "contact-success", gin.H{
		"success": ContactSuccess,
	})
}
