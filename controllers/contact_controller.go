package controllers

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/config"
	"github.com/Napier40/Akademia-Studenta/models"
	"github.com/Napier40/Akademia-Studenta/utils"
)

// ContactController handles the public contact form.
type ContactController struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewContactController(db *gorm.DB, cfg *config.Config) *ContactController {
	return &ContactController{db: db, cfg: cfg}
}

type inquiryPayload struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Subject             string `json:"subject"`
	Message             string `json:"message"`
	SubscribeNewsletter bool   `json:"subscribe_newsletter"`
}

func validateInquiry(req *inquiryPayload) []string {
	var problems []string
	name := strings.TrimSpace(req.Name)
	if name == "" {
		problems = append(problems, "name is required")
	} else if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		problems = append(problems, "name must be between 2 and 100 characters")
	}
	if strings.TrimSpace(req.Email) == "" {
		problems = append(problems, "email is required")
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		problems = append(problems, "email is not a valid email address")
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		problems = append(problems, "subject is required")
	} else if n := utf8.RuneCountInString(subject); n < 5 || n > 200 {
		problems = append(problems, "subject must be between 5 and 200 characters")
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		problems = append(problems, "message is required")
	} else if n := utf8.RuneCountInString(message); n < 20 || n > 2000 {
		problems = append(problems, "message must be between 20 and 2000 characters")
	}
	if utf8.RuneCountInString(req.Phone) > 20 {
		problems = append(problems, "phone must be at most 20 characters")
	}
	return problems
}

// POST /contact
func (cc *ContactController) Submit(c *gin.Context) {
	var req inquiryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	if problems := validateInquiry(&req); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": strings.Join(problems, "; ")})
		return
	}

	inquiry := models.ContactInquiry{
		Name:                strings.TrimSpace(req.Name),
		Email:               strings.TrimSpace(req.Email),
		Phone:               strings.TrimSpace(req.Phone),
		Subject:             strings.TrimSpace(req.Subject),
		Message:             strings.TrimSpace(req.Message),
		SubscribeNewsletter: req.SubscribeNewsletter,
		Status:              models.InquiryStatusNew,
		IPAddress:           c.ClientIP(),
	}
	if err := cc.db.Create(&inquiry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create inquiry"})
		return
	}

	if cc.cfg != nil && cc.cfg.MailConfigured() {
		go cc.notifyAdmin(&inquiry)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"result": gin.H{
			"id":     inquiry.ID,
			"status": inquiry.Status,
		},
	})
}

func (cc *ContactController) notifyAdmin(inquiry *models.ContactInquiry) {
	body := fmt.Sprintf("New contact inquiry #%d\n\nFrom: %s <%s>\nPhone: %s\nSubject: %s\n\n%s",
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Subject, inquiry.Message)
	err := utils.SendEmail(cc.cfg.AdminEmail, "New contact inquiry: "+inquiry.Subject, body,
		cc.cfg.SMTPHost, cc.cfg.SMTPPort, cc.cfg.SMTPUser, cc.cfg.SMTPPass)
	if err != nil {
		utils.LogError(err, fmt.Sprintf("notify admin about inquiry %d", inquiry.ID))
	}
}
