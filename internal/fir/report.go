package fir

import (
	"strings"
	"time"

	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/validation"
)

// FileName - имя файла, под которым отдаётся отчёт.
const FileName = "CyberLawyerHub_FIR_Report.pdf"

// MaxDescriptionLength ограничивает описание инцидента, символов.
const MaxDescriptionLength = 5000

const dateLayout = "2006-01-02"

// Report - данные формы FIR. Не сохраняется, живёт только в рамках запроса.
type Report struct {
	IncidentType  string
	Amount        float64
	Date          string
	TransactionID string
	BankName      string
	Description   string
	VictimName    string
	Phone         string
	WhatsApp      string
	State         string
}

// Validate проверяет обязательные поля формы и значения из справочников.
func (r *Report) Validate() error {
	var problems []string

	if !isOneOf(IncidentTypes, r.IncidentType) {
		problems = append(problems, "incident_type must be one of: "+strings.Join(IncidentTypes, ", "))
	}
	if r.Amount < 0 {
		problems = append(problems, "amount must not be negative")
	}
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		problems = append(problems, "date must be in YYYY-MM-DD format")
	}
	if r.BankName != "" && !isOneOf(Banks, r.BankName) {
		problems = append(problems, "bank_name is not supported")
	}
	if !validation.IsPhone(r.Phone) {
		problems = append(problems, "phone must be exactly 10 digits")
	}
	if r.WhatsApp != "" && !validation.IsPhone(r.WhatsApp) {
		problems = append(problems, "whatsapp must be exactly 10 digits")
	}
	if r.State != "" {
		if _, ok := CyberCellPhone(r.State); !ok {
			problems = append(problems, "state is not supported")
		}
	}
	if len([]rune(r.Description)) > MaxDescriptionLength {
		problems = append(problems, "description is too long")
	}

	if len(problems) > 0 {
		return apperror.New(apperror.ErrCodeValidation, strings.Join(problems, "; "))
	}
	return nil
}

// IncidentDate - дата инцидента, используется как дата создания документа.
func (r *Report) IncidentDate() time.Time {
	t, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t
}

func isOneOf(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
