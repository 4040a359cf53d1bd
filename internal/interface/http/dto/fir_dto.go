package dto

import "github.com/cyberlawyerhub/backend/internal/fir"

// FIRReportRequest - данные формы. Amount указателем, чтобы отличить 0 от пропуска.
type FIRReportRequest struct {
	IncidentType  string   `json:"incident_type"`
	Amount        *float64 `json:"amount" binding:"required"`
	Date          string   `json:"date"`
	TransactionID string   `json:"transaction_id"`
	BankName      string   `json:"bank_name"`
	Description   string   `json:"description"`
	VictimName    string   `json:"victim_name"`
	Phone         string   `json:"phone"`
	WhatsApp      string   `json:"whatsapp"`
	State         string   `json:"state"`
}

func (r FIRReportRequest) ToReport() fir.Report {
	var amount float64
	if r.Amount != nil {
		amount = *r.Amount
	}
	return fir.Report{
		IncidentType:  r.IncidentType,
		Amount:        amount,
		Date:          r.Date,
		TransactionID: r.TransactionID,
		BankName:      r.BankName,
		Description:   r.Description,
		VictimName:    r.VictimName,
		Phone:         r.Phone,
		WhatsApp:      r.WhatsApp,
		State:         r.State,
	}
}

type CyberCellDTO struct {
	City  string `json:"city"`
	Phone string `json:"phone"`
}

type FIROptionsResponse struct {
	IncidentTypes []string       `json:"incident_types"`
	Banks         []string       `json:"banks"`
	States        []string       `json:"states"`
	CyberCells    []CyberCellDTO `json:"cyber_cells"`
	Resources     []string       `json:"resources"`
}

func NewFIROptionsResponse() FIROptionsResponse {
	cells := make([]CyberCellDTO, 0, len(fir.CyberCells))
	for _, c := range fir.CyberCells {
		cells = append(cells, CyberCellDTO{City: c.City, Phone: c.Phone})
	}
	return FIROptionsResponse{
		IncidentTypes: fir.IncidentTypes,
		Banks:         fir.Banks,
		States:        fir.States(),
		CyberCells:    cells,
		Resources:     fir.Resources,
	}
}
