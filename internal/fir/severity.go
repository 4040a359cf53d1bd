package fir

type SeverityLevel string

const (
	SeverityHigh   SeverityLevel = "high"
	SeverityMedium SeverityLevel = "medium"
	SeverityLow    SeverityLevel = "low"
)

const (
	highSeverityThreshold   = 100000
	mediumSeverityThreshold = 10000
)

type Severity struct {
	Level SeverityLevel `json:"level"`
	Label string        `json:"label"`
}

// SeverityOf классифицирует инцидент по сумме ущерба в рупиях.
func SeverityOf(amount float64) Severity {
	switch {
	case amount >= highSeverityThreshold:
		return Severity{Level: SeverityHigh, Label: "High Severity"}
	case amount >= mediumSeverityThreshold:
		return Severity{Level: SeverityMedium, Label: "Medium Severity"}
	default:
		return Severity{Level: SeverityLow, Label: "Low Severity"}
	}
}
