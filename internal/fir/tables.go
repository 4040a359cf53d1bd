package fir

var IncidentTypes = []string{
	"UPI Fraud",
	"Phishing",
	"Banking Fraud",
	"Investment Scam",
	"Aadhaar Fraud",
}

var Banks = []string{
	"State Bank of India",
	"HDFC Bank",
	"ICICI Bank",
	"Axis Bank",
	"Kotak Mahindra Bank",
	"Punjab National Bank",
	"Bank of Baroda",
	"Canara Bank",
	"Union Bank of India",
	"IndusInd Bank",
	"Other",
}

type CyberCell struct {
	City  string
	Phone string
}

// CyberCells - таблица печатается в этом порядке.
var CyberCells = []CyberCell{
	{City: "Delhi", Phone: "011-26885656"},
	{City: "Mumbai", Phone: "022-22641261"},
	{City: "Bangalore", Phone: "080-22942264"},
	{City: "Chennai", Phone: "044-28512527"},
	{City: "Hyderabad", Phone: "040-27852040"},
	{City: "Pune", Phone: "020-26122880"},
	{City: "Kolkata", Phone: "033-22143024"},
	{City: "Ahmedabad", Phone: "079-25252626"},
	{City: "Jaipur", Phone: "0141-2741092"},
	{City: "Lucknow", Phone: "0522-2287253"},
}

var Resources = []string{
	"1. National Cyber Crime Helpline: 1930",
	"2. Online Complaint: https://cybercrime.gov.in",
	"3. RBI Complaint (Banking/UPI): https://cms.rbi.org.in",
	"4. Your nearest Cyber Crime Cell (see contacts below)",
}

func CyberCellPhone(state string) (string, bool) {
	for _, c := range CyberCells {
		if c.City == state {
			return c.Phone, true
		}
	}
	return "", false
}

// States - ключи таблицы киберполиции для выбора в форме.
func States() []string {
	out := make([]string, 0, len(CyberCells))
	for _, c := range CyberCells {
		out = append(out, c.City)
	}
	return out
}
