package fir

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Геометрия страницы A4 в миллиметрах.
const (
	pageCenterX      = 105.0
	marginLeft       = 20.0
	marginRight      = 190.0
	pageTop          = 20.0
	bodyBreakY       = 275.0
	footerBreakY     = 270.0
	tableStartLimitY = 240.0
	descriptionWidth = 170.0
	descriptionTopY  = 154.0
	qrSize           = 25.0
	qrX              = marginRight - qrSize
	qrImageName      = "lawyer-directory-qr"
)

// PlacedLine - строка, выведенная на страницу, с координатой базовой линии.
type PlacedLine struct {
	Page int
	X    float64
	Y    float64
	Text string
}

type Document struct {
	Content  []byte
	Pages    int
	Severity Severity
	Lines    []PlacedLine
}

// Generator собирает PDF отчёта FIR. Безопасен для параллельного использования.
type Generator struct {
	directoryURL string
}

// NewGenerator создаёт генератор. directoryURL кодируется в QR-код в подвале, пустая строка отключает QR.
func NewGenerator(directoryURL string) *Generator {
	return &Generator{directoryURL: directoryURL}
}

func (g *Generator) Generate(r Report) (*Document, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(r.IncidentDate())
	pdf.SetCatalogSort(true)
	pdf.SetTitle("Cyber Crime FIR Report", true)
	pdf.SetCreator("CyberLawyerHub", true)

	w := &writer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	w.newPage()

	severity := SeverityOf(r.Amount)
	w.header(severity)
	w.victimDetails(r)
	w.incidentDetails(r)
	w.description(r.Description)
	w.resources()
	w.cyberCells()
	if err := w.footer(g.directoryURL); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render fir pdf: %w", err)
	}

	return &Document{
		Content:  buf.Bytes(),
		Pages:    w.page,
		Severity: severity,
		Lines:    w.lines,
	}, nil
}

// writer ведёт единый вертикальный курсор по всем секциям документа.
type writer struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	y     float64
	page  int
	lines []PlacedLine
}

func (w *writer) newPage() {
	w.pdf.AddPage()
	w.page++
	w.y = pageTop
}

// breakAfter начинает новую страницу, если курсор ушёл ниже limit.
func (w *writer) breakAfter(limit float64) {
	if w.y > limit {
		w.newPage()
	}
}

func (w *writer) font(style string, size float64) {
	w.pdf.SetFont("Helvetica", style, size)
}

func (w *writer) text(x, y float64, s string) {
	w.place(x, y, w.tr(s))
}

// place выводит уже перекодированную строку.
func (w *writer) place(x, y float64, s string) {
	w.pdf.Text(x, y, s)
	w.lines = append(w.lines, PlacedLine{Page: w.page, X: x, Y: y, Text: s})
}

func (w *writer) centered(y float64, s string) {
	s = w.tr(s)
	w.place(pageCenterX-w.pdf.GetStringWidth(s)/2, y, s)
}

func (w *writer) header(severity Severity) {
	w.font("B", 18)
	w.centered(20, "CYBER CRIME FIR REPORT")
	w.font("", 10)
	w.centered(27, "Generated via CyberLawyerHub")

	w.pdf.SetDrawColor(34, 211, 238)
	w.pdf.Line(marginLeft, 32, marginRight, 32)

	w.font("B", 12)
	w.text(marginLeft, 42, "Severity: "+severity.Label)
}

func (w *writer) victimDetails(r Report) {
	whatsapp := r.WhatsApp
	if whatsapp == "" {
		whatsapp = r.Phone
	}

	w.font("B", 14)
	w.text(marginLeft, 55, "VICTIM DETAILS")
	w.font("", 11)
	w.text(marginLeft, 63, "Name: "+orNA(r.VictimName))
	w.text(marginLeft, 70, "Phone: +91 "+r.Phone)
	w.text(marginLeft, 77, "WhatsApp: +91 "+whatsapp)
	w.text(marginLeft, 84, "State: "+orNA(r.State))
}

func (w *writer) incidentDetails(r Report) {
	w.font("B", 14)
	w.text(marginLeft, 97, "INCIDENT DETAILS")
	w.font("", 11)
	w.text(marginLeft, 105, "Type: "+r.IncidentType)
	w.text(marginLeft, 112, "Amount Lost: Rs. "+FormatINR(r.Amount))
	w.text(marginLeft, 119, "Date of Incident: "+r.Date)
	w.text(marginLeft, 126, "Transaction ID: "+orNA(r.TransactionID))
	w.text(marginLeft, 133, "Bank: "+orNA(r.BankName))
}

func (w *writer) description(desc string) {
	if strings.TrimSpace(desc) == "" {
		desc = "No description provided."
	}

	w.font("B", 14)
	w.text(marginLeft, 146, "INCIDENT DESCRIPTION")
	w.font("", 11)

	w.y = descriptionTopY
	for _, line := range w.pdf.SplitLines([]byte(w.tr(desc)), descriptionWidth) {
		w.breakAfter(bodyBreakY)
		w.place(marginLeft, w.y, string(line))
		w.y += 6
	}
	w.y += 10
}

func (w *writer) resources() {
	w.breakAfter(bodyBreakY)
	w.font("B", 14)
	w.text(marginLeft, w.y, "IMPORTANT CONTACTS & RESOURCES")
	w.font("", 11)
	w.y += 8

	for i, line := range Resources {
		if i > 0 {
			w.y += 7
		}
		w.breakAfter(bodyBreakY)
		w.text(marginLeft, w.y, line)
	}
	w.y += 12
}

func (w *writer) cyberCells() {
	if w.y >= tableStartLimitY {
		w.newPage()
	}

	w.font("B", 12)
	w.text(marginLeft, w.y, "STATE-WISE CYBER CRIME CELL CONTACTS")
	w.y += 8

	w.font("", 9)
	for _, cell := range CyberCells {
		w.breakAfter(bodyBreakY)
		w.text(marginLeft, w.y, cell.City+": "+cell.Phone)
		w.y += 6
	}
}

func (w *writer) footer(directoryURL string) error {
	w.y += 10
	w.breakAfter(footerBreakY)

	w.font("B", 12)
	w.text(marginLeft, w.y, "Need Expert Legal Help?")
	w.font("", 10)
	w.text(marginLeft, w.y+7, "Visit CyberLawyerHub to connect with verified cyber crime lawyers.")

	if directoryURL == "" {
		return nil
	}

	png, err := qrcode.Encode(directoryURL, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("encode directory qr: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "png"}
	w.pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(png))
	w.pdf.ImageOptions(qrImageName, qrX, w.y-6, qrSize, qrSize, false, opts, 0, directoryURL)

	w.font("", 9)
	w.text(marginLeft, w.y+14, "Find a lawyer: "+directoryURL)
	return nil
}
