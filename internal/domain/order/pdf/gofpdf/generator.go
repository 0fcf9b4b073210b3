package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/zarobax/ams-order-form/internal/domain/order"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate renders the warehouse pick list for a submitted order.
func (g *Generator) Generate(o order.Order, companyName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pick List", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Pick List")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", o.CustomerName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("01/02/2006")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(90, 7, "Item")
	pdf.Cell(30, 7, "Code")
	pdf.Cell(20, 7, "UOM")
	pdf.Cell(15, 7, "Qty")
	pdf.Cell(25, 7, "Price")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range o.Lines {
		pdf.Cell(90, 6, trim(l.Item.Name, 50))
		pdf.Cell(30, 6, l.Item.Code)
		pdf.Cell(20, 6, l.Item.UOM)
		pdf.Cell(15, 6, fmt.Sprintf("%d", l.Qty))
		pdf.Cell(25, 6, l.Item.Price.String())
		pdf.Ln(6)
	}

	if shipTo := strings.TrimSpace(o.ShipTo); shipTo != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, "Ship To / Notes:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range strings.Split(shipTo, "\n") {
			pdf.Cell(0, 5, line)
			pdf.Ln(5)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, companyName)
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("order pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
