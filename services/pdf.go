package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Skema warna dokumen invoice.
var (
	colorPrimary   = [3]int{41, 98, 255}
	colorSecondary = [3]int{45, 55, 72}
	colorAccent    = [3]int{16, 185, 129}
	colorLightBg   = [3]int{249, 250, 251}
	colorBorder    = [3]int{229, 231, 235}
	colorTextDark  = [3]int{17, 24, 39}
	colorTextLight = [3]int{107, 114, 128}
)

// RenderPDF menggambar invoice sebagai dokumen PDF satu halaman A4 dengan tata
// letak tetap: pita header, blok tanggal, kartu pelanggan, kartu produk,
// ringkasan harga, catatan, footer, dan watermark diagonal samar. Fungsi ini
// murni dari model tampilan ke byte PDF, tanpa I/O lain.
func RenderPDF(inv Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	margin := 20.0
	contentWidth := pageWidth - margin*2

	setFill := func(c [3]int) { pdf.SetFillColor(c[0], c[1], c[2]) }
	setText := func(c [3]int) { pdf.SetTextColor(c[0], c[1], c[2]) }
	setDraw := func(c [3]int) { pdf.SetDrawColor(c[0], c[1], c[2]) }
	textRight := func(x, y float64, s string) {
		pdf.Text(x-pdf.GetStringWidth(s), y, s)
	}
	textCenter := func(x, y float64, s string) {
		pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
	}

	// Pita header
	setFill(colorPrimary)
	pdf.Rect(0, 0, pageWidth, 60, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.Text(margin, 25, BrandName)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin, 35, brandTagline)

	// Badge nomor invoice di kanan
	pdf.SetFillColor(255, 255, 255)
	pdf.RoundedRect(pageWidth-margin-65, 15, 65, 30, 3, "1234", "F")

	setText(colorPrimary)
	pdf.SetFont("Helvetica", "B", 10)
	textCenter(pageWidth-margin-32.5, 25, "INVOICE")
	pdf.SetFont("Helvetica", "B", 14)
	textCenter(pageWidth-margin-32.5, 37, "#"+inv.Number)

	currentY := 75.0

	// Blok tanggal
	setFill(colorLightBg)
	pdf.RoundedRect(margin, currentY, contentWidth, 20, 2, "1234", "F")

	setText(colorTextLight)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(margin+8, currentY+10, "Tanggal Order:")
	setText(colorTextDark)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(margin+40, currentY+10, tr(inv.OrderDate))

	currentY += 35

	// Kartu informasi pelanggan
	pdf.SetFillColor(255, 255, 255)
	setDraw(colorBorder)
	pdf.SetLineWidth(0.5)
	pdf.RoundedRect(margin, currentY, contentWidth, 55, 3, "1234", "FD")

	setFill(colorLightBg)
	pdf.RoundedRect(margin, currentY, contentWidth, 12, 3, "12", "F")

	setText(colorSecondary)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(margin+8, currentY+8, "INFORMASI PELANGGAN")

	currentY += 22

	setText(colorTextDark)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(margin+8, currentY, tr(inv.CustomerName))

	currentY += 10

	setText(colorTextLight)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin+8, currentY, "Telp")
	setText(colorTextDark)
	pdf.Text(margin+16, currentY, tr(inv.PhoneNumber))

	currentY += 8

	setText(colorTextLight)
	pdf.Text(margin+8, currentY, "Alamat")
	setText(colorTextDark)

	// Alamat dengan word wrap
	addressLines := pdf.SplitLines([]byte(tr(inv.Address)), contentWidth-24)
	for i, line := range addressLines {
		pdf.Text(margin+22, currentY+float64(i)*5, string(line))
	}
	addressHeight := float64(len(addressLines)) * 5
	if addressHeight < 8 {
		addressHeight = 8
	}
	currentY += addressHeight + 18

	// Kartu detail produk
	pdf.SetFillColor(255, 255, 255)
	setDraw(colorBorder)
	pdf.RoundedRect(margin, currentY, contentWidth, 75, 3, "1234", "FD")

	setFill(colorPrimary)
	pdf.RoundedRect(margin, currentY, contentWidth, 12, 3, "12", "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(margin+8, currentY+8, "DETAIL PRODUK")

	currentY += 24

	setText(colorPrimary)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.Text(margin+8, currentY, tr(inv.ProductName))

	currentY += 10

	// Badge kategori selebar teksnya
	pdf.SetFont("Helvetica", "B", 8)
	categoryWidth := pdf.GetStringWidth(tr(inv.Category)) + 10
	setFill(colorLightBg)
	pdf.RoundedRect(margin+8, currentY-4, categoryWidth, 8, 2, "1234", "F")
	setText(colorTextLight)
	pdf.Text(margin+13, currentY+1, tr(inv.Category))

	currentY += 16

	// Grid kuantitas / harga satuan
	gridY := currentY
	colWidth := contentWidth / 2

	setText(colorTextLight)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(margin+8, gridY, "Kuantitas")

	qty := fmt.Sprintf("%d", inv.Quantity)
	setText(colorTextDark)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(margin+8, gridY+10, qty)
	qtyWidth := pdf.GetStringWidth(qty)

	setText(colorTextLight)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(margin+8+qtyWidth+2, gridY+10, "Unit")

	pdf.Text(margin+8+colWidth, gridY, "Harga Satuan")
	setText(colorTextDark)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(margin+8+colWidth, gridY+10, FormatRupiah(inv.UnitPrice))

	currentY += 35

	// Ringkasan harga
	setFill(colorLightBg)
	pdf.RoundedRect(margin, currentY, contentWidth, 65, 3, "1234", "F")

	summaryX := margin + 8
	currentY += 15

	setText(colorTextLight)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(summaryX, currentY, "Subtotal")
	setText(colorTextDark)
	pdf.SetFont("Helvetica", "B", 10)
	textRight(pageWidth-margin-8, currentY, FormatRupiah(inv.Subtotal))

	currentY += 8
	setDraw(colorBorder)
	pdf.SetLineWidth(0.3)
	pdf.Line(summaryX, currentY, pageWidth-margin-8, currentY)

	// Total disorot, menampilkan total_price tersimpan
	currentY += 12
	setFill(colorPrimary)
	pdf.RoundedRect(margin, currentY-6, contentWidth, 20, 2, "1234", "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(summaryX, currentY+6, "TOTAL BAYAR")
	pdf.SetFont("Helvetica", "B", 18)
	textRight(pageWidth-margin-8, currentY+6, FormatRupiah(inv.Total))

	currentY += 30

	if inv.PaymentMethod != "" {
		setText(colorAccent)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Text(summaryX, currentY, tr("Metode Pembayaran: "+inv.PaymentMethod))
		currentY += 6
	}

	currentY += 15

	// Catatan penting
	pdf.SetFillColor(255, 255, 255)
	setDraw(colorBorder)
	pdf.RoundedRect(margin, currentY, contentWidth, 45, 3, "1234", "FD")

	setFill(colorLightBg)
	pdf.RoundedRect(margin, currentY, contentWidth, 10, 3, "12", "F")

	setText(colorSecondary)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(margin+8, currentY+7, "Informasi Penting")

	currentY += 18

	setText(colorTextLight)
	pdf.SetFont("Helvetica", "", 9)
	for i, note := range inv.Notes {
		pdf.Text(margin+8, currentY+float64(i)*7, tr(note))
	}

	// Footer
	footerY := pageHeight - 30

	setFill(colorSecondary)
	pdf.Rect(0, footerY, pageWidth, 30, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	textCenter(pageWidth/2, footerY+10, "Terima Kasih Atas Kepercayaan Anda!")
	pdf.SetFont("Helvetica", "", 8)
	textCenter(pageWidth/2, footerY+19, tr(brandContact))

	// Watermark diagonal samar
	pdf.SetTextColor(245, 245, 245)
	pdf.SetFont("Helvetica", "B", 60)
	pdf.SetAlpha(0.03, "Normal")
	pdf.TransformBegin()
	pdf.TransformRotate(45, pageWidth/2, pageHeight/2)
	textCenter(pageWidth/2, pageHeight/2, BrandName)
	pdf.TransformEnd()
	pdf.SetAlpha(1, "Normal")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
