package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/RidhoIT/dropship-next-store/models"
)

// Identitas toko yang tampil pada dokumen invoice.
const (
	BrandName    = "NEXT STORE"
	brandTagline = "Premium E-Commerce Platform"
	brandContact = "www.next-store.com  •  support@next-store.com  •  WhatsApp: +62 882-7912-6971"
)

// maxProductNameLen adalah panjang maksimum nama produk pada invoice;
// selebihnya dipotong dan diberi elipsis.
const maxProductNameLen = 45

var invoiceNotes = []string{
	"• Pesanan Anda akan segera kami proses",
	"• Estimasi pengiriman: 2-4 hari kerja",
	"• Simpan invoice ini sebagai bukti transaksi",
}

// Invoice adalah model tampilan dokumen invoice, murni diturunkan dari satu
// pasangan pesanan+produk. Subtotal dihitung ulang dari harga produk saat ini
// sehingga bisa berbeda dari Total (snapshot total_price pesanan); perbedaan
// itu dipertahankan, tidak direkonsiliasi.
type Invoice struct {
	Number        string
	OrderDate     string
	CustomerName  string
	PhoneNumber   string
	Address       string
	ProductName   string
	Category      string
	Quantity      int
	UnitPrice     int64
	Subtotal      int64
	Total         int64
	PaymentMethod string
	Notes         []string
	FileName      string
}

// BuildInvoice menyusun model tampilan invoice dari satu pesanan dan
// produknya. now menentukan tanggal pada nama file.
func BuildInvoice(order models.Order, product models.Product, now time.Time) Invoice {
	number := order.ID
	if len(number) > 8 {
		number = number[:8]
	}
	number = strings.ToUpper(number)

	name := product.Name
	if len([]rune(name)) > maxProductNameLen {
		name = string([]rune(name)[:maxProductNameLen]) + "..."
	}

	subtotal := product.Price * int64(order.Quantity)
	if subtotal != order.TotalPrice {
		log.Printf("Invoice %s: subtotal terhitung %d berbeda dari total tersimpan %d",
			number, subtotal, order.TotalPrice)
	}

	return Invoice{
		Number:        number,
		OrderDate:     FormatLongDateID(order.CreatedAt),
		CustomerName:  order.CustomerName,
		PhoneNumber:   order.PhoneNumber,
		Address:       order.Address,
		ProductName:   name,
		Category:      strings.ToUpper(product.Category),
		Quantity:      order.Quantity,
		UnitPrice:     product.Price,
		Subtotal:      subtotal,
		Total:         order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		Notes:         invoiceNotes,
		FileName:      fmt.Sprintf("INVOICE-%s-%s.pdf", number, now.Format("2006-01-02")),
	}
}

// RenderText adalah varian sederhana invoice berbentuk teks polos, dipakai
// sebagai fallback bila PDF tidak dibutuhkan.
func RenderText(inv Invoice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", BrandName)
	fmt.Fprintf(&b, "INVOICE #%s\n", inv.Number)
	fmt.Fprintf(&b, "Tanggal Order: %s\n\n", inv.OrderDate)

	fmt.Fprintf(&b, "Pelanggan : %s\n", inv.CustomerName)
	fmt.Fprintf(&b, "Telepon   : %s\n", inv.PhoneNumber)
	fmt.Fprintf(&b, "Alamat    : %s\n\n", inv.Address)

	fmt.Fprintf(&b, "Produk    : %s (%s)\n", inv.ProductName, inv.Category)
	fmt.Fprintf(&b, "Kuantitas : %d\n", inv.Quantity)
	fmt.Fprintf(&b, "Harga     : %s\n", FormatRupiah(inv.UnitPrice))
	fmt.Fprintf(&b, "Subtotal  : %s\n", FormatRupiah(inv.Subtotal))
	fmt.Fprintf(&b, "TOTAL BAYAR: %s\n", FormatRupiah(inv.Total))
	if inv.PaymentMethod != "" {
		fmt.Fprintf(&b, "Metode Pembayaran: %s\n", inv.PaymentMethod)
	}

	b.WriteString("\n")
	for _, note := range inv.Notes {
		b.WriteString(note + "\n")
	}
	b.WriteString("\nTerima Kasih Atas Kepercayaan Anda!\n")
	b.WriteString(brandContact + "\n")

	return b.String()
}
