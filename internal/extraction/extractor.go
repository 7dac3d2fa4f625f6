// Package extraction parses the text layer of an uploaded invoice
// document into header fields and line items. OCR itself happens
// upstream; this package only works on the resulting text, so it stays
// deterministic and testable.
package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

type Header struct {
	InvoiceNo    string `json:"invoice_no,omitempty"`
	CodeNo       string `json:"code_no,omitempty"`
	Date         string `json:"date,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Reference    string `json:"reference,omitempty"`

	NetValue   *decimal.Decimal `json:"net_value,omitempty"`
	VAT        *decimal.Decimal `json:"vat,omitempty"`
	GrossValue *decimal.Decimal `json:"gross_value,omitempty"`
}

type LineItem struct {
	ItemCode    string           `json:"item_code,omitempty"`
	Description string           `json:"description"`
	Qty         *decimal.Decimal `json:"qty,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
}

type Result struct {
	Header  Header     `json:"header"`
	Items   []LineItem `json:"items"`
	RawText string     `json:"raw_text"`
}

var (
	reInvoiceNo = regexp.MustCompile(`(?im)(?:PI|P\.?I\.?|Invoice|Invoice\s*(?:Number|No)|PI\s*No)[\s:\-]*([A-Z0-9\-/]+)`)
	reCodeNo    = regexp.MustCompile(`(?im)(?:Code\s*(?:No|Number)|Code\s*#)[\s:\-]*([A-Z0-9\-/]+)`)
	reDate      = regexp.MustCompile(`(?im)(?:Date|Invoice\s*Date)[\s:\-]*([0-3]?\d[\s/\-][01]?\d[\s/\-]\d{2,4})`)
	reCustomer  = regexp.MustCompile(`(?im)(?:Customer\s*Name|Customer|Bill\s*To|Buyer|TO)[\s:\-]*([A-Z][^\n\r:]{3,150})`)
	reAddress   = regexp.MustCompile(`(?im)(?:Address|Addr\.|Add)[\s:\-]*([^\n\r]{5,200})`)
	rePhone     = regexp.MustCompile(`(?im)(?:Tel|Telephone|Phone|Mobile)[\s:\-]*(\+?[0-9\s\-().]{7,25})`)
	reEmail     = regexp.MustCompile(`(?im)(?:Email|E-mail)[\s:\-]*([^\s:@]+@[^\s:]+)`)
	reReference = regexp.MustCompile(`(?im)(?:Reference|Ref\.?|FOR)[\s:\-]*([A-Z0-9\s\-/]{3,50})`)

	reNet   = regexp.MustCompile(`(?im)(?:Net\s*Value|Net|Subtotal)[\s:\-]*(?:TSH)?\s*([0-9,]+\.?\d{0,2})`)
	reVAT   = regexp.MustCompile(`(?im)(?:VAT|Tax|GST)[\s:\-]*(?:TSH)?\s*([0-9,]+\.?\d{0,2})`)
	reGross = regexp.MustCompile(`(?im)(?:Gross\s*Value|Gross|Total\s*Amount|Total)[\s:\-]*(?:TSH)?\s*([0-9,]+\.?\d{0,2})`)

	reNumericToken = regexp.MustCompile(`[0-9,]+\.?\d*`)
	reItemCode     = regexp.MustCompile(`\b(\d{3,6})\b`)
	reTableHeader  = regexp.MustCompile(`(?i)\b(?:Item|Description)\b`)
	reQtyHeader    = regexp.MustCompile(`(?i)\bQty\b`)
	reFooter       = regexp.MustCompile(`(?i)\b(?:Net Value|Total|Gross Value|VAT|Payment)\b`)
	reAmountJunk   = regexp.MustCompile(`[^\d.,\-]`)
)

// Extract parses header fields and line items from invoice text.
func Extract(text string) *Result {
	return &Result{
		Header:  ExtractHeader(text),
		Items:   ExtractLineItems(text),
		RawText: text,
	}
}

func ExtractHeader(text string) Header {
	return Header{
		InvoiceNo:    findFirst(reInvoiceNo, text),
		CodeNo:       findFirst(reCodeNo, text),
		Date:         findFirst(reDate, text),
		CustomerName: findFirst(reCustomer, text),
		Address:      findFirst(reAddress, text),
		Phone:        findFirst(rePhone, text),
		Email:        findFirst(reEmail, text),
		Reference:    findFirst(reReference, text),
		NetValue:     parseAmount(findFirst(reNet, text)),
		VAT:          parseAmount(findFirst(reVAT, text)),
		GrossValue:   parseAmount(findFirst(reGross, text)),
	}
}

// ExtractLineItems scans for rows that look like
// "Sr ItemCode Description Qty Rate Value": at least two numeric
// tokens, last token taken as value and second-to-last as quantity.
func ExtractLineItems(text string) []LineItem {
	var items []LineItem

	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}

	// Table body starts after a header line naming Item/Description and Qty.
	start := 0
	limit := len(lines)
	if limit > 30 {
		limit = 30
	}
	for idx := 0; idx < limit; idx++ {
		if reTableHeader.MatchString(lines[idx]) && reQtyHeader.MatchString(lines[idx]) {
			start = idx + 1
			break
		}
	}

	for _, line := range lines[start:] {
		if reFooter.MatchString(line) {
			break
		}

		numbers := reNumericToken.FindAllString(line, -1)
		if len(numbers) < 2 {
			continue
		}

		item := LineItem{
			Value: parseAmount(numbers[len(numbers)-1]),
			Qty:   parseAmount(numbers[len(numbers)-2]),
		}

		if m := reItemCode.FindStringSubmatch(line); m != nil {
			item.ItemCode = m[1]
		}

		desc := strings.TrimSpace(reNumericToken.ReplaceAllString(line, ""))
		if len(desc) > 255 {
			desc = desc[:255]
		}
		item.Description = desc

		items = append(items, item)
	}

	return items
}

func findFirst(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.Join(strings.Fields(m[1]), " ")
}

func parseAmount(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}

	cleaned := strings.ReplaceAll(reAmountJunk.ReplaceAllString(s, ""), ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}
