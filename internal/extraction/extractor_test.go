package extraction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInvoiceText = `PI: PI-2026/0142
Date: 12/03/2026
Customer Name: ACME LOGISTICS LTD
Address: Plot 12 Nyerere Road, Dar es Salaam
Tel: +255 712 345 678
Email: accounts@acmelogistics.co.tz
Reference: T123ABC
====
Sr  Item   Description        Qty   Value
1   40213  Brake drum rear    2     370,000.00
2   51877  Wheel hub assembly 1     95,500.00
Net Value: TSH 465,500.00
VAT: TSH 83,790.00
Gross Value: TSH 549,290.00
`

func decEqual(t *testing.T, want string, got *decimal.Decimal) {
	t.Helper()
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString(want).Equal(*got), "want %s got %s", want, got)
}

func TestExtractHeader(t *testing.T) {
	h := ExtractHeader(sampleInvoiceText)

	assert.Equal(t, "PI-2026/0142", h.InvoiceNo)
	assert.Equal(t, "12/03/2026", h.Date)
	assert.Equal(t, "ACME LOGISTICS LTD", h.CustomerName)
	assert.Equal(t, "Plot 12 Nyerere Road, Dar es Salaam", h.Address)
	assert.Equal(t, "+255 712 345 678", h.Phone)
	assert.Equal(t, "accounts@acmelogistics.co.tz", h.Email)
	assert.Equal(t, "T123ABC", h.Reference)

	decEqual(t, "465500.00", h.NetValue)
	decEqual(t, "83790.00", h.VAT)
	decEqual(t, "549290.00", h.GrossValue)
}

func TestExtractLineItems(t *testing.T) {
	items := ExtractLineItems(sampleInvoiceText)
	require.Len(t, items, 2)

	assert.Equal(t, "40213", items[0].ItemCode)
	assert.Equal(t, "Brake drum rear", items[0].Description)
	decEqual(t, "2", items[0].Qty)
	decEqual(t, "370000.00", items[0].Value)

	assert.Equal(t, "51877", items[1].ItemCode)
	assert.Equal(t, "Wheel hub assembly", items[1].Description)
	decEqual(t, "1", items[1].Qty)
	decEqual(t, "95500.00", items[1].Value)
}

func TestExtractLineItemsStopsAtFooter(t *testing.T) {
	text := `Item  Description  Qty  Value
1  40213  Oil filter  4  20,000.00
Total 20,000.00
9  99999  Should not appear  1  5.00
`
	items := ExtractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Oil filter", items[0].Description)
}

func TestExtractEmptyText(t *testing.T) {
	res := Extract("")
	assert.Empty(t, res.Header.CustomerName)
	assert.Nil(t, res.Header.GrossValue)
	assert.Empty(t, res.Items)
}
