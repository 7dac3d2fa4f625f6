package dto

import "time"

type OrderListDTO struct {
	ID           uint       `json:"id"`
	OrderNumber  string     `json:"order_number"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customer_name"`
	Plate        string     `json:"plate,omitempty"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type InvoiceListDTO struct {
	ID            uint      `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	Reference     string    `json:"reference,omitempty"`
	Total         string    `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}
