// Package report строит текстовую сводку по заказу: позиции, сумму и историю статусов.
// Отчёт только читает заказ и никогда его не меняет.
package report

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// TimeLayout - формат времени в строках истории.
const TimeLayout = "2006-01-02 15:04:05"

// Line - одна позиция в отчёте.
type Line struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// HistoryLine - одна запись истории в отчёте.
type HistoryLine struct {
	At   time.Time
	From domain.OrderStatus
	To   domain.OrderStatus
}

// Report - проекция заказа для вывода.
type Report struct {
	OrderID  string
	Customer string
	Status   domain.OrderStatus
	Lines    []Line
	Total    decimal.Decimal
	History  []HistoryLine
}

// Build снимает проекцию с одного согласованного снимка заказа.
func Build(order *domain.Order) Report {
	snap := order.Snapshot()

	r := Report{
		OrderID:  snap.ID,
		Customer: snap.Customer.Name,
		Status:   snap.Status,
		Total:    snap.Total(),
	}
	for _, item := range snap.Items {
		r.Lines = append(r.Lines, Line{
			Product:   item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			LineTotal: item.LineTotal(),
		})
	}
	for _, change := range snap.History {
		r.History = append(r.History, HistoryLine{At: change.At, From: change.From, To: change.To})
	}
	return r
}

// Render пишет отчёт в w. Колонки позиций выравниваются через tabwriter.
func (r Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Order:    %s\nCustomer: %s\nStatus:   %s\n\nItems:\n", r.OrderID, r.Customer, r.Status.Title()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(r.Lines) > 0 {
		fmt.Fprintln(tw, "  PRODUCT\tQTY\tUNIT PRICE\tLINE TOTAL")
		for _, line := range r.Lines {
			fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\n", line.Product, line.Quantity, line.UnitPrice.StringFixed(2), line.LineTotal.StringFixed(2))
		}
	} else {
		fmt.Fprintln(tw, "  (no items)")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Total:    %s\n\nHistory:\n", r.Total.StringFixed(2)); err != nil {
		return err
	}
	for _, h := range r.History {
		if _, err := fmt.Fprintf(w, "  %s  %s -> %s\n", h.At.Format(TimeLayout), h.From.Title(), h.To.Title()); err != nil {
			return err
		}
	}
	return nil
}

// String возвращает отчёт целиком.
func (r Report) String() string {
	var buf bytes.Buffer
	_ = r.Render(&buf)
	return buf.String()
}

// Generate собирает и форматирует отчёт по заказу.
func Generate(order *domain.Order) string {
	return Build(order).String()
}
