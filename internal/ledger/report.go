package ledger

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"patterns/internal/domain"
	"patterns/internal/store"
)

const reportHeader = "Expense Tracker Report\n-----------------------\nTransactions:\n"

// DefaultReportPath is where FileReport writes when no path is configured.
const DefaultReportPath = "report.txt"

// Totals are the sums a report ends with.
type Totals struct {
	Expense decimal.Decimal
	Income  decimal.Decimal
}

// Net is income minus expense.
func (t Totals) Net() decimal.Decimal { return t.Income.Sub(t.Expense) }

func (t Totals) add(tx domain.Transaction) Totals {
	if tx.Kind == domain.Expense {
		t.Expense = t.Expense.Add(tx.Amount)
	} else {
		t.Income = t.Income.Add(tx.Amount)
	}
	return t
}

// BodyRenderer is the pluggable step of a report.
type BodyRenderer interface {
	RenderBody(txs []domain.Transaction) (Totals, error)
}

// Generator is the fixed part of a report: it prints the header to the
// console and delegates the rest.
type Generator struct {
	out io.Writer
	log *zap.Logger
}

func NewGenerator(out io.Writer, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{out: out, log: log}
}

// Generate prints the header and renders txs with body.
func (g *Generator) Generate(txs []domain.Transaction, body BodyRenderer) (Totals, error) {
	if _, err := io.WriteString(g.out, reportHeader); err != nil {
		return Totals{}, err
	}
	totals, err := body.RenderBody(txs)
	if err != nil {
		return totals, err
	}
	g.log.Debug("report generated",
		zap.Int("transactions", len(txs)),
		zap.Stringer("expense", totals.Expense),
		zap.Stringer("income", totals.Income))
	return totals, nil
}

// renderBody produces the line items, a blank line and the three totals,
// accumulating the totals as it goes.
func renderBody(txs []domain.Transaction, cur Currency) ([]byte, Totals) {
	var buf bytes.Buffer
	totals := Totals{Expense: decimal.Zero, Income: decimal.Zero}
	for _, tx := range txs {
		label := "Income"
		if tx.Kind == domain.Expense {
			label = "Expense"
		}
		fmt.Fprintf(&buf, "%s: %s - %s\n", label, tx.Category, cur.Format(tx.Amount))
		totals = totals.add(tx)
	}
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Total Expenses: %s\n", cur.Format(totals.Expense))
	fmt.Fprintf(&buf, "Total Income: %s\n", cur.Format(totals.Income))
	fmt.Fprintf(&buf, "Net Balance: %s\n", cur.Format(totals.Net()))
	return buf.Bytes(), totals
}

// ConsoleReport renders the body to the console.
type ConsoleReport struct {
	Out      io.Writer
	Currency Currency
}

func (r ConsoleReport) RenderBody(txs []domain.Transaction) (Totals, error) {
	body, totals := renderBody(txs, r.Currency)
	_, err := r.Out.Write(body)
	return totals, err
}

// FileReport writes the header and body to Path, replacing any existing file,
// and confirms on Console.
type FileReport struct {
	Path     string
	Console  io.Writer
	Currency Currency
	Log      *zap.Logger
}

func (r FileReport) RenderBody(txs []domain.Transaction) (Totals, error) {
	path := r.Path
	if path == "" {
		path = DefaultReportPath
	}

	body, totals := renderBody(txs, r.Currency)
	err := store.Replace(path, 0o644, func(w io.Writer) error {
		if _, err := io.WriteString(w, reportHeader); err != nil {
			return err
		}
		_, err := w.Write(body)
		return err
	})
	if err != nil {
		return totals, &domain.ExportError{Path: path, Err: err}
	}
	if r.Log != nil {
		r.Log.Debug("report exported", zap.String("path", path), zap.Int("bytes", len(reportHeader)+len(body)))
	}
	_, err = fmt.Fprintf(r.Console, "Report exported to %s.\n", path)
	return totals, err
}
