package ledger

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"patterns/internal/console"
	"patterns/internal/domain"
)

// TransactionList keeps transactions in the order they were added.
type TransactionList struct {
	txs []domain.Transaction
	log *zap.Logger
}

func NewTransactionList(log *zap.Logger) *TransactionList {
	if log == nil {
		log = zap.NewNop()
	}
	return &TransactionList{log: log}
}

func (l *TransactionList) Add(tx domain.Transaction) {
	l.txs = append(l.txs, tx)
	l.log.Debug("transaction added",
		zap.Stringer("kind", tx.Kind),
		zap.String("category", tx.Category),
		zap.Stringer("amount", tx.Amount),
		zap.Int("count", len(l.txs)))
}

func (l *TransactionList) Clear() {
	l.log.Debug("transactions cleared", zap.Int("count", len(l.txs)))
	l.txs = nil
}

// Transactions returns a copy of the list.
func (l *TransactionList) Transactions() []domain.Transaction { return slices.Clone(l.txs) }

func (l *TransactionList) Len() int { return len(l.txs) }

// View writes every transaction in list form.
func (l *TransactionList) View(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Transactions:"); err != nil {
		return err
	}
	for _, tx := range l.txs {
		if _, err := fmt.Fprintln(w, tx.String()); err != nil {
			return err
		}
	}
	return nil
}

// AddTransaction asks for an amount and a category and appends the result.
// An amount that does not parse is returned before the category is asked for.
func (l *TransactionList) AddTransaction(con *console.Console, kind domain.Kind) error {
	raw, err := con.AskInline("Enter amount: ")
	if err != nil {
		return err
	}
	amount, err := console.ParseDecimal("amount", raw)
	if err != nil {
		return err
	}
	category, err := con.AskInline("Enter category: ")
	if err != nil {
		return err
	}

	l.Add(domain.NewTransaction(amount, strings.TrimSpace(category), kind))
	con.Println("Transaction added successfully.")
	return nil
}

// ClearTransactions empties the list and confirms on the console.
func (l *TransactionList) ClearTransactions(con *console.Console) {
	l.Clear()
	con.Println("All transactions cleared.")
}
