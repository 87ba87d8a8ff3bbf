package ledger

import (
	"strings"

	"go.uber.org/zap"

	"patterns/internal/console"
	"patterns/internal/domain"
)

// Reports bundles the two report bodies the menu offers.
type Reports struct {
	Generator *Generator
	Console   BodyRenderer
	File      BodyRenderer
}

// NewReports builds the console and file renderers for path and cur.
func NewReports(con *console.Console, path string, cur Currency, log *zap.Logger) Reports {
	return Reports{
		Generator: NewGenerator(con.Out(), log),
		Console:   ConsoleReport{Out: con.Out(), Currency: cur},
		File:      FileReport{Path: path, Console: con.Out(), Currency: cur, Log: log},
	}
}

func renderExpenseMenu(c *console.Console) {
	c.Title("Expense Tracker")
	c.Println("----------------")
	c.Println("1. Add expense")
	c.Println("2. Add income")
	c.Println("3. View transactions")
	c.Println("4. Export report to console")
	c.Println("5. Export report to text file")
	c.Println("6. Clear all transactions")
	c.Println("7. Exit")
	c.Print("\nEnter your choice: ")
}

// NewExpenseMenu wires list operations and reports to the numbered choices.
func NewExpenseMenu(list *TransactionList, con *console.Console, reports Reports, log *zap.Logger) *console.Menu {
	report := func(body BodyRenderer) console.Action {
		return func() error {
			_, err := reports.Generator.Generate(list.Transactions(), body)
			return err
		}
	}
	return &console.Menu{
		Name:   "expensetracker",
		Render: renderExpenseMenu,
		Actions: map[string]console.Action{
			"1": func() error { return list.AddTransaction(con, domain.Expense) },
			"2": func() error { return list.AddTransaction(con, domain.Income) },
			"3": func() error { return list.View(con.Out()) },
			"4": report(reports.Console),
			"5": report(reports.File),
			"6": func() error { list.ClearTransactions(con); return nil },
		},
		Quit:      "7",
		Farewell:  "Thank you for using Expense Tracker!",
		Invalid:   "Invalid input. Please try again.",
		Normalize: strings.TrimSpace,
		Logger:    log,
	}
}
