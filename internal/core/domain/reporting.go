package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DueSoonWindow is how far ahead of the due date a bill counts as due soon.
const DueSoonWindow = 5 * 24 * time.Hour

// LedgerTotals summarizes the full transaction list. Balance is income minus
// expense; it is recomputed from scratch on every read.
type LedgerTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// UpcomingBill annotates an unpaid bill with its dashboard urgency flags.
type UpcomingBill struct {
	Bill
	IsOverdue bool `json:"isOverdue"`
	IsSoon    bool `json:"isSoon"`
}

// SummarizeTransactions computes income, expense and net balance over the
// given transactions.
func SummarizeTransactions(transactions []Transaction) LedgerTotals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range transactions {
		if txn.TransactionType == Income {
			income = income.Add(txn.Amount)
		} else {
			expense = expense.Add(txn.Amount)
		}
	}
	return LedgerTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// ExpenseBreakdown sums EXPENSE amounts per category; income transactions are
// excluded. Categories are returned in descending total order for stable
// presentation.
func ExpenseBreakdown(transactions []Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if txn.TransactionType != Expense {
			continue
		}
		sums[txn.Category] = sums[txn.Category].Add(txn.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(sums))
	for category, total := range sums {
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Category < breakdown[j].Category
		}
		return breakdown[i].Total.GreaterThan(breakdown[j].Total)
	})
	return breakdown
}

// UpcomingBills returns the unpaid bills annotated with overdue/due-soon
// flags, ascending by due date. The reference time is truncated to midnight
// so the comparison is date-only.
func UpcomingBills(bills []Bill, today time.Time) []UpcomingBill {
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	upcoming := make([]UpcomingBill, 0, len(bills))
	for _, bill := range bills {
		if bill.IsPaid {
			continue
		}
		upcoming = append(upcoming, UpcomingBill{
			Bill:      bill,
			IsOverdue: bill.DueDate.Before(midnight),
			IsSoon:    bill.DueDate.Sub(midnight) <= DueSoonWindow,
		})
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	return upcoming
}
