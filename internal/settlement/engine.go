package settlement

import (
	"math"
	"sort"
)

// zeroTolerance is half a minor-currency unit. Balances within this range of
// zero are treated as settled, absorbing rounding noise from equal-split
// division.
const zeroTolerance = 0.005

// Participant identifies a person who can owe or be owed money.
type Participant struct {
	ID   string
	Name string
}

// ExpenseShare is one participant's portion of an expense.
type ExpenseShare struct {
	ParticipantID string
	Amount        float64
}

// Expense is a single shared cost. The shares are expected to sum to Amount
// within ±0.01; that invariant is enforced at creation time, not here.
type Expense struct {
	ID                  string
	Amount              float64
	Currency            string
	PaidByParticipantID string
	Shares              []ExpenseShare
}

// Payment records that one participant already transferred money to another.
type Payment struct {
	ID                string
	FromParticipantID string
	ToParticipantID   string
	Amount            float64
	Currency          string
}

// Balance is one participant's derived position in a single currency.
// Positive means others owe this participant, negative means they owe others.
type Balance struct {
	ParticipantID string  `json:"participant_id"`
	Name          string  `json:"name"`
	Paid          float64 `json:"paid"`
	Owes          float64 `json:"owes"`
	Balance       float64 `json:"balance"`
}

// Transfer is a suggested payment that helps close outstanding balances.
type Transfer struct {
	FromID   string  `json:"from_id"`
	FromName string  `json:"from_name"`
	ToID     string  `json:"to_id"`
	ToName   string  `json:"to_name"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Result holds balances and suggested transfers per currency. Currencies
// lists every currency with at least one balance entry, in the order the
// currency first appears in the expense list.
type Result struct {
	BalancesByCurrency map[string][]Balance `json:"balances_by_currency"`
	Transfers          []Transfer           `json:"transfers"`
	Currencies         []string             `json:"currencies"`
}

// Compute derives per-participant balances and a greedy minimal-transfer
// settlement plan from a trip's expenses and already-recorded payments.
//
// It is a pure function: no I/O, no shared state, safe for concurrent use.
// Each currency is handled independently; there is no cross-currency
// netting. A currency that appears only in payments but in no expense
// produces no output at all.
func Compute(expenses []Expense, participants []Participant, payments []Payment) Result {
	result := Result{
		BalancesByCurrency: make(map[string][]Balance),
		Transfers:          []Transfer{},
		Currencies:         []string{},
	}

	seen := make(map[string]bool)
	for _, e := range expenses {
		if !seen[e.Currency] {
			seen[e.Currency] = true
			result.Currencies = append(result.Currencies, e.Currency)
		}
	}

	for _, currency := range result.Currencies {
		balances, transfers := computeCurrency(currency, expenses, participants, payments)
		result.BalancesByCurrency[currency] = balances
		result.Transfers = append(result.Transfers, transfers...)
	}

	return result
}

// party is a participant's working balance during plan derivation. The order
// field preserves participant-list position for deterministic tie-breaking.
type party struct {
	order   int
	id      string
	name    string
	balance float64
}

func computeCurrency(currency string, expenses []Expense, participants []Participant, payments []Payment) ([]Balance, []Transfer) {
	paid := make(map[string]float64)
	owes := make(map[string]float64)
	netFromPayments := make(map[string]float64)

	for _, e := range expenses {
		if e.Currency != currency {
			continue
		}
		paid[e.PaidByParticipantID] += e.Amount
		for _, share := range e.Shares {
			owes[share.ParticipantID] += share.Amount
		}
	}

	// A payment discharges debt from sender to receiver. It never counts as
	// paid/owes: it reduces what the sender owes and what the receiver is
	// owed. netFromPayments tracks net money received, so subtracting it
	// moves the sender toward zero and the receiver down by what they got.
	for _, p := range payments {
		if p.Currency != currency {
			continue
		}
		netFromPayments[p.FromParticipantID] -= p.Amount
		netFromPayments[p.ToParticipantID] += p.Amount
	}

	// Participants untouched by any expense in this currency have nothing to
	// settle here and are omitted entirely.
	balances := []Balance{}
	var creditors, debtors []*party
	for i, p := range participants {
		if paid[p.ID] == 0 && owes[p.ID] == 0 {
			continue
		}
		balance := paid[p.ID] - owes[p.ID] - netFromPayments[p.ID]
		balances = append(balances, Balance{
			ParticipantID: p.ID,
			Name:          p.Name,
			Paid:          paid[p.ID],
			Owes:          owes[p.ID],
			Balance:       balance,
		})

		w := &party{order: i, id: p.ID, name: p.Name, balance: balance}
		switch {
		case balance > zeroTolerance:
			creditors = append(creditors, w)
		case balance < -zeroTolerance:
			debtors = append(debtors, w)
		}
	}

	// Greedy largest-creditor vs largest-debtor matching. Not guaranteed
	// globally minimal, but deterministic and at most N-1 transfers for N
	// participants with a nonzero balance.
	transfers := []Transfer{}
	for len(creditors) > 0 && len(debtors) > 0 {
		sort.Slice(creditors, func(i, j int) bool {
			if creditors[i].balance != creditors[j].balance {
				return creditors[i].balance > creditors[j].balance
			}
			return creditors[i].order < creditors[j].order
		})
		sort.Slice(debtors, func(i, j int) bool {
			if debtors[i].balance != debtors[j].balance {
				return debtors[i].balance < debtors[j].balance
			}
			return debtors[i].order < debtors[j].order
		})

		creditor, debtor := creditors[0], debtors[0]
		amount := math.Min(creditor.balance, -debtor.balance)

		// Round only the emitted amount; the working balances keep full
		// precision so rounding error never compounds across iterations.
		if rounded := roundToCents(amount); rounded != 0 {
			transfers = append(transfers, Transfer{
				FromID:   debtor.id,
				FromName: debtor.name,
				ToID:     creditor.id,
				ToName:   creditor.name,
				Amount:   rounded,
				Currency: currency,
			})
		}

		creditor.balance -= amount
		debtor.balance += amount
		if creditor.balance <= zeroTolerance {
			creditors = creditors[1:]
		}
		if debtor.balance >= -zeroTolerance {
			debtors = debtors[1:]
		}
	}

	return balances, transfers
}

func roundToCents(value float64) float64 {
	return math.Round(value*100) / 100
}
