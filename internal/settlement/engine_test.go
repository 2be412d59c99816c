package settlement

import (
	"math"
	"reflect"
	"testing"
)

var testParticipants = []Participant{
	{ID: "pa", Name: "Ana"},
	{ID: "pb", Name: "Bruno"},
	{ID: "pc", Name: "Carla"},
}

func equalSplitExpense(id, currency, payer string, amount float64, participantIDs ...string) Expense {
	share := amount / float64(len(participantIDs))
	shares := make([]ExpenseShare, len(participantIDs))
	for i, pid := range participantIDs {
		shares[i] = ExpenseShare{ParticipantID: pid, Amount: share}
	}
	return Expense{
		ID:                  id,
		Amount:              amount,
		Currency:            currency,
		PaidByParticipantID: payer,
		Shares:              shares,
	}
}

func findBalance(t *testing.T, balances []Balance, participantID string) Balance {
	t.Helper()
	for _, b := range balances {
		if b.ParticipantID == participantID {
			return b
		}
	}
	t.Fatalf("no balance entry for participant %s", participantID)
	return Balance{}
}

func TestComputeEqualSplit(t *testing.T) {
	expenses := []Expense{
		equalSplitExpense("e1", "USD", "pa", 90, "pa", "pb", "pc"),
	}

	result := Compute(expenses, testParticipants, nil)

	if !reflect.DeepEqual(result.Currencies, []string{"USD"}) {
		t.Fatalf("currencies = %v, want [USD]", result.Currencies)
	}

	balances := result.BalancesByCurrency["USD"]
	if len(balances) != 3 {
		t.Fatalf("got %d balance entries, want 3", len(balances))
	}

	ana := findBalance(t, balances, "pa")
	if math.Abs(ana.Paid-90) > 0.01 || math.Abs(ana.Owes-30) > 0.01 || math.Abs(ana.Balance-60) > 0.01 {
		t.Errorf("Ana balance = %+v, want paid=90 owes=30 balance=60", ana)
	}
	for _, pid := range []string{"pb", "pc"} {
		b := findBalance(t, balances, pid)
		if math.Abs(b.Balance+30) > 0.01 {
			t.Errorf("%s balance = %v, want -30", pid, b.Balance)
		}
	}

	if len(result.Transfers) != 2 {
		t.Fatalf("got %d transfers, want 2: %+v", len(result.Transfers), result.Transfers)
	}
	for _, tr := range result.Transfers {
		if tr.ToID != "pa" || math.Abs(tr.Amount-30) > 0.01 || tr.Currency != "USD" {
			t.Errorf("unexpected transfer %+v", tr)
		}
	}
	// Equal-magnitude debtors resolve in participant-list order.
	if result.Transfers[0].FromID != "pb" || result.Transfers[1].FromID != "pc" {
		t.Errorf("tie-break order wrong: %+v", result.Transfers)
	}
}

func TestComputePartialPaymentRecorded(t *testing.T) {
	expenses := []Expense{
		equalSplitExpense("e1", "USD", "pa", 90, "pa", "pb", "pc"),
	}
	payments := []Payment{
		{ID: "pay1", FromParticipantID: "pb", ToParticipantID: "pa", Amount: 30, Currency: "USD"},
	}

	result := Compute(expenses, testParticipants, payments)

	balances := result.BalancesByCurrency["USD"]
	ana := findBalance(t, balances, "pa")
	bruno := findBalance(t, balances, "pb")
	carla := findBalance(t, balances, "pc")

	if math.Abs(ana.Balance-30) > 0.01 {
		t.Errorf("Ana balance = %v, want 30", ana.Balance)
	}
	if math.Abs(bruno.Balance) > 0.01 {
		t.Errorf("Bruno balance = %v, want 0", bruno.Balance)
	}
	// Bruno still shows his paid/owes history even though he is settled.
	if math.Abs(bruno.Owes-30) > 0.01 {
		t.Errorf("Bruno owes = %v, want 30", bruno.Owes)
	}
	if math.Abs(carla.Balance+30) > 0.01 {
		t.Errorf("Carla balance = %v, want -30", carla.Balance)
	}

	if len(result.Transfers) != 1 {
		t.Fatalf("got %d transfers, want 1: %+v", len(result.Transfers), result.Transfers)
	}
	tr := result.Transfers[0]
	if tr.FromID != "pc" || tr.ToID != "pa" || math.Abs(tr.Amount-30) > 0.01 {
		t.Errorf("unexpected transfer %+v", tr)
	}
}

func TestComputeCustomSplitRounding(t *testing.T) {
	expenses := []Expense{
		{
			ID:                  "e1",
			Amount:              100,
			Currency:            "USD",
			PaidByParticipantID: "pa",
			Shares: []ExpenseShare{
				{ParticipantID: "pa", Amount: 33.33},
				{ParticipantID: "pb", Amount: 33.33},
				{ParticipantID: "pc", Amount: 33.34},
			},
		},
	}

	shareSum := 33.33 + 33.33 + 33.34
	if math.Abs(shareSum-100) > 0.01 {
		t.Fatalf("shares sum to %v, outside tolerance of 100", shareSum)
	}

	result := Compute(expenses, testParticipants, nil)

	var total float64
	for _, b := range result.BalancesByCurrency["USD"] {
		total += b.Balance
	}
	if math.Abs(total) > 0.01 {
		t.Errorf("balances sum to %v, want 0", total)
	}
}

func TestComputeMultiCurrencyIsolation(t *testing.T) {
	expenses := []Expense{
		equalSplitExpense("e1", "USD", "pa", 90, "pa", "pb", "pc"),
		equalSplitExpense("e2", "JPY", "pb", 3000, "pa", "pb", "pc"),
	}

	result := Compute(expenses, testParticipants, nil)

	if !reflect.DeepEqual(result.Currencies, []string{"USD", "JPY"}) {
		t.Fatalf("currencies = %v, want [USD JPY]", result.Currencies)
	}

	usd := findBalance(t, result.BalancesByCurrency["USD"], "pa")
	if math.Abs(usd.Balance-60) > 0.01 {
		t.Errorf("Ana USD balance = %v, want 60", usd.Balance)
	}
	jpy := findBalance(t, result.BalancesByCurrency["JPY"], "pb")
	if math.Abs(jpy.Balance-2000) > 0.01 {
		t.Errorf("Bruno JPY balance = %v, want 2000", jpy.Balance)
	}

	for _, tr := range result.Transfers {
		if tr.Currency != "USD" && tr.Currency != "JPY" {
			t.Errorf("transfer in unexpected currency: %+v", tr)
		}
	}
}

func TestComputePaymentOnlyCurrencyIgnored(t *testing.T) {
	payments := []Payment{
		{ID: "pay1", FromParticipantID: "pb", ToParticipantID: "pa", Amount: 10, Currency: "EUR"},
	}

	result := Compute(nil, testParticipants, payments)

	if len(result.Currencies) != 0 {
		t.Errorf("currencies = %v, want none", result.Currencies)
	}
	if len(result.Transfers) != 0 {
		t.Errorf("transfers = %+v, want none", result.Transfers)
	}
}

func TestComputeFullySettledTrip(t *testing.T) {
	expenses := []Expense{
		equalSplitExpense("e1", "USD", "pa", 90, "pa", "pb", "pc"),
	}
	payments := []Payment{
		{ID: "pay1", FromParticipantID: "pb", ToParticipantID: "pa", Amount: 30, Currency: "USD"},
		{ID: "pay2", FromParticipantID: "pc", ToParticipantID: "pa", Amount: 30, Currency: "USD"},
	}

	result := Compute(expenses, testParticipants, payments)

	// Currency still appears even when fully settled, with an empty plan.
	if !reflect.DeepEqual(result.Currencies, []string{"USD"}) {
		t.Fatalf("currencies = %v, want [USD]", result.Currencies)
	}
	for _, b := range result.BalancesByCurrency["USD"] {
		if math.Abs(b.Balance) > 0.01 {
			t.Errorf("%s balance = %v, want 0", b.ParticipantID, b.Balance)
		}
	}
	if len(result.Transfers) != 0 {
		t.Errorf("transfers = %+v, want none", result.Transfers)
	}
}

// TestComputeConservationAndClosure checks that balances sum to zero per
// currency and that applying every suggested transfer drives everyone to
// within a cent of zero.
func TestComputeConservationAndClosure(t *testing.T) {
	participants := []Participant{
		{ID: "p1", Name: "Ana"},
		{ID: "p2", Name: "Bruno"},
		{ID: "p3", Name: "Carla"},
		{ID: "p4", Name: "Diego"},
		{ID: "p5", Name: "Elena"},
	}
	expenses := []Expense{
		equalSplitExpense("e1", "CLP", "p1", 45000, "p1", "p2", "p3"),
		equalSplitExpense("e2", "CLP", "p2", 12350, "p1", "p2", "p3", "p4", "p5"),
		equalSplitExpense("e3", "CLP", "p4", 7777, "p3", "p4", "p5"),
		{
			ID: "e4", Amount: 100.10, Currency: "USD", PaidByParticipantID: "p5",
			Shares: []ExpenseShare{
				{ParticipantID: "p1", Amount: 50.05},
				{ParticipantID: "p2", Amount: 25.00},
				{ParticipantID: "p3", Amount: 25.05},
			},
		},
	}
	payments := []Payment{
		{ID: "pay1", FromParticipantID: "p3", ToParticipantID: "p1", Amount: 5000, Currency: "CLP"},
		{ID: "pay2", FromParticipantID: "p2", ToParticipantID: "p5", Amount: 10.50, Currency: "USD"},
	}

	result := Compute(expenses, participants, payments)

	for _, currency := range result.Currencies {
		balances := result.BalancesByCurrency[currency]

		var sum float64
		remaining := make(map[string]float64)
		for _, b := range balances {
			sum += b.Balance
			remaining[b.ParticipantID] = b.Balance
		}
		if math.Abs(sum) > 0.01 {
			t.Errorf("%s: balances sum to %v, want 0", currency, sum)
		}

		nonzero := 0
		for _, b := range balances {
			if math.Abs(b.Balance) > zeroTolerance {
				nonzero++
			}
		}
		transferCount := 0
		for _, tr := range result.Transfers {
			if tr.Currency != currency {
				continue
			}
			transferCount++
			remaining[tr.FromID] += tr.Amount
			remaining[tr.ToID] -= tr.Amount
		}
		if nonzero > 0 && transferCount > nonzero-1 {
			t.Errorf("%s: %d transfers for %d unsettled participants, want at most %d",
				currency, transferCount, nonzero, nonzero-1)
		}
		for pid, r := range remaining {
			if math.Abs(r) > 0.01 {
				t.Errorf("%s: participant %s left with %v after applying plan", currency, pid, r)
			}
		}
	}
}

// TestComputeIdempotentUnderFullPayment records a payment for every
// suggested transfer and verifies the recomputation yields zero balances
// and an empty plan.
func TestComputeIdempotentUnderFullPayment(t *testing.T) {
	expenses := []Expense{
		equalSplitExpense("e1", "USD", "pa", 75, "pa", "pb", "pc"),
		equalSplitExpense("e2", "USD", "pb", 20, "pb", "pc"),
	}

	first := Compute(expenses, testParticipants, nil)

	var payments []Payment
	for i, tr := range first.Transfers {
		payments = append(payments, Payment{
			ID:                "settle-" + tr.FromID + string(rune('0'+i)),
			FromParticipantID: tr.FromID,
			ToParticipantID:   tr.ToID,
			Amount:            tr.Amount,
			Currency:          tr.Currency,
		})
	}

	second := Compute(expenses, testParticipants, payments)

	for _, b := range second.BalancesByCurrency["USD"] {
		if math.Abs(b.Balance) > 0.01 {
			t.Errorf("%s balance = %v after settling everything, want 0", b.ParticipantID, b.Balance)
		}
	}
	if len(second.Transfers) != 0 {
		t.Errorf("transfers after settling everything = %+v, want none", second.Transfers)
	}
}

func TestComputeDeterminism(t *testing.T) {
	expenses := []Expense{
		equalSplitExpense("e1", "USD", "pa", 90, "pa", "pb", "pc"),
		equalSplitExpense("e2", "JPY", "pc", 9000, "pa", "pb", "pc"),
	}
	payments := []Payment{
		{ID: "pay1", FromParticipantID: "pb", ToParticipantID: "pa", Amount: 10, Currency: "USD"},
	}

	first := Compute(expenses, testParticipants, payments)
	second := Compute(expenses, testParticipants, payments)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different output:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestComputeNoExpenses(t *testing.T) {
	result := Compute(nil, testParticipants, nil)

	if len(result.Currencies) != 0 || len(result.Transfers) != 0 || len(result.BalancesByCurrency) != 0 {
		t.Errorf("empty input produced non-empty result: %+v", result)
	}
}
