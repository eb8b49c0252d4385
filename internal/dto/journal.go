package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/journal_posting/internal/apperrors"
	"github.com/SscSPs/journal_posting/internal/core/domain"
)

// DateLayout is the plain calendar date accepted for an entry date. RFC 3339 is accepted too.
const DateLayout = "2006-01-02"

// JournalEntryLineRequest is one element of the accounts array.
type JournalEntryLineRequest struct {
	Account string          `json:"account" binding:"required"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Party   string          `json:"party,omitempty"`
}

// PostJournalEntryRequest is the journal_entry.json document and the POST body.
// An empty accounts array is accepted here and rejected by the posting engine.
type PostJournalEntryRequest struct {
	Name            string                    `json:"name,omitempty" binding:"max=140"`
	NumberSeries    string                    `json:"numberSeries" binding:"max=140"`
	EntryType       string                    `json:"entryType" binding:"required,max=140"`
	Date            string                    `json:"date" binding:"required,entrydate"`
	ReferenceNumber string                    `json:"referenceNumber" binding:"max=140"`
	UserRemark      string                    `json:"userRemark"`
	Accounts        []JournalEntryLineRequest `json:"accounts" binding:"required,dive"`
}

// ParseEntryDate accepts YYYY-MM-DD or an RFC 3339 timestamp.
func ParseEntryDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperrors.Validation(fmt.Errorf("date %q is neither %s nor RFC 3339", s, DateLayout))
	}
	return t, nil
}

// ToDomain converts the request into the in-memory entry and lines handed to the posting engine.
func (r PostJournalEntryRequest) ToDomain() (domain.JournalEntry, []domain.JournalEntryLine, error) {
	date, err := ParseEntryDate(r.Date)
	if err != nil {
		return domain.JournalEntry{}, nil, err
	}

	entry := domain.JournalEntry{
		Name:            strings.TrimSpace(r.Name),
		NumberSeries:    r.NumberSeries,
		EntryType:       r.EntryType,
		Date:            date,
		ReferenceNumber: r.ReferenceNumber,
		UserRemark:      r.UserRemark,
	}

	lines := make([]domain.JournalEntryLine, len(r.Accounts))
	for i, a := range r.Accounts {
		lines[i] = domain.JournalEntryLine{
			Account: a.Account,
			Debit:   a.Debit,
			Credit:  a.Credit,
			Party:   a.Party,
		}
	}
	return entry, lines, nil
}

// PostJournalEntryResponse is returned after a successful post.
type PostJournalEntryResponse struct {
	Name             string   `json:"name"`
	LineNames        []string `json:"lineNames"`
	LedgerEntryNames []string `json:"ledgerEntryNames"`
	LineCount        int      `json:"lineCount"`
}

// ToPostJournalEntryResponse converts a domain.PostedEntry to its response DTO.
func ToPostJournalEntryResponse(p *domain.PostedEntry) PostJournalEntryResponse {
	return PostJournalEntryResponse{
		Name:             p.Name,
		LineNames:        p.LineNames,
		LedgerEntryNames: p.LedgerEntryNames,
		LineCount:        p.LineCount(),
	}
}

// JournalEntryLineResponse defines the data returned for an account line.
type JournalEntryLineResponse struct {
	Name    string          `json:"name"`
	Idx     int             `json:"idx"`
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// LedgerEntryResponse defines the data returned for a ledger posting.
type LedgerEntryResponse struct {
	Name          string          `json:"name"`
	Date          time.Time       `json:"date"`
	Party         string          `json:"party"`
	Account       string          `json:"account"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	ReferenceType string          `json:"referenceType"`
	ReferenceName string          `json:"referenceName"`
	Reverted      bool            `json:"reverted"`
	Reverts       string          `json:"reverts"`
}

// JournalEntryResponse defines the data returned for a posted entry and its rows.
type JournalEntryResponse struct {
	Name            string                     `json:"name"`
	NumberSeries    string                     `json:"numberSeries"`
	EntryType       string                     `json:"entryType"`
	Date            time.Time                  `json:"date"`
	ReferenceNumber string                     `json:"referenceNumber"`
	UserRemark      string                     `json:"userRemark"`
	Submitted       bool                       `json:"submitted"`
	Cancelled       bool                       `json:"cancelled"`
	CreatedBy       string                     `json:"createdBy"`
	Created         time.Time                  `json:"created"`
	Accounts        []JournalEntryLineResponse `json:"accounts"`
	LedgerEntries   []LedgerEntryResponse      `json:"ledgerEntries"`
}

// ToJournalEntryResponse converts a domain.JournalEntryAggregate to its response DTO.
func ToJournalEntryResponse(agg *domain.JournalEntryAggregate) JournalEntryResponse {
	resp := JournalEntryResponse{
		Name:            agg.Entry.Name,
		NumberSeries:    agg.Entry.NumberSeries,
		EntryType:       agg.Entry.EntryType,
		Date:            agg.Entry.Date,
		ReferenceNumber: agg.Entry.ReferenceNumber,
		UserRemark:      agg.Entry.UserRemark,
		Submitted:       agg.Entry.Submitted,
		Cancelled:       agg.Entry.Cancelled,
		CreatedBy:       agg.Entry.CreatedBy,
		Created:         agg.Entry.Created,
		Accounts:        make([]JournalEntryLineResponse, len(agg.Lines)),
		LedgerEntries:   make([]LedgerEntryResponse, len(agg.LedgerEntries)),
	}
	for i, l := range agg.Lines {
		resp.Accounts[i] = JournalEntryLineResponse{
			Name:    l.Name,
			Idx:     l.Idx,
			Account: l.Account,
			Debit:   l.Debit,
			Credit:  l.Credit,
		}
	}
	for i, le := range agg.LedgerEntries {
		resp.LedgerEntries[i] = LedgerEntryResponse{
			Name:          le.Name,
			Date:          le.Date,
			Party:         le.Party,
			Account:       le.Account,
			Debit:         le.Debit,
			Credit:        le.Credit,
			ReferenceType: le.ReferenceType,
			ReferenceName: le.ReferenceName,
			Reverted:      le.Reverted,
			Reverts:       le.Reverts,
		}
	}
	return resp
}
