package domain

// CommitUnit holds every row of one posting. The rows are written in one store
// transaction and are either all committed or all rolled back.
type CommitUnit struct {
	Entry         JournalEntry
	Lines         []JournalEntryLine
	LedgerEntries []AccountingLedgerEntry
}

// PostedEntry is the result of a successful posting.
type PostedEntry struct {
	Name             string   `json:"name"`
	LineNames        []string `json:"lineNames"`
	LedgerEntryNames []string `json:"ledgerEntryNames"`
}

// LineCount returns the number of JournalEntryLine rows written.
func (p PostedEntry) LineCount() int {
	return len(p.LineNames)
}

// LedgerEntryCount returns the number of AccountingLedgerEntry rows written.
func (p PostedEntry) LedgerEntryCount() int {
	return len(p.LedgerEntryNames)
}

// Result builds the PostedEntry describing the unit once it has been committed.
func (u CommitUnit) Result() *PostedEntry {
	posted := &PostedEntry{
		Name:             u.Entry.Name,
		LineNames:        make([]string, len(u.Lines)),
		LedgerEntryNames: make([]string, len(u.LedgerEntries)),
	}
	for i, line := range u.Lines {
		posted.LineNames[i] = line.Name
	}
	for i, le := range u.LedgerEntries {
		posted.LedgerEntryNames[i] = le.Name
	}
	return posted
}
