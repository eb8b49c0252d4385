package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/journal_posting/internal/apperrors"
	"github.com/SscSPs/journal_posting/internal/core/domain"
	portssvc "github.com/SscSPs/journal_posting/internal/core/ports/services"
	"github.com/SscSPs/journal_posting/internal/dto"
	"github.com/SscSPs/journal_posting/internal/handlers"
	"github.com/SscSPs/journal_posting/internal/platform/config"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) PostJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, actor string, now time.Time) (*domain.PostedEntry, error) {
	args := m.Called(ctx, entry, lines, actor, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedEntry), args.Error(1)
}

func (m *MockJournalService) GetJournalEntry(ctx context.Context, name string) (*domain.JournalEntryAggregate, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntryAggregate), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

const testJWTSecret = "handler-test-secret"

const balancedBody = `{
	"name": "JE-0001",
	"numberSeries": "JE-",
	"entryType": "Journal Entry",
	"date": "2024-01-01",
	"userRemark": "Office supplies",
	"accounts": [
		{"account": "Cash", "debit": "100", "credit": "0"},
		{"account": "Revenue", "debit": "0", "credit": "100", "party": "ACME"}
	]
}`

type JournalHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockJournalService
	token       string
}

func (s *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockJournalService)

	cfg := &config.Config{
		JWTSecret:    testJWTSecret,
		DefaultActor: "default_user",
		RateLimit:    "1000-M",
	}
	router, err := handlers.NewRouter(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg,
		&portssvc.ServiceContainer{Journal: s.mockService},
	)
	s.Require().NoError(err)
	s.router = router

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s.token, err = token.SignedString([]byte(testJWTSecret))
	s.Require().NoError(err)
}

func (s *JournalHandlerTestSuite) TearDownTest() {
	s.mockService.AssertExpectations(s.T())
}

func (s *JournalHandlerTestSuite) do(method, path, body string, withToken bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if withToken {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *JournalHandlerTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestJournalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}

func (s *JournalHandlerTestSuite) TestPostJournalEntry_Success() {
	posted := &domain.PostedEntry{
		Name:             "JE-0001",
		LineNames:        []string{"JE-0001_Account_1", "JE-0001_Account_2"},
		LedgerEntryNames: []string{"JE-0001_Ledger_1", "JE-0001_Ledger_2"},
	}
	s.mockService.On("PostJournalEntry",
		mock.Anything,
		mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.Name == "JE-0001" && e.EntryType == "Journal Entry" &&
				e.Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		}),
		mock.MatchedBy(func(lines []domain.JournalEntryLine) bool {
			return len(lines) == 2 &&
				lines[0].Account == "Cash" && lines[0].Debit.Equal(decimal.NewFromInt(100)) &&
				lines[1].Party == "ACME" && lines[1].Credit.Equal(decimal.NewFromInt(100))
		}),
		"alice",
		mock.AnythingOfType("time.Time"),
	).Return(posted, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/journal-entries", balancedBody, true)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.PostJournalEntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("JE-0001", resp.Name)
	s.Equal(2, resp.LineCount)
	s.Equal(posted.LedgerEntryNames, resp.LedgerEntryNames)
}

func (s *JournalHandlerTestSuite) TestPostJournalEntry_Unauthorized() {
	w := s.do(http.MethodPost, "/api/v1/journal-entries", balancedBody, false)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Authorization header required", s.errorMessage(w))
	s.mockService.AssertNotCalled(s.T(), "PostJournalEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalHandlerTestSuite) TestPostJournalEntry_InvalidBody() {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "malformed json", body: `{"name":`, wantMsg: "malformed JSON"},
		{name: "missing entry type", body: `{"date":"2024-01-01","accounts":[]}`, wantMsg: "'entryType' is required"},
		{name: "bad date", body: `{"entryType":"Journal Entry","date":"01/02/2024","accounts":[]}`, wantMsg: "'date' must be YYYY-MM-DD or RFC 3339"},
		{name: "line without account", body: `{"entryType":"Journal Entry","date":"2024-01-01","accounts":[{"debit":"1"}]}`, wantMsg: "'accounts[0].account' is required"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/api/v1/journal-entries", tt.body, true)
			s.Equal(http.StatusBadRequest, w.Code)
			s.Contains(s.errorMessage(w), tt.wantMsg)
		})
	}
	s.mockService.AssertNotCalled(s.T(), "PostJournalEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalHandlerTestSuite) TestPostJournalEntry_ErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name: "unbalanced",
			err: &apperrors.UnbalancedEntryError{
				Debits: decimal.NewFromInt(100), Credits: decimal.NewFromInt(50), Diff: decimal.NewFromInt(50),
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "difference 50",
		},
		{
			name:       "empty entry",
			err:        apperrors.Validation(apperrors.ErrEmptyEntry),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "journal entry has no lines",
		},
		{
			name:       "duplicate entry",
			err:        &apperrors.DuplicateEntryError{Name: "JE-0001"},
			wantStatus: http.StatusConflict,
			wantMsg:    "journal entry with name 'JE-0001' already exists",
		},
		{
			name:       "duplicate identifier",
			err:        &apperrors.DuplicateIdentifierError{Name: "JE-0001_Ledger_2"},
			wantStatus: http.StatusConflict,
			wantMsg:    "JE-0001_Ledger_2",
		},
		{
			name:       "constraint violation",
			err:        fmt.Errorf("insert line: %w", apperrors.ErrConstraintViolation),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "Journal entry violates a store constraint",
		},
		{
			name:       "store unavailable",
			err:        fmt.Errorf("begin: %w", apperrors.ErrStoreUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Store unavailable, retry later",
		},
		{
			name:       "unexpected",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to post journal entry",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockService.On("PostJournalEntry", mock.Anything, mock.Anything, mock.Anything, "alice", mock.Anything).
				Return(nil, tt.err).Once()

			w := s.do(http.MethodPost, "/api/v1/journal-entries", balancedBody, true)

			s.Equal(tt.wantStatus, w.Code)
			s.Contains(s.errorMessage(w), tt.wantMsg)
		})
	}
}

func (s *JournalHandlerTestSuite) TestGetJournalEntry_Success() {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	agg := &domain.JournalEntryAggregate{
		Entry: domain.JournalEntry{
			Name:        "JE-0001",
			EntryType:   "Journal Entry",
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Submitted:   true,
			AuditFields: domain.NewAuditFields("alice", created),
		},
		Lines: []domain.JournalEntryLine{
			{Name: "JE-0001_Account_1", Idx: 1, Account: "Cash", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
			{Name: "JE-0001_Account_2", Idx: 2, Account: "Revenue", Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
		},
		LedgerEntries: []domain.AccountingLedgerEntry{
			{Name: "JE-0001_Ledger_1", Account: "Cash", ReferenceName: "JE-0001"},
			{Name: "JE-0001_Ledger_2", Account: "Revenue", Party: "ACME", ReferenceName: "JE-0001"},
		},
	}
	s.mockService.On("GetJournalEntry", mock.Anything, "JE-0001").Return(agg, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/journal-entries/JE-0001", "", true)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.JournalEntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("JE-0001", resp.Name)
	s.True(resp.Submitted)
	s.Equal("alice", resp.CreatedBy)
	s.Len(resp.Accounts, 2)
	s.Equal("Revenue", resp.Accounts[1].Account)
	s.Len(resp.LedgerEntries, 2)
	s.Equal("ACME", resp.LedgerEntries[1].Party)
}

func (s *JournalHandlerTestSuite) TestGetJournalEntry_NotFound() {
	s.mockService.On("GetJournalEntry", mock.Anything, "JE-9999").
		Return(nil, fmt.Errorf("find entry: %w", apperrors.ErrNotFound)).Once()

	w := s.do(http.MethodGet, "/api/v1/journal-entries/JE-9999", "", true)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Journal entry not found", s.errorMessage(w))
}

func (s *JournalHandlerTestSuite) TestHealthAndMetrics() {
	w := s.do(http.MethodGet, "/health", "", false)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())

	w = s.do(http.MethodGet, "/metrics", "", false)
	s.Equal(http.StatusOK, w.Code)
}

func TestNewRouter_InvalidRateLimit(t *testing.T) {
	_, err := handlers.NewRouter(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		&config.Config{RateLimit: "lots"},
		&portssvc.ServiceContainer{Journal: new(MockJournalService)},
	)
	if err == nil {
		t.Fatal("expected an error for an invalid rate")
	}
}

func (s *JournalHandlerTestSuite) TestPostJournalEntry_BodyTooLarge() {
	body := `{"entryType":"Journal Entry","date":"2024-01-01","userRemark":"` + strings.Repeat("a", 2<<20) + `","accounts":[]}`

	w := s.do(http.MethodPost, "/api/v1/journal-entries", body, true)

	s.Equal(http.StatusRequestEntityTooLarge, w.Code)
	s.Equal("Request body too large", s.errorMessage(w))
	s.mockService.AssertNotCalled(s.T(), "PostJournalEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalHandlerTestSuite) TestSwaggerDocs() {
	w := s.do(http.MethodGet, "/swagger/doc.json", "", false)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"/journal-entries/{name}"`)
	s.Contains(w.Body.String(), `"basePath": "/api/v1"`)

	w = s.do(http.MethodGet, "/swagger/index.html", "", false)
	s.Equal(http.StatusOK, w.Code)
}

func TestNewRouter_NoSwaggerInProduction(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })
	router, err := handlers.NewRouter(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		&config.Config{RateLimit: "1000-M", IsProduction: true, DefaultActor: "default_user"},
		&portssvc.ServiceContainer{Journal: new(MockJournalService)},
	)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for swagger in production, got %d", w.Code)
	}
}
