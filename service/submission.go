package service

import (
	"sort"
	"sync"
	"time"

	"clubfund/models"
	"clubfund/store"

	"github.com/shopspring/decimal"
)

// SubmissionService manages the fund-submission lifecycle:
// pending -> approved or pending -> rejected. Approval appends the
// mirroring ledger entry via the ledger service.
type SubmissionService struct {
	store  store.Store
	ledger *LedgerService
	mu     sync.Mutex // serializes submission read-modify-write cycles

	now func() time.Time
}

// NewSubmissionService creates a submission service writing approved
// amounts through ledger.
func NewSubmissionService(st store.Store, ledger *LedgerService) *SubmissionService {
	return &SubmissionService{store: st, ledger: ledger, now: time.Now}
}

// Submit records a new pending submission dated with the server clock.
func (s *SubmissionService) Submit(fullName, mobile string, amount decimal.Decimal, txID, method string, screenshot *string) (models.FundSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var submissions []models.FundSubmission
	if err := s.store.Load(store.CollectionSubmissions, &submissions); err != nil {
		return models.FundSubmission{}, err
	}
	sub := models.FundSubmission{
		ID:            len(submissions) + 1,
		FullName:      fullName,
		MobileNumber:  mobile,
		Amount:        amount,
		TransactionID: txID,
		PaymentMethod: method,
		Screenshot:    screenshot,
		DateSubmitted: s.now().Format(DateLayout),
		Status:        models.StatusPending,
	}
	submissions = append(submissions, sub)
	if err := s.store.Save(store.CollectionSubmissions, submissions); err != nil {
		return models.FundSubmission{}, err
	}
	return sub, nil
}

// ListAll returns every submission, most recent first.
func (s *SubmissionService) ListAll() ([]models.FundSubmission, error) {
	var submissions []models.FundSubmission
	if err := s.store.Load(store.CollectionSubmissions, &submissions); err != nil {
		return nil, err
	}
	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].DateSubmitted > submissions[j].DateSubmitted
	})
	return submissions, nil
}

// ListPending returns submissions still awaiting a decision, most
// recent first.
func (s *SubmissionService) ListPending() ([]models.FundSubmission, error) {
	all, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	pending := make([]models.FundSubmission, 0, len(all))
	for _, sub := range all {
		if sub.Status == models.StatusPending {
			pending = append(pending, sub)
		}
	}
	return pending, nil
}

// Approve marks the submission approved and appends the mirroring
// fund entry. It returns false only when the id does not exist; a
// submission already decided is re-approved silently, which appends
// another fund entry.
//
// The submissions file is written before the fund entry; a crash
// between the two writes leaves an approved submission with no fund
// entry. There is no transactional boundary across collections.
func (s *SubmissionService) Approve(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var submissions []models.FundSubmission
	if err := s.store.Load(store.CollectionSubmissions, &submissions); err != nil {
		return false, err
	}
	for i := range submissions {
		if submissions[i].ID != id {
			continue
		}
		submissions[i].Status = models.StatusApproved
		if err := s.store.Save(store.CollectionSubmissions, submissions); err != nil {
			return false, err
		}
		sub := submissions[i]
		if _, err := s.ledger.AddFund(sub.FullName, sub.Amount, sub.DateSubmitted, sub.PaymentMethod); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Reject marks the submission rejected. It returns false only when
// the id does not exist; like Approve it does not guard terminal
// states.
func (s *SubmissionService) Reject(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var submissions []models.FundSubmission
	if err := s.store.Load(store.CollectionSubmissions, &submissions); err != nil {
		return false, err
	}
	for i := range submissions {
		if submissions[i].ID != id {
			continue
		}
		submissions[i].Status = models.StatusRejected
		if err := s.store.Save(store.CollectionSubmissions, submissions); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
