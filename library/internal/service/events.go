package service

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/2ntng/library-management/library/internal/model"
	"github.com/2ntng/library-management/pkg/kafka"
)

const (
	eventBorrowed = "borrowed"
	eventReturned = "returned"
)

type loanEvent struct {
	LoanID   string     `json:"loanId"`
	BookID   string     `json:"bookId"`
	MemberID string     `json:"memberId"`
	Event    string     `json:"event"`
	Date     model.Date `json:"date"`
}

// publishLoanEvent emits an audit event for the loan lifecycle. Best effort:
// failures are logged, never surfaced to the borrower.
func (s *Service) publishLoanEvent(event string, loan model.BorrowedBook) {
	if s.producer == nil {
		return
	}
	data, err := json.Marshal(loanEvent{
		LoanID:   loan.ID,
		BookID:   loan.BookID,
		MemberID: loan.MemberID,
		Event:    event,
		Date:     model.Today(),
	})
	if err != nil {
		s.log.Warn("marshal loan event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.LoanEventsTopic, Value: sarama.StringEncoder(data)}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		s.log.Warn("publish loan event", zap.Error(err))
	}
}
