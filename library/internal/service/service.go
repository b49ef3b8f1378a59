package service

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/2ntng/library-management/library/internal/repository"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
}

// NewService wires the facade. producer may be nil; loan events are then skipped.
func NewService(repo repository.Repository, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
	}
}
