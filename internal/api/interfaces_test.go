package api

import (
	"github.com/hireloop/slotd/internal/interviews"
)

//go:generate mockgen -source=interfaces_test.go -destination=mock_scheduler_test.go -package=api

type schedulerApi interface {
	interviews.API
}
