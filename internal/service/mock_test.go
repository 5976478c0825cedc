package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Currencies(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	currencies, _ := args.Get(0).(map[string]string)
	return currencies, args.Error(1)
}

func (m *MockProvider) RateOn(ctx context.Context, base, target string, date time.Time) (float64, error) {
	args := m.Called(ctx, base, target, date)
	return args.Get(0).(float64), args.Error(1)
}

func onDate(s string) any {
	return mock.MatchedBy(func(d time.Time) bool { return d.Format("2006-01-02") == s })
}
