package impl

import (
	"io"
	"log/slog"

	"isoko/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Billing: config.BillingConfig{
			MonthlyFee:     8000,
			CommissionRate: 0.30,
		},
	}
}
