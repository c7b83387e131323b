// Command smoke runs signup/removal round trips against a live server.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/mergington/activities/internal/smoke"
	"github.com/mergington/activities/pkg/logger"
)

func main() {
	cfg := smoke.NewConfig()
	flag.StringVar(&cfg.BaseURL, "url", smoke.DefaultBaseURL, "base URL of the service")
	flag.IntVar(&cfg.Students, "students", smoke.DefaultStudents, "number of generated signups")
	flag.StringVar(&cfg.Activity, "activity", smoke.DefaultActivity, "target activity name")
	flag.DurationVar(&cfg.Timeout, "timeout", smoke.DefaultTimeout, "per-request timeout")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := smoke.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "smoke run failed", logger.Error(err))
		os.Exit(1)
	}
}
