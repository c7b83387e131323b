// Package smoke drives a running activities server through signup and
// removal round trips and verifies the responses.
package smoke

import "time"

// Default settings for the smoke tool.
const (
	DefaultBaseURL  = "http://localhost:8000"
	DefaultStudents = 5
	DefaultActivity = "Chess Club"
	DefaultTimeout  = 10 * time.Second
)

// Config holds the smoke run parameters.
type Config struct {
	// BaseURL of the service under test.
	BaseURL string

	// Students is the number of generated signups.
	Students int

	// Activity is the target activity name.
	Activity string

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		BaseURL:  DefaultBaseURL,
		Students: DefaultStudents,
		Activity: DefaultActivity,
		Timeout:  DefaultTimeout,
	}
}
