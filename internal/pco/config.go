package pco

import "time"

const (
	DefaultBaseURL = "https://api.planningcenteronline.com"

	// DefaultServiceTypeID is the morning worship service type.
	DefaultServiceTypeID = "1397044"
)

// Config holds connection settings for the Services API.
type Config struct {
	BaseURL       string
	ServiceTypeID string
	AppID         string
	Secret        string
	Timeout       time.Duration
}

// DefaultConfig returns a Config pointing at the public API with no
// credentials.
func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		ServiceTypeID: DefaultServiceTypeID,
		Timeout:       30 * time.Second,
	}
}

func (c Config) serviceTypeURL() string {
	return c.BaseURL + "/services/v2/service_types/" + c.ServiceTypeID
}
