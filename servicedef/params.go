package servicedef

// Request payloads sent to the monitoring API. Field names follow the API's
// JSON contract.

type LoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ServerParams struct {
	Name        string `json:"name"`
	Hostname    string `json:"hostname,omitempty"`
	IPAddress   string `json:"ip_address,omitempty"`
	Port        int    `json:"port,omitempty"`
	OSType      string `json:"os_type,omitempty"`
	Description string `json:"description,omitempty"`
}

type AlertRuleParams struct {
	Name            string  `json:"name"`
	MetricType      string  `json:"metric_type"`
	Operator        string  `json:"operator"`
	Threshold       float64 `json:"threshold"`
	DurationSeconds int     `json:"duration_seconds"`
	Severity        string  `json:"severity"`
}

type NotificationChannelParams struct {
	Name   string            `json:"name"`
	Type   string            `json:"type"`
	Config map[string]string `json:"config"`
}
