package chatalert

// ConfigurationError signals that a report had to be sent but no delivery
// options were resolvable. It always surfaces to the caller, independent
// of Options.RaiseDeliveryErrors, since it marks a setup defect rather
// than a failed delivery.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "ConfigurationError: " + e.Message
}

// DeliveryError signals that the webhook target declined a report without
// a transport error being raised. Returned only when
// Options.RaiseDeliveryErrors is enabled.
type DeliveryError struct {
	Message string
}

func (e *DeliveryError) Error() string {
	return "DeliveryError: " + e.Message
}

// EndpointParseError signals an invalid webhook endpoint URL.
type EndpointParseError struct {
	Message string
}

func (e *EndpointParseError) Error() string {
	return "EndpointParseError: " + e.Message
}
