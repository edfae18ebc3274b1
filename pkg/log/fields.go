package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Overlay domain
	FieldOverlayID  = "overlay_id"
	FieldClientID   = "client_id"
	FieldTemplateID = "template_id"
	FieldConnID     = "conn_id"
	FieldEvent      = "event"

	// Service
	FieldService = "service"
)
