package logging

// Standardized attribute keys shared across components.
const (
	FieldComponent  = "component"
	FieldEventType  = "event_type"
	FieldContentID  = "content_id"
	FieldScheduleID = "schedule_id"
	FieldTemplateID = "template_id"
	FieldMessageID  = "message_id"
	FieldPlatform   = "platform"
	FieldErrorHint  = "error_hint"
)
