package constvars

const (
	EmailForgotPasswordSubjectMessage = "[MommyCare] Password Reset Link"
)

const (
	EmailBodyResetPassword = "<html><body>Hello <strong>%s</strong>, use the link below to reset your MommyCare password:<br><br>%s<br><br>The link is valid until %s and can only be used once. If you did not request this, please ignore this email.</body></html>"
)

const (
	MessageTypeJSON       = "JSON"
	RequeueStrategyDrop   = "DROP"
	AMQPHeaderMessageType = "message_type"
	AMQPHeaderRequeue     = "requeue_strategy"
	AMQPHeaderEventType   = "event_type"
	AMQPDefaultExchange   = ""
	AMQPDefaultPriority   = 0
	AMQPMandatoryPublish  = false
	AMQPImmediatePublish  = false
)
