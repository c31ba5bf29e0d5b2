package logger

// Logger is the application-wide structured logging interface. The
// component tag identifies the subsystem emitting the event.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}
