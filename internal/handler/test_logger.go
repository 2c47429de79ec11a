package handler

// MockHandlerLogger is a no-op logger for handler tests.
type MockHandlerLogger struct{}

func NewMockHandlerLogger() *MockHandlerLogger { return &MockHandlerLogger{} }

func (l *MockHandlerLogger) Info(msg string, fields ...interface{})             {}
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})             {}
