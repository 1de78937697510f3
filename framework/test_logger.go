package framework

// TestLogger receives run progress as it happens, before the final summary is
// printed. The console implementation lives in package main.
type TestLogger interface {
	GroupStarted(name string)
	CaseFinished(result Result)
}

type nullTestLogger struct{}

func (n nullTestLogger) GroupStarted(string) {}
func (n nullTestLogger) CaseFinished(Result) {}

func NullTestLogger() TestLogger { return nullTestLogger{} }
