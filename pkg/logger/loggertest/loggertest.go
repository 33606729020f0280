// Package loggertest fornece um logger.Logger para uso em testes,
// mantendo o pacote logger livre de dependência do pacote testing.
package loggertest

import (
	"testing"

	"github.com/hugohenrick/chatbot-varejo/pkg/logger"
)

// testLogger encaminha as mensagens para o log do teste
type testLogger struct {
	t testing.TB
}

// New cria um Logger que escreve no testing.TB
func New(t testing.TB) logger.Logger {
	return &testLogger{t: t}
}

func (l *testLogger) Info(msg string, keysAndValues ...interface{}) {
	l.t.Logf("INFO: "+msg+" %v", keysAndValues)
}

func (l *testLogger) Error(msg string, keysAndValues ...interface{}) {
	l.t.Logf("ERROR: "+msg+" %v", keysAndValues)
}

func (l *testLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.t.Logf("DEBUG: "+msg+" %v", keysAndValues)
}

func (l *testLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.t.Logf("WARN: "+msg+" %v", keysAndValues)
}
