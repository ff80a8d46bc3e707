package ports

// Logger define a interface para logging estruturado (pares chave/valor)
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}

// NopLogger descarta tudo; útil em testes
type NopLogger struct{}

func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Warn(string, ...any)  {}
func (n NopLogger) With(...any) Logger { return n }
