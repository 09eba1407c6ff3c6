package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Printer writes bare diagnostic lines, without level or timestamp, to
// its writer while enabled. A new Printer starts enabled. Printers are
// independent of each other and safe for concurrent use.
type Printer struct {
	enabled atomic.Bool
	logger  *zap.Logger
}

// NewPrinter returns an enabled Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)

	p := &Printer{logger: zap.New(core)}
	p.enabled.Store(true)
	return p
}

// NewStderrPrinter returns an enabled Printer writing to standard error.
func NewStderrPrinter() *Printer {
	return NewPrinter(os.Stderr)
}

// Enable turns printing on.
func (p *Printer) Enable() {
	p.enabled.Store(true)
}

// Disable turns printing off. Calls to Print become no-ops.
func (p *Printer) Disable() {
	p.enabled.Store(false)
}

// Enabled reports whether the printer writes.
func (p *Printer) Enabled() bool {
	return p.enabled.Load()
}

// Print writes args separated by spaces as one line.
func (p *Printer) Print(args ...any) {
	if !p.Enabled() {
		return
	}
	p.logger.Info(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// Printf writes a formatted line.
func (p *Printer) Printf(format string, args ...any) {
	if !p.Enabled() {
		return
	}
	p.logger.Info(fmt.Sprintf(format, args...))
}
