package stream

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/fixed/decimal"
)

// logConfig renders decimals with every native digit and no padding.
var logConfig = Config{Precision: decimal.Scale}

// Field returns a zap string field holding the exact text of d.
func Field(key string, d decimal.Decimal) zap.Field {
	s := Acquire()
	defer Release(s)

	return zap.String(key, s.Configure(logConfig).Decimal(d).String())
}

// Decimals is a zapcore.ArrayMarshaler writing each element with the same
// text as Field.
type Decimals []decimal.Decimal

// MarshalLogArray implements zapcore.ArrayMarshaler.
func (ds Decimals) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	s := Acquire()
	defer Release(s)

	s.Configure(logConfig)
	for _, d := range ds {
		s.Reset()
		enc.AppendString(s.Decimal(d).String())
	}

	return nil
}

// Emit logs the buffered text as the message of one entry at level and
// empties the buffer. The buffer is kept when level is disabled.
func (s *Stream) Emit(logger *zap.Logger, level zapcore.Level, fields ...zap.Field) {
	if !logger.Core().Enabled(level) {
		return
	}

	if ce := logger.Check(level, s.String()); ce != nil {
		ce.Write(fields...)
	}

	s.Reset()
}
