package logging

import "go.uber.org/zap"

// BadgerLogger badger.Logger 구현 (Warningf 이름 차이만 맞춤)
type BadgerLogger struct {
	s *zap.SugaredLogger
}

// NewBadgerLogger 엔진 이름 필드를 붙인 어댑터
func NewBadgerLogger(logger *zap.Logger) *BadgerLogger {
	return &BadgerLogger{s: OrNop(logger).With(zap.String("engine", "badger")).Sugar()}
}

func (l *BadgerLogger) Errorf(format string, args ...interface{})   { l.s.Errorf(format, args...) }
func (l *BadgerLogger) Warningf(format string, args ...interface{}) { l.s.Warnf(format, args...) }
func (l *BadgerLogger) Infof(format string, args ...interface{})    { l.s.Debugf(format, args...) }
func (l *BadgerLogger) Debugf(format string, args ...interface{})   { l.s.Debugf(format, args...) }

// PebbleLogger pebble.Logger 구현
// Fatalf 는 프로세스를 끝내지 않고 패닉으로 올린다 (pebble 불변식 위반)
type PebbleLogger struct {
	s *zap.SugaredLogger
}

func NewPebbleLogger(logger *zap.Logger) *PebbleLogger {
	return &PebbleLogger{s: OrNop(logger).With(zap.String("engine", "pebble")).Sugar()}
}

func (l *PebbleLogger) Infof(format string, args ...interface{})  { l.s.Debugf(format, args...) }
func (l *PebbleLogger) Errorf(format string, args ...interface{}) { l.s.Errorf(format, args...) }
func (l *PebbleLogger) Fatalf(format string, args ...interface{}) { l.s.Panicf(format, args...) }
