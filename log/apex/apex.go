package apex

import (
	"github.com/apex/log"

	resolve "github.com/jomi-se/enhanced-resolve"
)

var _ resolve.Logger = ApexLogger{}

type ApexLogger struct{ L log.Interface }

func (a ApexLogger) Debug(msg string, f resolve.Fields) { a.L.WithFields(log.Fields(f)).Debug(msg) }
func (a ApexLogger) Info(msg string, f resolve.Fields)  { a.L.WithFields(log.Fields(f)).Info(msg) }
func (a ApexLogger) Warn(msg string, f resolve.Fields)  { a.L.WithFields(log.Fields(f)).Warn(msg) }
func (a ApexLogger) Error(msg string, f resolve.Fields) { a.L.WithFields(log.Fields(f)).Error(msg) }
