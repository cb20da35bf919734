package lwmem

import "sync/atomic"

import "github.com/bnclabs/golog"

var logok = int64(0)

// LogComponents enables logging. By default logging is disabled, since
// the allocate/free hot path should pay nothing for it. Call this with
// "heap", "region", "self" or "all" to turn it on.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "heap", "region", "self", "all":
			atomic.StoreInt64(&logok, 1)
		}
	}
}

func debugf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Debugf(format, v...)
	}
}

func infof(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Infof(format, v...)
	}
}

func warnf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Warnf(format, v...)
	}
}

func errorf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Errorf(format, v...)
	}
}
