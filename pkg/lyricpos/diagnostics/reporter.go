package diagnostics

import (
	"github.com/sirupsen/logrus"
)

// Once is a caller-owned "full diagnostics already logged" flag. The zero
// value has not fired.
type Once struct {
	done bool
}

// Done reports whether the full report was already emitted.
func (o *Once) Done() bool { return o != nil && o.done }

// Reset re-arms the flag.
func (o *Once) Reset() {
	if o != nil {
		o.done = false
	}
}

// Reporter logs diagnostics bundles.
type Reporter struct {
	log logrus.FieldLogger
}

// NewReporter creates a reporter writing to l, or the logrus standard logger
// when l is nil.
func NewReporter(l logrus.FieldLogger) *Reporter {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Reporter{log: l}
}

// Report logs the full bundle at info level the first time once fires and a
// one-line summary at debug level afterwards. A nil once logs in full every
// time.
func (r *Reporter) Report(label string, b Bundle, once *Once) {
	fields := logrus.Fields{
		"source":    label,
		"all":       len(b.AllWords),
		"processed": len(b.ProcessedWords),
		"missed":    len(b.MissedWords),
		"ignored":   len(b.IgnoredWords),
	}

	if once.Done() {
		r.log.WithFields(fields).Debug("pos diagnostics")
		return
	}
	if once != nil {
		once.done = true
	}

	fields["missed_words"] = b.MissedWords
	fields["ignored_words"] = b.IgnoredWords
	r.log.WithFields(fields).Info("pos diagnostics (full)")
}
