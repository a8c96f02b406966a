// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

// Severity of a diagnostics message
type Severity int

// Message severities, least to most severe
const (
	SeverityVerbose Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityVerbose:
		return "verbose"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Category of a diagnostics message
type Category int

// Message categories
const (
	CategoryGeneral Category = iota
	CategoryValidation
	CategoryPerformance
)

func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "validation"
	case CategoryPerformance:
		return "performance"
	}
	return "general"
}

// Message is a single diagnostics message from the API runtime
type Message struct {
	Severity Severity
	Category Category
	Layer    string
	Code     int32
	Text     string
}

// MessageHandler observes diagnostics messages. It has no way to
// veto the API call that produced the message.
type MessageHandler func(Message)

// MessengerInfo configures a diagnostics callback
type MessengerInfo struct {
	// MinSeverity drops messages below this severity
	MinSeverity Severity
	Handler     MessageHandler
}
