package driver

// Outcome is the terminal state of one Clean run.
type Outcome uint8

const (
	// OutcomeSuccess: every stage ran, output is the compacted text.
	OutcomeSuccess Outcome = iota
	// OutcomeParseFailure: no usable tree, output is the header-stripped text.
	OutcomeParseFailure
	// OutcomeFallback: a stage after parsing failed, output is the header-stripped text.
	OutcomeFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeParseFailure:
		return "parse-failure"
	case OutcomeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Degraded reports whether the output is the header-stripped fallback text.
func (o Outcome) Degraded() bool {
	return o != OutcomeSuccess
}

// MarshalText implements encoding.TextMarshaler for JSON reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Stats counts what a successful run removed.
type Stats struct {
	Imports     int `json:"imports" msgpack:"imports"`
	Annotations int `json:"annotations" msgpack:"annotations"`
	Comments    int `json:"comments" msgpack:"comments"`
}

// Add sums s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Imports:     s.Imports + other.Imports,
		Annotations: s.Annotations + other.Annotations,
		Comments:    s.Comments + other.Comments,
	}
}
