package types

// Finding represents a single problem reported against a document
type Finding struct {
	// Severity is the severity level of this finding
	Severity Severity `json:"severity"`

	// Path is the instance location within the document (e.g. "threat/actors/0").
	// Empty means the document root.
	Path string `json:"path,omitempty"`

	// Keyword is the schema keyword that produced the finding (e.g. "enum", "required")
	Keyword string `json:"keyword,omitempty"`

	// Message is a short description of the finding
	Message string `json:"message"`

	// Value is the offending value rendered as a string, when useful
	Value string `json:"value,omitempty"`
}

// NewFinding creates a new Finding with the given parameters
func NewFinding(severity Severity, message string) *Finding {
	return &Finding{
		Severity: severity,
		Message:  message,
	}
}

// WithPath sets the instance path and returns the finding for chaining
func (f *Finding) WithPath(path string) *Finding {
	f.Path = path
	return f
}

// WithKeyword sets the schema keyword and returns the finding for chaining
func (f *Finding) WithKeyword(keyword string) *Finding {
	f.Keyword = keyword
	return f
}

// WithValue sets the offending value and returns the finding for chaining
func (f *Finding) WithValue(value string) *Finding {
	f.Value = value
	return f
}

// ValidationReport represents the outcome of validating one document
type ValidationReport struct {
	// File is the path of the validated document
	File string `json:"file"`

	// Schema is the path of the schema the document was validated against
	Schema string `json:"schema"`

	// Findings is the list of all findings
	Findings []*Finding `json:"findings"`

	// Summary contains counts by severity
	Summary Summary `json:"summary"`

	// Result is PASS or FAIL
	Result string `json:"result"`
}

// Summary contains counts of findings by severity
type Summary struct {
	Error   int `json:"error"`
	Warning int `json:"warning"`
	Notice  int `json:"notice"`
	Total   int `json:"total"`
}

// NewValidationReport creates a new ValidationReport
func NewValidationReport(file, schema string) *ValidationReport {
	return &ValidationReport{
		File:     file,
		Schema:   schema,
		Findings: make([]*Finding, 0),
	}
}

// AddFinding adds a finding to the report
func (r *ValidationReport) AddFinding(f *Finding) {
	r.Findings = append(r.Findings, f)
}

// AddFindings adds multiple findings to the report
func (r *ValidationReport) AddFindings(fs []*Finding) {
	r.Findings = append(r.Findings, fs...)
}

// Compute calculates the summary and result.
// Only ERROR findings fail a document; warnings and notices are advisory.
func (r *ValidationReport) Compute() {
	r.Summary = Summary{}
	for _, f := range r.Findings {
		switch f.Severity {
		case SeverityError:
			r.Summary.Error++
		case SeverityWarning:
			r.Summary.Warning++
		case SeverityNotice:
			r.Summary.Notice++
		}
	}
	r.Summary.Total = len(r.Findings)

	if r.Summary.Error > 0 {
		r.Result = "FAIL"
	} else {
		r.Result = "PASS"
	}
}
