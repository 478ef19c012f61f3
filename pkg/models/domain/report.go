package domain

// Report represents a complete link budget report
type Report struct {
	Title      string
	Case       LinkCase
	Wavelength float64
	Pattern    string
	Sections   []ReportSection
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
