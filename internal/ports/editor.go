package ports

// ReportViewer opens a written report for the user
type ReportViewer interface {
	OpenFile(path string) error
}
