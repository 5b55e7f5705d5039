package export_report

// Response is the output of the export-report use case
type Response struct {
	Filename string
	Content  []byte
}
