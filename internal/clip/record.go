package clip

import "cloud.google.com/go/civil"

// Record is the result of a fully successful parse of one filename.
type Record struct {
	SourceName string
	Date       civil.Date
	Time       civil.Time
	// Grammar and Filename record where the values came from.
	Grammar  string
	Filename string
}

// DateTime combines the capture date and time.
func (r Record) DateTime() civil.DateTime {
	return civil.DateTime{Date: r.Date, Time: r.Time}
}
