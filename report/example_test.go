package report_test

import (
	"fmt"

	"github.com/jonwraymond/gensecrets/report"
)

func ExampleFormatEnv() {
	fmt.Print(report.FormatEnv([]report.Entry{
		{Name: "WEBHOOK_SECRET", Value: "abc123"},
		{Name: "SECRETS_ENCRYPTION_KEY", Value: "XYZ789"},
	}))
	// Output:
	// WEBHOOK_SECRET="abc123"
	// SECRETS_ENCRYPTION_KEY="XYZ789"
}
