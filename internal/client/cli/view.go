package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

// printHeader draws the dashboard header above a view.
func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "== Customer desk :: %s ==\n", title)
}

func printRecords(w io.Writer, records []models.Record, loc *time.Location) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No customers found.")
		return
	}
	for _, r := range records {
		printRecord(w, r, loc)
	}
}

func printRecord(w io.Writer, r models.Record, loc *time.Location) {
	phone := models.FormatPhone(r.Phone)
	if phone == "" {
		phone = "not informed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- %s  [%s]\n", r.Name, r.ID)
	fmt.Fprintf(&b, "    Email:      %s\n", r.Email)
	fmt.Fprintf(&b, "    Phone:      %s\n", phone)
	fmt.Fprintf(&b, "    Birth date: %s\n", models.FormatBirthDate(r.BirthDate))
	fmt.Fprintf(&b, "    Created at: %s\n", models.FormatTimestamp(r.CreatedAt, loc))
	fmt.Fprint(w, b.String())
}
