package forumstats

import (
	"strconv"
	"strings"
)

// BBCodeTable renders the per-author statistics table in the forum's BBCode
// syntax: one row per author with message count, rule-breaking message count
// and the rule-breaking percentage, sorted by activity. Column headers stay
// German to match the target forum.
func BBCodeTable(d *Dataset) string {
	var b strings.Builder
	b.WriteString("[TABLE=full]")
	b.WriteString("[TR][TD]Spieler[/TD][TD]Anzahl Beiträge[/TD]")
	b.WriteString("[TD]Anzahl nicht regelkonformer Beiträge[/TD]")
	b.WriteString("[TD]Prozentanzahl nicht regelkonformer Beiträge[/TD][/TR]")

	for _, author := range d.AuthorsByActivity() {
		messages := d.MessagesByAuthor(author)
		violations := d.ViolationsByAuthor(author)
		percentage := strconv.FormatFloat(float64(violations)/float64(messages)*100, 'g', -1, 64)
		if !strings.Contains(percentage, ".") {
			// Historical tables always carry a decimal point.
			percentage += ".0"
		}

		b.WriteString("[TR][TD]")
		b.WriteString(author)
		b.WriteString("[/TD][TD]")
		b.WriteString(strconv.Itoa(messages))
		b.WriteString("[/TD][TD]")
		b.WriteString(strconv.Itoa(violations))
		b.WriteString("[/TD][TD]")
		b.WriteString(percentage)
		b.WriteString("%[/TD][/TR]")
	}

	b.WriteString("[/TABLE]")
	return b.String()
}
