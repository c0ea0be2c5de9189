package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"resumebuilder/internal/dashboard"
	"resumebuilder/internal/document"
	"resumebuilder/internal/model"
)

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateFooter = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	return tw
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	cmd.Println(string(out))
	return nil
}

func formatTime(ts model.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Time.Local().Format(time.DateTime)
}

func printOverview(cmd *cobra.Command, format string, ov dashboard.Overview) error {
	switch format {
	case "":
		tw := newTable()
		tw.AppendHeader(table.Row{"ID", "VERSION", "COMPLETENESS", "UPDATED AT"})
		for _, r := range ov.Resumes {
			tw.AppendRow(table.Row{r.ID, r.VersionName, fmt.Sprintf("%d%%", r.Completeness), formatTime(r.UpdatedAt)})
		}
		cmd.Printf("%s\n", tw.Render())
		if ov.MostComplete != nil {
			cmd.Printf("\n%d resumes, most complete: %s (%d%%)\n", ov.Total, ov.MostComplete.VersionName, ov.MostComplete.Completeness)
		} else {
			cmd.Printf("\nno resumes yet\n")
		}
		return nil
	case "json":
		return printJSON(cmd, ov)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func printActivities(cmd *cobra.Command, format string, items []dashboard.ActivityItem) error {
	switch format {
	case "":
		tw := newTable()
		tw.AppendHeader(table.Row{"TYPE", "DETAILS", "AT"})
		for _, a := range items {
			tw.AppendRow(table.Row{a.Type, a.Details, formatTime(a.Timestamp)})
		}
		cmd.Printf("%s\n", tw.Render())
		return nil
	case "json":
		return printJSON(cmd, items)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func printResume(cmd *cobra.Command, format string, doc model.ResumeDocument) error {
	switch format {
	case "":
		p := doc.PersonalInfo
		tw := newTable()
		tw.AppendRows([]table.Row{
			{"ID", doc.ID},
			{"VERSION", doc.VersionName},
			{"NAME", p.Name},
			{"TITLE", p.Title},
			{"EMAIL", p.Email},
			{"PHONE", p.Phone},
			{"COMPLETENESS", fmt.Sprintf("%d%%", document.Completeness(doc))},
			{"EXPERIENCE", len(doc.Experience)},
			{"EDUCATION", len(doc.Education)},
			{"SKILLS", strings.Join(doc.Skills, ", ")},
			{"PROJECTS", len(doc.Projects)},
			{"CERTIFICATES", len(doc.Certificates)},
			{"ACHIEVEMENTS", len(doc.Achievements)},
			{"UPDATED AT", formatTime(doc.UpdatedAt)},
		})
		cmd.Printf("%s\n", tw.Render())
		return nil
	case "json":
		return printJSON(cmd, doc)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func printUser(cmd *cobra.Command, format string, u model.User) error {
	switch format {
	case "":
		cmd.Printf("%s <%s>\n", u.FullName, u.Email)
		return nil
	case "json":
		return printJSON(cmd, u)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
