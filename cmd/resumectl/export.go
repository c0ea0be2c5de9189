package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resumebuilder/internal/model"
	"resumebuilder/internal/preview"
)

var (
	exportFormat  string
	exportPublish bool
	exportFile    string
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [id]",
		Short: "Render a resume locally as HTML or PDF",
		Long: "Render the saved resume with the given id, or the recovered active " +
			"resume when no id is given, through the local preview.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer ws.Close()

			var doc model.ResumeDocument
			if len(args) == 1 {
				if err := requireUser(ws); err != nil {
					return err
				}
				d, err := ws.Client.GetResume(ctx, args[0])
				if err != nil {
					return err
				}
				doc = *d
			} else {
				doc = ws.Editor.Active()
			}

			if exportPublish {
				owner := ""
				if u := ws.Session.User(); u != nil {
					owner = u.ID
				}
				pub, err := ws.Exports.Publish(ctx, owner, doc)
				if err != nil {
					return err
				}
				if output == "json" {
					return printJSON(cmd, pub)
				}
				cmd.Printf("%s\nexpires %s\n", pub.URL, pub.ExpiresAt.Local().Format("2006-01-02 15:04"))
				return nil
			}

			switch exportFormat {
			case "html":
				html, err := ws.Exports.RenderHTML(ctx, doc)
				if err != nil {
					return err
				}
				name := strings.TrimSuffix(preview.ExportFilename(doc), ".pdf") + ".html"
				return writeFile(cmd, exportFile, name, html)
			case "pdf":
				exp, err := ws.Exports.RenderPDF(ctx, doc)
				if err != nil {
					return err
				}
				return writeFile(cmd, exportFile, exp.Filename, exp.Body)
			default:
				return fmt.Errorf("unknown export format: %s", exportFormat)
			}
		},
	}
}

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVar(&exportFormat, "format", "pdf", "Export format: pdf or html")
	cmd.Flags().BoolVar(&exportPublish, "publish", false, "Upload the PDF to object storage and print a shareable link")
	cmd.Flags().StringVarP(&exportFile, "file", "f", "", "Destination file")
	rootCmd.AddCommand(cmd)
}
