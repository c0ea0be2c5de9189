package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resumebuilder/internal/dashboard"
)

var (
	activityLimit int
	outputPath    string
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List saved resumes with their completeness",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()
			if err := requireUser(ws); err != nil {
				return err
			}

			ov, err := ws.Dashboard.Overview(cmd.Context())
			if err != nil {
				return err
			}
			return printOverview(cmd, output, ov)
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one saved resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()
			if err := requireUser(ws); err != nil {
				return err
			}

			doc, err := ws.Client.GetResume(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResume(cmd, output, *doc)
		},
	}
}

func newActivityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()
			if err := requireUser(ws); err != nil {
				return err
			}

			records, err := ws.Client.RecentActivities(cmd.Context(), activityLimit)
			if err != nil {
				return err
			}
			return printActivities(cmd, output, dashboard.Build(nil, records).Activities)
		},
	}
}

func newDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download [id]",
		Short: "Download the backend export of a saved resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()
			if err := requireUser(ws); err != nil {
				return err
			}

			d, err := ws.Editor.Download(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeFile(cmd, outputPath, d.Filename, d.Body)
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a saved resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()
			if err := requireUser(ws); err != nil {
				return err
			}

			if err := ws.Editor.DeleteDocument(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("deleted %s\n", args[0])
			return nil
		},
	}
}

// writeFile writes body to path, or to name in the working directory when
// path is empty.
func writeFile(cmd *cobra.Command, path, name string, body []byte) error {
	if path == "" {
		path = filepath.Base(name)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	cmd.Printf("wrote %s (%d bytes)\n", path, len(body))
	return nil
}

func init() {
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())

	act := newActivityCmd()
	act.Flags().IntVar(&activityLimit, "limit", dashboard.DefaultActivityLimit, "Number of entries to show")
	rootCmd.AddCommand(act)

	dl := newDownloadCmd()
	dl.Flags().StringVarP(&outputPath, "file", "f", "", "Destination file, defaults to the version name")
	rootCmd.AddCommand(dl)

	rootCmd.AddCommand(newRemoveCmd())
}
