// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/spf13/cobra"
)

const timeLayout = time.RFC3339

func printUser(cmd *cobra.Command, user models.PublicUser) {
	lastSignin := "never"
	if user.LastSigninAt != nil {
		lastSignin = user.LastSigninAt.Format(timeLayout)
	}

	cmd.Printf("ID:           %s\n", user.UserID)
	cmd.Printf("Email:        %s\n", user.Email)
	cmd.Printf("Created:      %s\n", user.CreatedAt.Format(timeLayout))
	cmd.Printf("Last sign-in: %s\n", lastSignin)
}

func printTask(cmd *cobra.Command, task models.Task) {
	cmd.Printf("ID:          %s\n", task.TaskID)
	cmd.Printf("Title:       %s\n", task.Title)
	if task.Description != nil {
		cmd.Printf("Description: %s\n", *task.Description)
	}
	cmd.Printf("Status:      %s\n", status(task))
	cmd.Printf("Created:     %s\n", task.CreatedAt.Format(timeLayout))
	cmd.Printf("Updated:     %s\n", task.UpdatedAt.Format(timeLayout))
}

func printTaskTable(cmd *cobra.Command, tasks []models.Task) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE")
	for _, task := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\n", task.TaskID, status(task), task.Title)
	}

	return w.Flush()
}

func status(task models.Task) string {
	if task.Completed {
		return "done"
	}
	return "open"
}
