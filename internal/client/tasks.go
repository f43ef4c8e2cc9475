// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the tasks of the signed-in account",
	}

	cmd.AddCommand(a.newTasksListCmd())
	cmd.AddCommand(a.newTasksAddCmd())
	cmd.AddCommand(a.newTasksShowCmd())
	cmd.AddCommand(a.newTasksEditCmd())
	cmd.AddCommand(a.newTasksRemoveCmd())
	cmd.AddCommand(a.newTasksToggleCmd())

	return cmd
}

func (a *App) newTasksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, oldest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := a.adapter.ListTasks(cmd.Context())
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				cmd.Println("No tasks.")
				return nil
			}

			return printTaskTable(cmd, tasks)
		},
	}
}

func (a *App) newTasksAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := models.TaskRequest{Title: strings.Join(args, " ")}
			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			task, err := a.adapter.CreateTask(cmd.Context(), request)
			if err != nil {
				return err
			}

			printTask(cmd, task)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")

	return cmd
}

func (a *App) newTasksShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.adapter.GetTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printTask(cmd, task)
			return nil
		},
	}
}

func (a *App) newTasksEditCmd() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title or description of a task",
		Long: `Change the title or description of a task. Fields that are not
given keep their current value; an empty --description clears it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			titleChanged := cmd.Flags().Changed("title")
			descriptionChanged := cmd.Flags().Changed("description")
			if !titleChanged && !descriptionChanged {
				return ErrNothingToEdit
			}
			if titleChanged && strings.TrimSpace(title) == "" {
				return ErrEmptyTitle
			}

			// updates replace both fields, so the missing one is read back first
			current, err := a.adapter.GetTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			request := models.TaskRequest{Title: current.Title, Description: current.Description}
			if titleChanged {
				request.Title = title
			}
			if descriptionChanged {
				request.Description = &description
			}

			task, err := a.adapter.UpdateTask(cmd.Context(), args[0], request)
			if err != nil {
				return err
			}

			printTask(cmd, task)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")

	return cmd
}

func (a *App) newTasksRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task permanently",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.adapter.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}

			cmd.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

func (a *App) newTasksToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip the completion flag of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.adapter.ToggleTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printTask(cmd, task)
			return nil
		},
	}
}
