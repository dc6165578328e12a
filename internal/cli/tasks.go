package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amirphiladam2/Actionable-sub001/internal/notify"
	"github.com/amirphiladam2/Actionable-sub001/internal/tasks"
)

func newTasksCmd(opts *rootOptions) *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Query and manage tasks",
	}

	tasksCmd.AddCommand(newTasksListCmd(opts))
	tasksCmd.AddCommand(newTasksStatsCmd(opts))
	tasksCmd.AddCommand(newTasksGroupsCmd(opts))
	tasksCmd.AddCommand(newTasksUpcomingCmd(opts))
	tasksCmd.AddCommand(newTasksAddCmd(opts))
	tasksCmd.AddCommand(newTasksDoneCmd(opts))
	tasksCmd.AddCommand(newTasksRmCmd(opts))
	return tasksCmd
}

func newTasksListCmd(opts *rootOptions) *cobra.Command {
	var (
		search string
		in     tasks.CriteriaInput
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks matching a search and filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if in.SortBy == "" {
				in.SortBy = a.cfg.Tasks.DefaultSort
			}
			if in.SortOrder == "" {
				in.SortOrder = a.cfg.Tasks.DefaultOrder
			}
			criteria, err := in.Parse()
			if err != nil {
				return err
			}

			all, err := a.store.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			return printTasks(cmd.OutOrStdout(), opts.output, a.engine.Filter(all, criteria, search))
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive text in title, description or category")
	cmd.Flags().StringSliceVar(&in.Categories, "category", nil, "Only these categories (repeatable)")
	cmd.Flags().StringSliceVar(&in.Priorities, "priority", nil, "Only these priorities: high, medium, low (repeatable)")
	cmd.Flags().StringVar(&in.DateRange, "range", "", "Date range: all, today, tomorrow, thisWeek, overdue, upcoming")
	cmd.Flags().BoolVar(&in.ShowCompleted, "show-completed", false, "Include completed tasks")
	cmd.Flags().StringVar(&in.SortBy, "sort", "", "Sort key: dueDate, priority, category, created, title, completed")
	cmd.Flags().StringVar(&in.SortOrder, "order", "", "Sort order: asc or desc")
	return cmd
}

func newTasksStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts and completion rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			all, err := a.store.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			return printData(cmd.OutOrStdout(), opts.output, a.engine.Stats(all))
		},
	}
}

func newTasksGroupsCmd(opts *rootOptions) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Group tasks by date, category or priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			by = strings.ToLower(by)
			if by != "date" && by != "category" && by != "priority" {
				return fmt.Errorf("%w: --by must be one of date, category, priority", tasks.ErrInvalidCriteria)
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			all, err := a.store.ListTasks(cmd.Context())
			if err != nil {
				return err
			}

			var groups any
			switch by {
			case "date":
				groups = a.engine.GroupByDate(all)
			case "category":
				groups = a.engine.GroupByCategory(all)
			case "priority":
				groups = a.engine.GroupByPriority(all)
			}
			return printData(cmd.OutOrStdout(), opts.output, groups)
		},
	}

	cmd.Flags().StringVar(&by, "by", "date", "Grouping: date, category or priority")
	return cmd
}

func newTasksUpcomingCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show the next incomplete tasks by due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Tasks.UpcomingLimit
			}
			all, err := a.store.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			return printTasks(cmd.OutOrStdout(), opts.output, a.engine.UpcomingTasks(all, limit))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "Maximum tasks to show (0 for all)")
	return cmd
}

func newTasksAddCmd(opts *rootOptions) *cobra.Command {
	var (
		description string
		category    string
		priority    string
		due         string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return fmt.Errorf("title is required")
			}

			task := tasks.Task{
				Title:       title,
				Description: description,
				Category:    strings.TrimSpace(category),
			}
			if priority != "" {
				p, err := tasks.ParsePriority(priority)
				if err != nil {
					return err
				}
				task.Priority = p
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if due != "" {
				task.DueDate = tasks.ParseTimestamp(due, a.engine.Location)
				if task.DueDate == nil {
					return fmt.Errorf("unparseable due date %q (use YYYY-MM-DD or RFC3339)", due)
				}
			}

			if err := a.store.CreateTask(cmd.Context(), &task); err != nil {
				return err
			}
			notify.NewLogNotifier(a.logger).Notify(cmd.Context(), notify.Success("Task created", task.Title))
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Task category")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority: high, medium or low (default medium)")
	cmd.Flags().StringVar(&due, "due", "", "Due date, e.g. 2025-03-14 or 2025-03-14T17:00:00Z")
	return cmd
}

func newTasksDoneCmd(opts *rootOptions) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.SetCompleted(cmd.Context(), args[0], !undo); err != nil {
				return err
			}
			if undo {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened %s\n", args[0])
				return nil
			}
			notify.NewLogNotifier(a.logger).Notify(cmd.Context(), notify.Success("Task completed", args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the task incomplete instead")
	return cmd
}

func newTasksRmCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
