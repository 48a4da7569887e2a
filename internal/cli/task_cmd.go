package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"taskmanager/local-app/internal/tracker"
)

// TaskAdd handles the 'a' option.
func (c *CLI) TaskAdd() error {
	username, err := c.prompt("Name of person assigned to task: ")
	if err != nil {
		return err
	}
	username = strings.TrimSpace(username)
	if !c.Manager.UserExists(username) {
		return &tracker.UnknownUserError{Username: username}
	}

	title, err := c.prompt("Title of Task: ")
	if err != nil {
		return err
	}
	description, err := c.prompt("Description of Task: ")
	if err != nil {
		return err
	}

	var due string
	for {
		due, err = c.prompt("Due date of task (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		if _, err := tracker.DateParse(due); err != nil {
			c.UI.Error(err.Error())
			continue
		}
		break
	}

	if _, err := c.Manager.TaskAdd(username, title, description, due); err != nil {
		return err
	}
	c.UI.Success("Task successfully added.")
	return nil
}

// TaskViewAll handles the 'va' option.
func (c *CLI) TaskViewAll() error {
	c.Tasks.TaskList(c.Manager.TaskViewAll())
	return nil
}

// TaskViewMine handles the 'vm' option: list the user's tasks, show one and
// let the user complete or edit it. The listing is rebuilt on every pass.
func (c *CLI) TaskViewMine() error {
	for {
		refs := c.Manager.TasksOf(c.User)
		if len(refs) == 0 {
			c.UI.Info("You have no assigned tasks.")
			return nil
		}
		c.Tasks.TaskMine(refs)

		input, err := c.prompt("Select a task by number to manage or enter -1 to return: ")
		if err != nil {
			return err
		}
		ref, err := c.Manager.TaskSelect(c.User, input)
		if errors.Is(err, tracker.ErrSelectionReturn) {
			return nil
		}
		var selErr *tracker.InvalidSelectionError
		if errors.As(err, &selErr) {
			c.UI.Error(selErr.Error())
			continue
		}
		if err != nil {
			return err
		}

		c.Tasks.TaskDetail(ref.Task)
		if ref.Task.Completed {
			if err := c.taskCompletedAction(ref); err != nil {
				return err
			}
			continue
		}
		if err := c.taskAction(ref); err != nil {
			return err
		}
	}
}

// taskCompletedAction offers the only actions left for a completed task.
func (c *CLI) taskCompletedAction(ref tracker.TaskRef) error {
	c.UI.Warning("Task is already completed and cannot be edited.")
	action, err := c.prompt("Enter 'm' to mark complete again (no effect) or '-1' to return: ")
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(action)) {
	case tracker.SelectionReturn:
	case "m":
		if _, err := c.Manager.TaskComplete(ref.Index); err != nil {
			return err
		}
		c.UI.Info("Task already marked complete.")
	default:
		c.UI.Error("Invalid input.")
	}
	return nil
}

func (c *CLI) taskAction(ref tracker.TaskRef) error {
	action, err := c.prompt("Enter 'c' to mark as complete, 'e' to edit, or '-1' to return: ")
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(action)) {
	case tracker.SelectionReturn:
		return nil
	case "c":
		if _, err := c.Manager.TaskComplete(ref.Index); err != nil {
			return err
		}
		c.UI.Success("Task marked as complete and saved.")
		return nil
	case "e":
		return c.taskEdit(ref)
	default:
		c.UI.Error("Invalid input.")
		return nil
	}
}

func (c *CLI) taskEdit(ref tracker.TaskRef) error {
	username, err := c.prompt("Enter new username to assign task (leave blank to keep current): ")
	if err != nil {
		return err
	}
	username = strings.TrimSpace(username)
	warned := false
	if username != "" && !c.Manager.UserExists(username) {
		c.UI.Error("Username does not exist. Username not changed.")
		warned = true
	}

	var due *time.Time
	for {
		input, err := c.prompt("Enter new due date (YYYY-MM-DD) or leave blank to keep current: ")
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			break
		}
		d, err := tracker.DateParse(input)
		if err != nil {
			c.UI.Error("Invalid date format. Please try again.")
			continue
		}
		due = &d
		break
	}

	res, err := c.Manager.TaskEdit(ref.Index, tracker.TaskEdit{
		Username: username,
		DueDate:  due,
	})
	if err != nil {
		return err
	}

	if res.Rejected != nil && !warned {
		c.UI.Error("Username does not exist. Username not changed.")
	}
	if res.Reassigned {
		c.UI.Success(fmt.Sprintf("Task reassigned to %s.", username))
	}
	if res.DueDateChanged {
		c.UI.Success("Due date updated.")
	}
	if res.Changed() {
		c.UI.Success("Changes saved.")
	} else {
		c.UI.Info("No changes made.")
	}
	return nil
}
