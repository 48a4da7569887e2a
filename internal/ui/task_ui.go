package ui

import (
	"fmt"

	"taskmanager/local-app/internal/models"
	"taskmanager/local-app/internal/tracker"
)

// TaskUI renders tasks.
type TaskUI struct {
	*UI
}

func NewTaskUI(u *UI) *TaskUI {
	return &TaskUI{UI: u}
}

// TaskList displays every task in full, in store order.
func (tui *TaskUI) TaskList(tasks []models.Task) {
	if len(tasks) == 0 {
		tui.Info("There are no tasks.")
		return
	}
	for _, t := range tasks {
		tui.PrintMarkup(fmt.Sprintf("{{yellow}}Task:{{default}}            %s", t.Title))
		tui.Printf("Assigned to:      %s\n", t.Username)
		tui.Printf("Date Assigned:    %s\n", t.AssignedDate.Format(models.DateLayout))
		tui.Printf("Due Date:         %s\n", t.DueDate.Format(models.DateLayout))
		tui.Printf("Task Description:\n %s\n\n", t.Description)
	}
}

// TaskMine displays the numbered listing of one user's tasks.
func (tui *TaskUI) TaskMine(refs []tracker.TaskRef) {
	for _, ref := range refs {
		status := "{{red}}No"
		if ref.Task.Completed {
			status = "{{green}}Yes"
		}
		tui.PrintMarkup(fmt.Sprintf("{{orange}}%d.{{default}} Task: %s (Completed: %s{{default}})",
			ref.Number, ref.Task.Title, status))
	}
}

// TaskDetail displays all fields of a selected task.
func (tui *TaskUI) TaskDetail(t models.Task) {
	tui.Println("")
	tui.PrintMarkup(fmt.Sprintf("{{yellow}}Selected Task:{{default}} %s", t.Title))
	tui.Printf("Assigned to: %s\n", t.Username)
	tui.Printf("Date Assigned: %s\n", t.AssignedDate.Format(models.DateLayout))
	tui.Printf("Due Date: %s\n", t.DueDate.Format(models.DateLayout))
	tui.Printf("Completed: %s\n", t.Status())
	tui.Printf("Task Description:\n%s\n", t.Description)
}
