// Package report computes aggregate task statistics and renders the task and
// user overview reports.
package report

import (
	"fmt"
	"strings"
	"time"

	"taskmanager/local-app/internal/models"
)

const rule = "--------------------"

// Counts holds completion figures for a set of tasks.
type Counts struct {
	Total      int
	Completed  int
	Incomplete int
	Overdue    int
}

func (c *Counts) add(t models.Task, today time.Time) {
	c.Total++
	if t.Completed {
		c.Completed++
	} else {
		c.Incomplete++
	}
	if t.Overdue(today) {
		c.Overdue++
	}
}

// UserStats holds the figures for one registered user.
type UserStats struct {
	Username string
	Counts
}

// Summary is a snapshot of the task store and user registry at a given date.
type Summary struct {
	Date  time.Time
	Users []UserStats
	Counts
}

// Build computes a Summary over tasks and users as of today. Users keep
// registry order. Tasks assigned to names missing from users only count
// towards the global totals.
func Build(tasks []models.Task, users []models.User, today time.Time) Summary {
	today = models.DateOf(today)
	s := Summary{Date: today, Users: make([]UserStats, len(users))}

	byName := make(map[string]int, len(users))
	for i, u := range users {
		s.Users[i].Username = u.Username
		byName[u.Username] = i
	}

	for _, t := range tasks {
		s.Counts.add(t, today)
		if i, ok := byName[t.Username]; ok {
			s.Users[i].Counts.add(t, today)
		}
	}
	return s
}

// Percent returns part as a percentage of whole. ok is false when whole is 0.
func Percent(part, whole int) (pct float64, ok bool) {
	if whole == 0 {
		return 0, false
	}
	return float64(part) / float64(whole) * 100, true
}

// TaskOverview renders the task-centric report.
func (s Summary) TaskOverview() string {
	var b strings.Builder
	b.WriteString("TASK OVERVIEW REPORT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Total tasks generated: %d\n", s.Total)
	fmt.Fprintf(&b, "Total completed tasks: %d\n", s.Completed)
	fmt.Fprintf(&b, "Total uncompleted tasks: %d\n", s.Incomplete)
	fmt.Fprintf(&b, "Total overdue tasks (uncompleted): %d\n", s.Overdue)
	writePercent(&b, "Percentage incomplete", s.Incomplete, s.Total)
	writePercent(&b, "Percentage overdue", s.Overdue, s.Total)
	return b.String()
}

// UserOverview renders the user-centric report.
func (s Summary) UserOverview() string {
	var b strings.Builder
	b.WriteString("USER OVERVIEW REPORT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Total users registered: %d\n", len(s.Users))
	fmt.Fprintf(&b, "Total tasks generated: %d\n\n", s.Total)

	for _, u := range s.Users {
		fmt.Fprintf(&b, "User: %s\n", u.Username)
		fmt.Fprintf(&b, "  Total tasks assigned: %d\n", u.Total)
		writePercent(&b, "  % of total tasks assigned", u.Total, s.Total)
		if u.Total > 0 {
			writePercent(&b, "  % completed", u.Completed, u.Total)
			writePercent(&b, "  % uncompleted", u.Incomplete, u.Total)
			writePercent(&b, "  % overdue and uncompleted", u.Overdue, u.Total)
		} else {
			b.WriteString("  No tasks assigned.\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// writePercent writes "label: P%" and nothing at all when whole is 0.
func writePercent(b *strings.Builder, label string, part, whole int) {
	pct, ok := Percent(part, whole)
	if !ok {
		return
	}
	fmt.Fprintf(b, "%s: %.2f%%\n", label, pct)
}
