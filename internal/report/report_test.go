package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"taskmanager/local-app/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestBuild_OverdueAssignedTask(t *testing.T) {
	users := []models.User{models.NewUser("admin", "password"), models.NewUser("alice", "pw")}
	tasks := []models.Task{
		models.NewTask("alice", "Report", "Write it", day(t, "2024-01-01"), day(t, "2023-12-20")),
	}

	s := Build(tasks, users, day(t, "2024-02-01"))
	if s.Total != 1 || s.Incomplete != 1 || s.Overdue != 1 || s.Completed != 0 {
		t.Fatalf("unexpected global counts: %+v", s.Counts)
	}

	task := s.TaskOverview()
	for _, want := range []string{
		"Total tasks generated: 1\n",
		"Total overdue tasks (uncompleted): 1\n",
		"Percentage incomplete: 100.00%\n",
		"Percentage overdue: 100.00%\n",
	} {
		if !strings.Contains(task, want) {
			t.Fatalf("task overview missing %q:\n%s", want, task)
		}
	}

	want := "USER OVERVIEW REPORT\n" +
		"--------------------\n" +
		"Total users registered: 2\n" +
		"Total tasks generated: 1\n" +
		"\n" +
		"User: admin\n" +
		"  Total tasks assigned: 0\n" +
		"  % of total tasks assigned: 0.00%\n" +
		"  No tasks assigned.\n" +
		"\n" +
		"User: alice\n" +
		"  Total tasks assigned: 1\n" +
		"  % of total tasks assigned: 100.00%\n" +
		"  % completed: 0.00%\n" +
		"  % uncompleted: 100.00%\n" +
		"  % overdue and uncompleted: 100.00%\n" +
		"\n"
	if got := s.UserOverview(); got != want {
		t.Fatalf("user overview mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuild_EmptyStoreOmitsPercentages(t *testing.T) {
	users := []models.User{models.NewUser("admin", "password")}
	s := Build(nil, users, day(t, "2024-02-01"))

	wantTask := "TASK OVERVIEW REPORT\n" +
		"--------------------\n" +
		"Total tasks generated: 0\n" +
		"Total completed tasks: 0\n" +
		"Total uncompleted tasks: 0\n" +
		"Total overdue tasks (uncompleted): 0\n"
	if got := s.TaskOverview(); got != wantTask {
		t.Fatalf("task overview mismatch:\n%s", got)
	}

	user := s.UserOverview()
	if strings.Contains(user, "%") {
		t.Fatalf("user overview must not contain percentages:\n%s", user)
	}
	if !strings.Contains(user, "User: admin\n  Total tasks assigned: 0\n  No tasks assigned.\n") {
		t.Fatalf("expected no tasks marker:\n%s", user)
	}
}

func TestBuild_PerUserPercentagesUseOwnTotals(t *testing.T) {
	today := day(t, "2024-05-10")
	users := []models.User{models.NewUser("alice", "a"), models.NewUser("bob", "b")}

	done := models.NewTask("alice", "a1", "", day(t, "2024-05-01"), today)
	done.Completed = true
	tasks := []models.Task{
		done,
		models.NewTask("alice", "a2", "", day(t, "2024-05-01"), today),
		models.NewTask("alice", "a3", "", day(t, "2024-06-01"), today),
		models.NewTask("bob", "b1", "", day(t, "2024-06-01"), today),
		models.NewTask("ghost", "g1", "", day(t, "2024-01-01"), today),
	}

	s := Build(tasks, users, today)
	if s.Total != 5 || s.Completed != 1 || s.Incomplete != 4 || s.Overdue != 2 {
		t.Fatalf("unexpected global counts: %+v", s.Counts)
	}
	alice := s.Users[0]
	if alice.Total != 3 || alice.Completed != 1 || alice.Incomplete != 2 || alice.Overdue != 1 {
		t.Fatalf("unexpected alice counts: %+v", alice)
	}

	user := s.UserOverview()
	for _, want := range []string{
		"  % of total tasks assigned: 60.00%\n",
		"  % completed: 33.33%\n",
		"  % uncompleted: 66.67%\n",
		"  % overdue and uncompleted: 33.33%\n",
		"  % of total tasks assigned: 20.00%\n",
	} {
		if !strings.Contains(user, want) {
			t.Fatalf("user overview missing %q:\n%s", want, user)
		}
	}
}

func TestPercent_CompletedAndIncompleteSumToHundred(t *testing.T) {
	for total := 1; total <= 25; total++ {
		for completed := 0; completed <= total; completed++ {
			c, ok1 := Percent(completed, total)
			i, ok2 := Percent(total-completed, total)
			if !ok1 || !ok2 {
				t.Fatalf("Percent(_, %d) not ok", total)
			}
			if math.Abs(c+i-100) > 1e-9 {
				t.Fatalf("completed %.4f + incomplete %.4f != 100 for %d/%d", c, i, completed, total)
			}
		}
	}
	if _, ok := Percent(0, 0); ok {
		t.Fatal("Percent with zero whole must not be ok")
	}
}
