package domain

import (
	"testing"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "valid task", text: "Develop React components", wantErr: false},
		{name: "empty text", text: "", wantErr: true},
		{name: "only spaces", text: "   ", wantErr: true},
		{name: "text with spaces", text: "  Keep as typed  ", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(7, tt.text)

			if tt.wantErr {
				if err != ErrEmptyTaskText {
					t.Errorf("NewTask() error = %v, want %v", err, ErrEmptyTaskText)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewTask() unexpected error = %v", err)
			}
			if task.Text != tt.text {
				t.Errorf("NewTask() text = %q, want %q", task.Text, tt.text)
			}
			if task.ID != 7 {
				t.Errorf("NewTask() id = %d, want 7", task.ID)
			}
			if task.Completed {
				t.Error("NewTask() should not be completed")
			}
			if task.CreatedAt.IsZero() {
				t.Error("NewTask() CreatedAt is zero")
			}
		})
	}
}

func TestTaskList_AddBlankIsNoop(t *testing.T) {
	list := NewTaskList("one")

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, ok := list.Add(text); ok {
			t.Errorf("Add(%q) should be rejected", text)
		}
	}

	if list.Len() != 1 {
		t.Errorf("Len() = %d, want 1", list.Len())
	}
}

func TestTaskList_AddAssignsUniqueIDs(t *testing.T) {
	list := NewTaskList()
	seen := make(map[int64]bool)

	for i := 0; i < 1000; i++ {
		task, ok := list.Add("x")
		if !ok {
			t.Fatal("Add() rejected valid text")
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %d after %d adds", task.ID, i)
		}
		seen[task.ID] = true
	}
}

func TestTaskList_InsertionOrder(t *testing.T) {
	list := NewTaskList("a", "b", "c")
	list.Add("d")

	var got []string
	for _, task := range list.Tasks() {
		got = append(got, task.Text)
	}

	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("Tasks() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tasks()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTaskList_Toggle(t *testing.T) {
	list := NewTaskList("a", "b")
	tasks := list.Tasks()
	a, b := tasks[0].ID, tasks[1].ID

	t.Run("double toggle restores state", func(t *testing.T) {
		list.Toggle(a)
		list.Toggle(a)
		got, _ := list.Find(a)
		if got.Completed {
			t.Error("toggle twice should restore original state")
		}
	})

	t.Run("toggles on different ids commute", func(t *testing.T) {
		list.Toggle(a)
		list.Toggle(b)
		ga, _ := list.Find(a)
		gb, _ := list.Find(b)
		if !ga.Completed || !gb.Completed {
			t.Errorf("both tasks should be completed, got a=%v b=%v", ga.Completed, gb.Completed)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if list.Toggle(999) {
			t.Error("Toggle() on unknown id should return false")
		}
	})
}

func TestTaskList_Remove(t *testing.T) {
	list := NewTaskList("a", "b", "c")
	b := list.Tasks()[1].ID

	if !list.Remove(b) {
		t.Fatal("Remove() should succeed for existing id")
	}
	if list.Remove(b) {
		t.Error("Remove() twice should fail the second time")
	}

	tasks := list.Tasks()
	if len(tasks) != 2 || tasks[0].Text != "a" || tasks[1].Text != "c" {
		t.Errorf("Tasks() after remove = %v", tasks)
	}
}

func TestTaskList_TasksReturnsCopy(t *testing.T) {
	list := NewTaskList("a")
	tasks := list.Tasks()
	tasks[0].Text = "changed"

	got := list.Tasks()[0]
	if got.Text != "a" {
		t.Errorf("mutating Tasks() result leaked into the list: %q", got.Text)
	}
}

func TestTaskList_Remaining(t *testing.T) {
	list := NewTaskList("a", "b", "c")
	list.Toggle(list.Tasks()[0].ID)

	if got := list.Remaining(); got != 2 {
		t.Errorf("Remaining() = %d, want 2", got)
	}
}

func TestGoal(t *testing.T) {
	t.Run("blank goal rejected", func(t *testing.T) {
		if _, err := NewGoal("  "); err != ErrEmptyGoalText {
			t.Errorf("NewGoal() error = %v, want %v", err, ErrEmptyGoalText)
		}
	})

	t.Run("toggle unset goal", func(t *testing.T) {
		var g Goal
		if g.Toggle() {
			t.Error("Toggle() on unset goal should return false")
		}
		if g.Completed {
			t.Error("unset goal should stay incomplete")
		}
	})

	t.Run("toggle and clear", func(t *testing.T) {
		g, _ := NewGoal("Ship feature")
		g.Toggle()
		if !g.Completed {
			t.Error("Toggle() should complete the goal")
		}
		g.Clear()
		if g.IsSet() || g.Completed {
			t.Errorf("Clear() left %+v", g)
		}
	})
}
