package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
	"github.com/legalconnect/platform-api/internal/infrastructure/db/kv"
	"github.com/legalconnect/platform-api/internal/infrastructure/db/memory"
)

type caseFixture struct {
	cases         *CaseService
	tasks         *TaskService
	notifications *kv.NotificationRepository
}

func newCaseFixture() caseFixture {
	store := memory.New()
	caseRepo := kv.NewCaseRepository(store)
	notificationRepo := kv.NewNotificationRepository(store)
	return caseFixture{
		cases:         NewCaseService(caseRepo, notificationRepo, zerolog.Nop()),
		tasks:         NewTaskService(kv.NewTaskRepository(store), caseRepo, notificationRepo, zerolog.Nop()),
		notifications: notificationRepo,
	}
}

func TestCaseService_OpenDefaults(t *testing.T) {
	ctx := context.Background()
	f := newCaseFixture()

	c, err := f.cases.Open(ctx, ports.OpenCaseInput{
		Lawyer:      demoLawyer,
		ClientID:    demoClient.UserID,
		ClientName:  demoClient.Name,
		Title:       "Contract Dispute",
		Description: "Breach of a service agreement.",
		Type:        "Civil Law",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if c.Status != domain.CaseActive || c.Priority != domain.PriorityMedium {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if c.Documents == nil || c.Tasks == nil || len(c.Documents) != 0 || len(c.Tasks) != 0 {
		t.Fatalf("expected empty slices: %+v", c)
	}
	if !c.CreatedAt.Equal(c.UpdatedAt) {
		t.Fatalf("createdAt and updatedAt should match on open")
	}

	// The client is notified about the new case.
	ns, _ := f.notifications.List(ctx, demoClient.UserID)
	if len(ns) != 1 || ns[0].Type != domain.NotifyCase {
		t.Fatalf("unexpected notifications: %+v", ns)
	}
}

func TestCaseService_GetEnforcesParticipants(t *testing.T) {
	ctx := context.Background()
	f := newCaseFixture()

	c, err := f.cases.Open(ctx, ports.OpenCaseInput{
		Lawyer: demoLawyer, ClientID: "1", ClientName: "John Client",
		Title: "Case", Description: "d", Type: "Civil Law",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := f.cases.Get(ctx, c.ID, demoClient); err != nil {
		t.Fatalf("participant should read the case: %v", err)
	}
	stranger := ports.Identity{UserID: "99", Role: domain.RoleClient}
	if _, err := f.cases.Get(ctx, c.ID, stranger); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.cases.Get(ctx, "case_missing", demoClient); !errors.Is(err, domain.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

// Lawyer opens a case, assigns the client a task, the client completes it and
// both sides observe the final state.
func TestCaseWorkflow_OpenAssignComplete(t *testing.T) {
	ctx := context.Background()
	f := newCaseFixture()

	c, err := f.cases.Open(ctx, ports.OpenCaseInput{
		Lawyer:      demoLawyer,
		ClientID:    demoClient.UserID,
		ClientName:  demoClient.Name,
		Title:       "Criminal Defense Case",
		Description: "Defense against fraud allegations.",
		Type:        "Criminal Law",
		Priority:    domain.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("open case: %v", err)
	}

	task, err := f.tasks.Create(ctx, ports.CreateTaskInput{
		Actor:       demoLawyer,
		CaseID:      c.ID,
		Title:       "Upload Financial Documents",
		Description: "Bank statements and tax returns.",
		AssignedTo:  demoClient.UserID,
		DueDate:     time.Now().AddDate(0, 0, 7),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Status != domain.TaskPending || task.AssignedBy != demoLawyer.UserID {
		t.Fatalf("unexpected task: %+v", task)
	}

	// The client sees the task on their list and completes it.
	assigned, err := f.tasks.List(ctx, demoClient.UserID)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(assigned) != 1 || assigned[0].ID != task.ID {
		t.Fatalf("task not visible to assignee: %+v", assigned)
	}

	completed := domain.TaskCompleted
	done, err := f.tasks.Update(ctx, task.ID, ports.TaskPatch{Status: &completed})
	if err != nil {
		t.Fatalf("complete task: %v", err)
	}
	if done.Status != domain.TaskCompleted {
		t.Fatalf("task not completed: %+v", done)
	}
	if done.Title != "Upload Financial Documents" {
		t.Fatalf("completion dropped fields: %+v", done)
	}

	// The assignment produced exactly one task notification for the client.
	ns, _ := f.notifications.List(ctx, demoClient.UserID)
	taskNotifs := 0
	for _, n := range ns {
		if n.Type == domain.NotifyTask {
			taskNotifs++
		}
	}
	if taskNotifs != 1 {
		t.Fatalf("expected one task notification, got %+v", ns)
	}

	// The lawyer's case list still carries the case.
	lawyerCases, _ := f.cases.List(ctx, demoLawyer.UserID, domain.RoleLawyer)
	if len(lawyerCases) != 1 || lawyerCases[0].ID != c.ID {
		t.Fatalf("case missing from lawyer view: %+v", lawyerCases)
	}
}

func TestTaskService_CreateRejectsOutsiders(t *testing.T) {
	ctx := context.Background()
	f := newCaseFixture()

	c, err := f.cases.Open(ctx, ports.OpenCaseInput{
		Lawyer: demoLawyer, ClientID: "1", ClientName: "John Client",
		Title: "Case", Description: "d", Type: "Civil Law",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	stranger := ports.Identity{UserID: "99", Role: domain.RoleLawyer}
	_, err = f.tasks.Create(ctx, ports.CreateTaskInput{
		Actor: stranger, CaseID: c.ID, Title: "x", Description: "y",
		AssignedTo: "1", DueDate: time.Now(),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskService_SelfAssignmentSkipsNotification(t *testing.T) {
	ctx := context.Background()
	f := newCaseFixture()

	c, err := f.cases.Open(ctx, ports.OpenCaseInput{
		Lawyer: demoLawyer, ClientID: "1", ClientName: "John Client",
		Title: "Case", Description: "d", Type: "Civil Law",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := f.tasks.Create(ctx, ports.CreateTaskInput{
		Actor: demoLawyer, CaseID: c.ID, Title: "Prepare Case Summary",
		Description: "d", AssignedTo: demoLawyer.UserID, DueDate: time.Now(),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	ns, _ := f.notifications.List(ctx, demoLawyer.UserID)
	if len(ns) != 0 {
		t.Fatalf("self-assignment should not notify: %+v", ns)
	}
}

func TestCaseService_UpdateStampsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	f := newCaseFixture()

	c, err := f.cases.Open(ctx, ports.OpenCaseInput{
		Lawyer: demoLawyer, ClientID: "1", ClientName: "John Client",
		Title: "Case", Description: "d", Type: "Civil Law",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	progress := 65
	updated, err := f.cases.Update(ctx, c.ID, ports.CasePatch{Progress: &progress}, demoLawyer)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Progress != 65 {
		t.Fatalf("progress not applied: %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("updatedAt not refreshed: %+v", updated)
	}
	if updated.Title != "Case" {
		t.Fatalf("merge dropped fields: %+v", updated)
	}
}
