package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/infrastructure/db/kv"
	"github.com/legalconnect/platform-api/internal/infrastructure/db/memory"
)

type seederFixture struct {
	seeder       *Seeder
	users        *kv.UserRepository
	appointments *kv.AppointmentRepository
	cases        *kv.CaseRepository
	tasks        *kv.TaskRepository
	messages     *kv.MessageRepository
}

func newSeederFixture() seederFixture {
	store := memory.New()
	users := kv.NewUserRepository(store)
	appointments := kv.NewAppointmentRepository(store)
	cases := kv.NewCaseRepository(store)
	tasks := kv.NewTaskRepository(store)
	messages := kv.NewMessageRepository(store)
	notifications := kv.NewNotificationRepository(store)
	return seederFixture{
		seeder:       NewSeeder(users, appointments, cases, tasks, messages, notifications, zerolog.Nop()),
		users:        users,
		appointments: appointments,
		cases:        cases,
		tasks:        tasks,
		messages:     messages,
	}
}

func TestSeeder_PopulatesEmptyCollections(t *testing.T) {
	ctx := context.Background()
	f := newSeederFixture()

	seeded, err := f.seeder.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if seeded != 6 {
		t.Fatalf("expected 6 collections seeded, got %d", seeded)
	}

	client, err := f.users.FindByEmail(ctx, "client@demo.com")
	if err != nil {
		t.Fatalf("demo client missing: %v", err)
	}
	if client.ID != "1" || client.Role != domain.RoleClient {
		t.Fatalf("unexpected demo client: %+v", client)
	}
	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(DemoPassword)) != nil {
		t.Fatalf("demo password does not verify")
	}

	lawyer, err := f.users.FindByEmailAndRole(ctx, "lawyer@demo.com", domain.RoleLawyer)
	if err != nil {
		t.Fatalf("demo lawyer missing: %v", err)
	}
	if lawyer.Specialty != "Criminal Law" {
		t.Fatalf("unexpected demo lawyer: %+v", lawyer)
	}

	apts, _ := f.appointments.List(ctx, "1", domain.RoleClient)
	if len(apts) != 2 {
		t.Fatalf("expected 2 demo appointments, got %+v", apts)
	}
	if _, err := f.cases.FindByID(ctx, "case_1"); err != nil {
		t.Fatalf("demo case missing: %v", err)
	}
	clientTasks, _ := f.tasks.List(ctx, "1")
	if len(clientTasks) != 1 || clientTasks[0].Title != "Upload Financial Documents" {
		t.Fatalf("unexpected client tasks: %+v", clientTasks)
	}
	thread, _ := f.messages.ListByCase(ctx, "case_1")
	if len(thread) != 3 {
		t.Fatalf("expected 3 demo messages, got %+v", thread)
	}
}

func TestSeeder_RunTwiceChangesNothing(t *testing.T) {
	ctx := context.Background()
	f := newSeederFixture()

	if _, err := f.seeder.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	seeded, err := f.seeder.Run(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if seeded != 0 {
		t.Fatalf("second run should seed nothing, got %d", seeded)
	}

	users, err := f.users.FindByEmail(ctx, "client@demo.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if users.ID != "1" {
		t.Fatalf("demo roster changed: %+v", users)
	}
	apts, _ := f.appointments.List(ctx, "1", domain.RoleClient)
	if len(apts) != 2 {
		t.Fatalf("appointments duplicated: %d", len(apts))
	}
}

func TestSeeder_FillsOnlyEmptyCollections(t *testing.T) {
	ctx := context.Background()
	f := newSeederFixture()

	// The users collection already has an account; everything else is empty.
	if err := f.users.Create(ctx, &domain.User{ID: "u_1", Email: "existing@demo.com", Role: domain.RoleClient}); err != nil {
		t.Fatalf("create: %v", err)
	}

	seeded, err := f.seeder.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if seeded != 5 {
		t.Fatalf("expected 5 collections seeded, got %d", seeded)
	}

	// The pre-existing account survives and no demo users were added.
	if _, err := f.users.FindByEmail(ctx, "existing@demo.com"); err != nil {
		t.Fatalf("pre-existing user lost: %v", err)
	}
	if _, err := f.users.FindByEmail(ctx, "client@demo.com"); err == nil {
		t.Fatalf("demo users written into a non-empty collection")
	}
	if _, err := f.cases.FindByID(ctx, "case_1"); err != nil {
		t.Fatalf("empty collection not seeded: %v", err)
	}
}
