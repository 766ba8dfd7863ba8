package repo

import (
	"context"
	"errors"
	"testing"

	"Loudspeaker/internal/calc/reactive"
)

var (
	_ Repository = (*Memory)(nil)
	_ Repository = (*PostgresUserRepository)(nil)
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	id, err := m.CreateUser(ctx, "alice", "a@example.com", "hash")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateUser(ctx, "alice", "b@example.com", "x"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate login = %v", err)
	}
	got, hash, err := m.GetBylogin(ctx, "alice")
	if err != nil || got != id || hash != "hash" {
		t.Errorf("GetBylogin = %d, %q, %v", got, hash, err)
	}
	if _, _, err := m.GetBylogin(ctx, "bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing user = %v", err)
	}
}

func TestMemoryDrivers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	d := &Driver{UserID: 1, Name: "W5", Fields: reactive.Fields{"mms": "10"}}
	if err := m.CreateDriver(ctx, d); err != nil || d.ID == 0 {
		t.Fatalf("CreateDriver = %v, id %d", err, d.ID)
	}
	if err := m.CreateDriver(ctx, &Driver{UserID: 1, Name: "W5"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate name = %v", err)
	}
	if err := m.CreateDriver(ctx, &Driver{UserID: 2, Name: "W5"}); err != nil {
		t.Errorf("other user may reuse a name: %v", err)
	}
	if _, err := m.GetDriver(ctx, 2, d.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user read = %v", err)
	}

	d.Name = "W5 rev B"
	if err := m.UpdateDriver(ctx, d); err != nil {
		t.Fatal(err)
	}
	list, _ := m.ListDrivers(ctx, 1)
	if len(list) != 1 || list[0].Name != "W5 rev B" {
		t.Errorf("list = %+v", list)
	}
	if err := m.DeleteDriver(ctx, 1, d.ID); err != nil {
		t.Fatal(err)
	}
	if err := m.DeleteDriver(ctx, 1, d.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v", err)
	}
}

func TestMemoryDriverFieldsAreCopied(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	d := &Driver{UserID: 1, Name: "W5", Fields: reactive.Fields{"mms": "10"}}
	if err := m.CreateDriver(ctx, d); err != nil {
		t.Fatal(err)
	}
	d.Fields["mms"] = "11"

	got, err := m.GetDriver(ctx, 1, d.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.Fields["mms"] = "999"
	list, _ := m.ListDrivers(ctx, 1)
	list[0].Fields["mms"] = "998"

	again, _ := m.GetDriver(ctx, 1, d.ID)
	if again.Fields["mms"] != "10" {
		t.Errorf("stored mms = %q, want 10", again.Fields["mms"])
	}
}
